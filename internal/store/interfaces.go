package store

import (
	"context"

	"github.com/MKhiriev/go-advert-board/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// AdvertRepository is the persistence contract for adverts.
type AdvertRepository interface {
	CreateAdvert(ctx context.Context, advert models.Advert) (models.Advert, error)
	GetAdvert(ctx context.Context, advertID int64) (models.Advert, error)
	UpdateAdvert(ctx context.Context, update models.AdvertUpdate) (models.Advert, error)
	DeleteAdvert(ctx context.Context, advertID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
