package service

import (
	"context"

	"github.com/MKhiriev/go-advert-board/models"
)

// AuthService verifies user credentials.
type AuthService interface {
	// Authenticate looks up the user by email and verifies the plaintext
	// password against the stored bcrypt hash. A lookup miss and a hash
	// mismatch both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// UserService owns the user lifecycle: registration, lookup, partial update,
// and deletion.
type UserService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, userID int64) error
}

// AdvertService owns the advert lifecycle: creation, lookup, partial update,
// and deletion.
type AdvertService interface {
	Create(ctx context.Context, advert models.Advert) (models.Advert, error)
	Get(ctx context.Context, advertID int64) (models.Advert, error)
	Update(ctx context.Context, update models.AdvertUpdate) (models.Advert, error)
	Delete(ctx context.Context, advertID int64) error
}
