package store

import (
	"github.com/MKhiriev/go-advert-board/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	AdvertRepository AdvertRepository
}

// NewStorages constructs all repositories over the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		AdvertRepository: NewAdvertRepository(db, logger),
	}
}
