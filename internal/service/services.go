package service

import (
	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/store"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	AdvertService AdvertService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, logger),
		UserService:   NewUserService(storages.UserRepository, logger),
		AdvertService: NewAdvertService(storages.AdvertRepository, storages.UserRepository, logger),
	}
}
