// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/models"
)

// advertService is the concrete implementation of AdvertService.
// It validates incoming advert data, resolves advert owners, and delegates
// persistence to an AdvertRepository.
type advertService struct {
	advertRepository store.AdvertRepository
	userRepository   store.UserRepository

	logger *logger.Logger
}

// NewAdvertService constructs an AdvertService wired to the given
// repositories. The user repository is needed to check that an advert's
// owner exists before creation.
func NewAdvertService(advertRepository store.AdvertRepository, userRepository store.UserRepository, logger *logger.Logger) AdvertService {
	return &advertService{
		advertRepository: advertRepository,
		userRepository:   userRepository,
		logger:           logger,
	}
}

// Create persists a new advert.
//
// The owner must exist; CreationDate is set server-side to the current time
// and the caller's value is ignored.
//
// Returns the persisted advert (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if title or description is empty, or OwnerID is
//     not positive.
//   - store.ErrUserNotFound if the owner does not exist (checked up front;
//     the foreign key enforces it again at insert time).
//   - A wrapped storage error for any other repository failure.
func (s *advertService) Create(ctx context.Context, advert models.Advert) (models.Advert, error) {
	log := logger.FromContext(ctx)

	if advert.Title == "" || advert.Description == "" || advert.OwnerID <= 0 {
		log.Error().Int64("owner_id", advert.OwnerID).Msg("invalid advert data provided")
		return models.Advert{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, advert.OwnerID); err != nil {
		log.Err(err).Int64("owner_id", advert.OwnerID).Msg("advert owner lookup failed")
		return models.Advert{}, fmt.Errorf("advert owner lookup failed: %w", err)
	}

	advert.CreationDate = time.Now().UTC()

	createdAdvert, err := s.advertRepository.CreateAdvert(ctx, advert)
	if err != nil {
		log.Err(err).Int64("owner_id", advert.OwnerID).Msg("advert creation ended with error")
		return models.Advert{}, fmt.Errorf("advert creation ended with error: %w", err)
	}

	return createdAdvert, nil
}

// Get retrieves an advert by ID. Missing adverts surface as
// store.ErrAdvertNotFound.
func (s *advertService) Get(ctx context.Context, advertID int64) (models.Advert, error) {
	return s.advertRepository.GetAdvert(ctx, advertID)
}

// Update applies a partial update to an advert. Only title and description
// can change; set-but-empty values are rejected with ErrInvalidDataProvided.
func (s *advertService) Update(ctx context.Context, update models.AdvertUpdate) (models.Advert, error) {
	log := logger.FromContext(ctx)

	if update.Title != nil && *update.Title == "" {
		return models.Advert{}, ErrInvalidDataProvided
	}
	if update.Description != nil && *update.Description == "" {
		return models.Advert{}, ErrInvalidDataProvided
	}

	updatedAdvert, err := s.advertRepository.UpdateAdvert(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.ID).Msg("advert update ended with error")
		return models.Advert{}, fmt.Errorf("advert update ended with error: %w", err)
	}

	return updatedAdvert, nil
}

// Delete removes an advert by ID. Missing adverts surface as
// store.ErrAdvertNotFound.
func (s *advertService) Delete(ctx context.Context, advertID int64) error {
	return s.advertRepository.DeleteAdvert(ctx, advertID)
}
