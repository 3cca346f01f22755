// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/models"
)

// userService is the concrete implementation of UserService.
// It validates incoming user data, hashes passwords before they reach the
// store, and delegates persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The Password field of the input carries the plaintext; it is replaced with
// a bcrypt hash before persistence, so the plaintext never reaches the store.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if name or password is empty, or email is not a
//     well-formed address.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (s *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Password == "" || !isValidEmail(user.Email) {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hashed

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Get retrieves a user by ID. Missing users surface as store.ErrUserNotFound.
func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

// Update applies a partial update to a user.
//
// Set-but-empty name/password and malformed set emails are rejected with
// ErrInvalidDataProvided. A set password is re-hashed before it reaches the
// store; unset fields are left untouched.
func (s *userService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Name != nil && *update.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Email != nil && !isValidEmail(*update.Email) {
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		hashed, err := hashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, err
		}
		update.Password = &hashed
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Delete removes a user by ID. Owned adverts are removed by the store's
// cascade rule. Missing users surface as store.ErrUserNotFound.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}

// isValidEmail reports whether the address parses as a bare RFC 5322 address.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	parsed, err := mail.ParseAddress(email)
	return err == nil && parsed.Address == email
}
