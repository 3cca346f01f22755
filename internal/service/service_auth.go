package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It verifies email/password pairs against bcrypt hashes stored by the
// UserRepository.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate verifies an email/password pair.
//
// It looks up the account by exact email match and compares the plaintext
// password against the stored bcrypt hash. bcrypt's comparison is
// constant-time over the hash.
//
// Returns the matched user record or:
//   - ErrInvalidCredentials if email or password is empty, no account matches
//     the email, or the password does not match the stored hash. The three
//     cases are deliberately indistinguishable to the caller.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("empty email or password provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", email).Msg("no user with given email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Debug().Int64("id", foundUser.ID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
