// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, partial update, and deletion
// against the "users" table.
//
// Reads are point lookups on the pooled connection; every write runs inside
// its own transaction and is rolled back on any failure before the error is
// returned to the caller.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Password)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// GetUser retrieves a user record by its identifier.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// FindUserByEmail retrieves a user record whose email matches exactly.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUser applies a partial update and returns the updated record.
//
// The UPDATE is built dynamically from the non-nil patch fields (see
// [buildUpdateUserQuery]) and runs inside a transaction. An empty patch is a
// no-op: the current row is fetched and returned unchanged.
//
// Error handling:
//   - Target row absent → [ErrUserNotFound].
//   - PostgreSQL unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !update.HasChanges() {
		return r.GetUser(ctx, update.ID)
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return models.User{}, err
	}

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: cannot begin transaction")
		return models.User{}, err
	}
	defer tx.Rollback()

	var updatedUser models.User
	row := tx.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&updatedUser.ID, &updatedUser.Name, &updatedUser.Email, &updatedUser.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updatedUser, nil
}

// DeleteUser removes a user record by its identifier. Owned adverts are
// removed by the store via the ON DELETE CASCADE constraint, inside the same
// transaction.
//
// Error handling:
//   - No row removed → [ErrUserNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: cannot begin transaction")
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
