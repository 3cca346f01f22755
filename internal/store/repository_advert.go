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

// advertRepository is the PostgreSQL-backed implementation of
// [AdvertRepository]. It handles advert creation, lookup, partial update, and
// deletion against the "adverts" table.
//
// Reads are point lookups on the pooled connection; every write runs inside
// its own transaction and is rolled back on any failure before the error is
// returned to the caller.
type advertRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdvertRepository constructs an [AdvertRepository] backed by the provided
// database connection and logger.
func NewAdvertRepository(db *DB, logger *logger.Logger) AdvertRepository {
	logger.Debug().Msg("creating advert repository")
	return &advertRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdvert persists a new advert record and returns the fully populated
// [models.Advert] with the server-assigned ID.
//
// The caller supplies CreationDate (set server-side by the service layer);
// the INSERT returns all columns via a RETURNING clause.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on owner_id → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *advertRepository) CreateAdvert(ctx context.Context, advert models.Advert) (models.Advert, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.CreateAdvert").Msg("error: cannot begin transaction")
		return models.Advert{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createAdvert, advert.Title, advert.Description, advert.CreationDate, advert.OwnerID)

	// create advert in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*advertRepository.CreateAdvert").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Advert{}, ErrUserNotFound
		default:
			return models.Advert{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved advert from db
	if err := row.Scan(&advert.ID, &advert.Title, &advert.Description, &advert.CreationDate, &advert.OwnerID); err != nil {
		log.Err(err).Str("func", "*advertRepository.CreateAdvert").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Advert{}, ErrUserNotFound
		}
		return models.Advert{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*advertRepository.CreateAdvert").Msg("error: commit failed")
		return models.Advert{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return advert, nil
}

// GetAdvert retrieves an advert record by its identifier.
//
// Error handling:
//   - No matching row → [ErrAdvertNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *advertRepository) GetAdvert(ctx context.Context, advertID int64) (models.Advert, error) {
	log := logger.FromContext(ctx)

	var foundAdvert models.Advert
	row := r.db.QueryRowContext(ctx, getAdvertByID, advertID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*advertRepository.GetAdvert").Msg("error: row is nil")
		return models.Advert{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundAdvert.ID, &foundAdvert.Title, &foundAdvert.Description, &foundAdvert.CreationDate, &foundAdvert.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advert{}, ErrAdvertNotFound
		}
		log.Err(err).Str("func", "*advertRepository.GetAdvert").Msg("error: scanning error")
		return models.Advert{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundAdvert, nil
}

// UpdateAdvert applies a partial update and returns the updated record.
//
// The UPDATE is built dynamically from the non-nil patch fields (see
// [buildUpdateAdvertQuery]) and runs inside a transaction. Only title and
// description can change; owner_id and creation_date are immutable. An empty
// patch is a no-op: the current row is fetched and returned unchanged.
//
// Error handling:
//   - Target row absent → [ErrAdvertNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *advertRepository) UpdateAdvert(ctx context.Context, update models.AdvertUpdate) (models.Advert, error) {
	log := logger.FromContext(ctx)

	if !update.HasChanges() {
		return r.GetAdvert(ctx, update.ID)
	}

	query, args, err := buildUpdateAdvertQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: building update query")
		return models.Advert{}, err
	}

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: cannot begin transaction")
		return models.Advert{}, err
	}
	defer tx.Rollback()

	var updatedAdvert models.Advert
	row := tx.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: row is nil")
		return models.Advert{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&updatedAdvert.ID, &updatedAdvert.Title, &updatedAdvert.Description, &updatedAdvert.CreationDate, &updatedAdvert.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advert{}, ErrAdvertNotFound
		}
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: scanning error")
		return models.Advert{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: commit failed")
		return models.Advert{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updatedAdvert, nil
}

// DeleteAdvert removes an advert record by its identifier.
//
// Error handling:
//   - No row removed → [ErrAdvertNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *advertRepository) DeleteAdvert(ctx context.Context, advertID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.beginTx(ctx)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.DeleteAdvert").Msg("error: cannot begin transaction")
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteAdvert, advertID)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.DeleteAdvert").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.DeleteAdvert").Msg("error: rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAdvertNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*advertRepository.DeleteAdvert").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
