// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-advert-board/models"
)

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password;`

	getUserByID = `SELECT id, name, email, password
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT id, name, email, password
    FROM users
    WHERE email = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createAdvert = `INSERT INTO adverts (title, description, creation_date, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, creation_date, owner_id;`

	getAdvertByID = `SELECT id, title, description, creation_date, owner_id
    FROM adverts
    WHERE id = $1;`

	deleteAdvert = `DELETE FROM adverts WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery dynamically builds a partial UPDATE for a user.
// Only non-nil patch fields produce SET clauses; the updated row is returned
// via a RETURNING clause so the caller receives the canonical database state.
//
// Callers must guard with [models.UserUpdate.HasChanges]: a patch with no
// fields set yields [ErrBuildingSQLQuery].
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: empty user update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("users")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, name, email, password").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAdvertQuery dynamically builds a partial UPDATE for an advert.
// Only title and description are updatable; owner_id and creation_date are
// immutable and never appear in SET clauses.
//
// Callers must guard with [models.AdvertUpdate.HasChanges]: a patch with no
// fields set yields [ErrBuildingSQLQuery].
func buildUpdateAdvertQuery(update models.AdvertUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: empty advert update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("adverts")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, description, creation_date, owner_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
