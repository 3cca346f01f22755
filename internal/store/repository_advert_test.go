package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/models"
	"github.com/jackc/pgerrcode"
)

func newTestAdvertRepo(t *testing.T) (*advertRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &advertRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func advertRows(id int64, title, description string, created time.Time, ownerID int64) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "title", "description", "creation_date", "owner_id"}).
		AddRow(id, title, description, created, ownerID)
}

func TestCreateAdvert_Success(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	advert := models.Advert{
		Title:        "Bike for sale",
		Description:  "Barely used",
		CreationDate: now,
		OwnerID:      7,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO adverts").
		WithArgs(advert.Title, advert.Description, advert.CreationDate, advert.OwnerID).
		WillReturnRows(advertRows(1, advert.Title, advert.Description, now, advert.OwnerID))
	mock.ExpectCommit()

	created, err := repo.CreateAdvert(context.Background(), advert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.OwnerID != 7 {
		t.Errorf("expected OwnerID=7, got %d", created.OwnerID)
	}
}

func TestCreateAdvert_MissingOwner(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO adverts").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateAdvert(context.Background(), models.Advert{Title: "x", Description: "y", OwnerID: 404})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateAdvert_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO adverts").
		WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateAdvert(context.Background(), models.Advert{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetAdvert_Success(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, title, description, creation_date, owner_id FROM adverts").
		WithArgs(int64(3)).
		WillReturnRows(advertRows(3, "Bike", "Fast", now, 7))

	found, err := repo.GetAdvert(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 3 || found.Title != "Bike" {
		t.Errorf("unexpected advert: %+v", found)
	}
	if !found.CreationDate.Equal(now) {
		t.Errorf("expected creation date %v, got %v", now, found.CreationDate)
	}
}

func TestGetAdvert_NotFound(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, description, creation_date, owner_id FROM adverts").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAdvert(context.Background(), 404)
	if !errors.Is(err, ErrAdvertNotFound) {
		t.Fatalf("expected ErrAdvertNotFound, got %v", err)
	}
}

func TestUpdateAdvert_PartialFields(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	newTitle := "Bike updated"
	update := models.AdvertUpdate{ID: 3, Title: &newTitle}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE adverts").
		WithArgs(newTitle, int64(3)).
		WillReturnRows(advertRows(3, newTitle, "Fast", now, 7))
	mock.ExpectCommit()

	updated, err := repo.UpdateAdvert(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, updated.Title)
	}
	// immutable fields come back from the store untouched
	if updated.OwnerID != 7 {
		t.Errorf("expected OwnerID=7, got %d", updated.OwnerID)
	}
}

func TestUpdateAdvert_EmptyPatchIsNoOp(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, title, description, creation_date, owner_id FROM adverts").
		WithArgs(int64(3)).
		WillReturnRows(advertRows(3, "Bike", "Fast", now, 7))

	updated, err := repo.UpdateAdvert(context.Background(), models.AdvertUpdate{ID: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 3 {
		t.Errorf("expected ID=3, got %d", updated.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateAdvert_NotFound(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	newTitle := "ghost"
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE adverts").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateAdvert(context.Background(), models.AdvertUpdate{ID: 404, Title: &newTitle})
	if !errors.Is(err, ErrAdvertNotFound) {
		t.Fatalf("expected ErrAdvertNotFound, got %v", err)
	}
}

func TestDeleteAdvert_Success(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM adverts").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteAdvert(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAdvert_NotFound(t *testing.T) {
	repo, mock, db := newTestAdvertRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM adverts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteAdvert(context.Background(), 404)
	if !errors.Is(err, ErrAdvertNotFound) {
		t.Fatalf("expected ErrAdvertNotFound, got %v", err)
	}
}
