package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(id int64, name, email, password string) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "name", "email", "password"}).
		AddRow(id, name, email, password)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "bcrypt-hash",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnRows(userRows(1, user.Name, user.Email, user.Password))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ivan", Email: "ivan@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ivan", Email: "ivan@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, models.User{Name: "Ivan"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestGetUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password FROM users").
		WithArgs(int64(7)).
		WillReturnRows(userRows(7, "Ivan", "ivan@example.com", "hash"))

	found, err := repo.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 || found.Name != "Ivan" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password FROM users").
		WithArgs("ivan@example.com").
		WillReturnRows(userRows(7, "Ivan", "ivan@example.com", "hash"))

	found, err := repo.FindUserByEmail(context.Background(), "ivan@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "ivan@example.com" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	newName := "Ivan Updated"
	update := models.UserUpdate{ID: 7, Name: &newName}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE users").
		WithArgs(newName, int64(7)).
		WillReturnRows(userRows(7, newName, "ivan@example.com", "hash"))
	mock.ExpectCommit()

	updated, err := repo.UpdateUser(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("expected name %q, got %q", newName, updated.Name)
	}
}

func TestUpdateUser_EmptyPatchIsNoOp(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// no Begin expected: an empty patch falls back to a plain lookup
	mock.ExpectQuery("SELECT id, name, email, password FROM users").
		WithArgs(int64(7)).
		WillReturnRows(userRows(7, "Ivan", "ivan@example.com", "hash"))

	updated, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 7 {
		t.Errorf("expected ID=7, got %d", updated.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	newName := "ghost"
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 404, Name: &newName})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_EmailUniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	taken := "taken@example.com"
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 7, Email: &taken})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
