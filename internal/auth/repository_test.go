package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	user := &User{
		Email:        "analyst@example.com",
		PasswordHash: "bcrypt-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), user.Email, user.PasswordHash, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	user := &User{
		Email:        "analyst@example.com",
		PasswordHash: "bcrypt-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), user.Email, user.PasswordHash, now, now).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(uniqueViolation)})

	if err := repo.Create(context.Background(), user); !errors.Is(err, ErrUserExists) {
		t.Errorf("error = %v, want ErrUserExists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRepositoryGetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := "8d2c9b14-6a5f-4d3e-9c7b-2f1a0e8d6c4b"
	email := "analyst@example.com"

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(userID, email, "bcrypt-hash", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(email).
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != userID {
		t.Errorf("user ID = %q, want %q", user.ID, userID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRepositoryGetByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
	if user != nil {
		t.Error("expected nil user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("no-such-id").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
	if user != nil {
		t.Error("expected nil user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, newMemoryRepo())
	handler := Middleware(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMiddlewarePassesValidToken(t *testing.T) {
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, newMemoryRepo())
	if _, err := service.Register(context.Background(), "a@example.com", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	token, err := service.Login(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	var got *Claims
	handler := Middleware(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.Email != "a@example.com" {
		t.Errorf("claims not propagated through context: %+v", got)
	}
}
