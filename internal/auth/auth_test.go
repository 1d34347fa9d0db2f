package auth

import (
	"context"
	"testing"
	"time"
)

type memoryRepo struct {
	users map[string]*User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*User)}
}

func (m *memoryRepo) Create(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	m.users[user.Email] = user
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, newMemoryRepo())

	user, err := service.Register(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Error("password must not be stored in plain text")
	}

	token, err := service.Login(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("claims email = %q, want a@example.com", claims.Email)
	}
	if claims.Issuer != tokenIssuer {
		t.Errorf("claims issuer = %q, want %q", claims.Issuer, tokenIssuer)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, newMemoryRepo())

	if _, err := service.Register(context.Background(), "a@example.com", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := service.Register(context.Background(), "a@example.com", "other-password"); err != ErrUserExists {
		t.Errorf("error = %v, want ErrUserExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, newMemoryRepo())

	if _, err := service.Register(context.Background(), "a@example.com", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := service.Login(context.Background(), "a@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	repo := newMemoryRepo()
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, repo)
	other := NewJWTService(Config{SecretKey: "other-secret", TokenDuration: time.Hour}, repo)

	if _, err := service.Register(context.Background(), "a@example.com", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	token, err := service.Login(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	repo := newMemoryRepo()
	service := NewJWTService(Config{SecretKey: "test-secret", TokenDuration: -time.Minute}, repo)

	if _, err := service.Register(context.Background(), "a@example.com", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	token, err := service.Login(context.Background(), "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := service.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}
