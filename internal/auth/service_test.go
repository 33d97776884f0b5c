package auth

import (
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	user, err := service.Register("Test User", "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleUser {
		t.Fatalf("expected role %s, got %s", RoleUser, user.Role)
	}
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register("Other User", "test@example.com", "Password@456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Login("test@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	_, err := service.Login("nobody@example.com", "Password@123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
