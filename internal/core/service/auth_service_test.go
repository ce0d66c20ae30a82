package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
	"github.com/dentalflow/clinic-system/internal/infrastructure/db/memory"
)

func seededRegistry(t *testing.T) *entity.Registry {
	t.Helper()
	reg := entity.NewRegistry(memory.NewStore(), zerolog.Nop())
	if err := reg.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return reg
}

func TestAuthService_LoginByUsername(t *testing.T) {
	reg := seededRegistry(t)
	svc := NewAuthService(reg.Users, zerolog.Nop())

	user, err := svc.Login(context.Background(), "admin", "hashed_password_for_admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "1" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked in login response")
	}
}

func TestAuthService_LoginByEmail(t *testing.T) {
	reg := seededRegistry(t)
	svc := NewAuthService(reg.Users, zerolog.Nop())

	user, err := svc.Login(context.Background(), "doctor@dentalflow.com", "hashed_password_for_doctor")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "2" || user.Role != domain.RoleDoctor {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	reg := seededRegistry(t)
	svc := NewAuthService(reg.Users, zerolog.Nop())

	_, err := svc.Login(context.Background(), "admin", "hashed_password_for_doctor")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownIdentifier(t *testing.T) {
	reg := seededRegistry(t)
	svc := NewAuthService(reg.Users, zerolog.Nop())

	_, err := svc.Login(context.Background(), "ghost", "hashed_password_for_ghost")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginEmptyFields(t *testing.T) {
	reg := seededRegistry(t)
	svc := NewAuthService(reg.Users, zerolog.Nop())

	for _, tc := range []struct{ identifier, password string }{
		{"", "hashed_password_for_admin"},
		{"admin", ""},
		{"", ""},
	} {
		if _, err := svc.Login(context.Background(), tc.identifier, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("identifier=%q password=%q: expected ErrInvalidCredentials, got %v", tc.identifier, tc.password, err)
		}
	}
}
