package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
	"github.com/dentalflow/clinic-system/internal/infrastructure/db/memory"
)

func newSettingsService() *SettingsService {
	reg := entity.NewRegistry(memory.NewStore(), zerolog.Nop())
	return NewSettingsService(reg.Settings)
}

func TestSettingsService_DefaultsOnFirstAccess(t *testing.T) {
	svc := newSettingsService()

	perms, err := svc.Permissions(context.Background())
	if err != nil {
		t.Fatalf("permissions: %v", err)
	}
	if len(perms) != 6 {
		t.Fatalf("expected defaults for all 6 roles, got %d", len(perms))
	}
	if len(perms[domain.RoleAdmin]) != 9 {
		t.Fatalf("unexpected admin modules: %v", perms[domain.RoleAdmin])
	}
	if len(perms[domain.RolePatient]) != 2 || perms[domain.RolePatient][0] != "Portal" {
		t.Fatalf("unexpected patient modules: %v", perms[domain.RolePatient])
	}
}

func TestSettingsService_ReplacePersists(t *testing.T) {
	svc := newSettingsService()

	replaced, err := svc.ReplacePermissions(context.Background(), domain.PermissionsMap{
		domain.RoleDoctor: {"Dashboard", "Appointments"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(replaced) != 1 {
		t.Fatalf("expected wholesale replacement, got %v", replaced)
	}

	perms, err := svc.Permissions(context.Background())
	if err != nil {
		t.Fatalf("permissions: %v", err)
	}
	if len(perms) != 1 || len(perms[domain.RoleDoctor]) != 2 {
		t.Fatalf("replacement not persisted: %v", perms)
	}
	if _, ok := perms[domain.RoleAdmin]; ok {
		t.Fatalf("expected admin entry removed by replacement")
	}
}
