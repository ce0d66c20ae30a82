package service

import (
	"context"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// SettingsService manages the global permissions singleton.
type SettingsService struct {
	settings *entity.Singleton[domain.AppSettings]
}

func NewSettingsService(settings *entity.Singleton[domain.AppSettings]) *SettingsService {
	return &SettingsService{settings: settings}
}

// Permissions returns the role-to-modules mapping, creating the default
// settings document on first access.
func (s *SettingsService) Permissions(ctx context.Context) (domain.PermissionsMap, error) {
	state, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return state.Permissions, nil
}

// ReplacePermissions swaps the mapping wholesale. Role-gating belongs to the
// route layer.
func (s *SettingsService) ReplacePermissions(ctx context.Context, p domain.PermissionsMap) (domain.PermissionsMap, error) {
	state, err := s.settings.Mutate(ctx, func(st domain.AppSettings) domain.AppSettings {
		st.Permissions = p
		return st
	})
	if err != nil {
		return nil, err
	}
	return state.Permissions, nil
}
