package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

// UserService implements the hand-written staff account operations. Unlike
// the generic CRUD resources, users carry a server-assigned password hash
// that must never leak to clients and must survive partial updates.
type UserService struct {
	users *entity.Collection[domain.User]
	log   zerolog.Logger
}

func NewUserService(users *entity.Collection[domain.User], log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: domain.PlaceholderHash(in.Username),
		FullName:     in.FullName,
		Role:         in.Role,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch json.RawMessage) (*domain.User, error) {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	current, err := s.users.GetState(ctx, id)
	if err != nil {
		return nil, err
	}
	merged, err := entity.MergePatch(current, patch)
	if err != nil {
		return nil, err
	}
	merged.ID = id
	// An absent or empty password_hash in the patch keeps the stored hash.
	if merged.PasswordHash == "" {
		merged.PasswordHash = current.PasswordHash
	}
	merged.StampUpdated(time.Now().UTC().Format(time.RFC3339))

	if err := s.users.Save(ctx, merged); err != nil {
		return nil, err
	}
	sanitized := merged.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
