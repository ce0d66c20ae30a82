package ports

import (
	"context"
	"encoding/json"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

// AuthService authenticates users against the placeholder credential scheme.
type AuthService interface {
	// Login resolves identifier (username or email) and checks the supplied
	// password against the deterministic placeholder hash. Returns the user
	// with the password hash stripped, or domain.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (*domain.User, error)
}

// SettingsService manages the global role-to-modules permission map.
type SettingsService interface {
	Permissions(ctx context.Context) (domain.PermissionsMap, error)
	// ReplacePermissions swaps the mapping wholesale and returns it.
	ReplacePermissions(ctx context.Context, p domain.PermissionsMap) (domain.PermissionsMap, error)
}

// ChatService manages the bounded staff chat log.
type ChatService interface {
	Messages(ctx context.Context) ([]domain.ChatMessage, error)
	// Post stamps id, sender and timestamp and appends the message.
	Post(ctx context.Context, sender domain.User, text string) (*domain.ChatMessage, error)
}

// CreateUserInput carries the caller-supplied fields of a new user account.
// The id, password hash and timestamps are assigned server-side.
type CreateUserInput struct {
	Username string
	Email    string
	FullName string
	Role     domain.Role
	Phone    string
}

// UserService covers the hand-written staff account operations, which differ
// from the generic CRUD resources in their password-hash handling.
type UserService interface {
	// List returns all users with password hashes stripped.
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Update merges the partial patch over the stored user. When the patch
	// carries no password_hash the stored hash is preserved.
	Update(ctx context.Context, id string, patch json.RawMessage) (*domain.User, error)
	// Delete reports domain.ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
}
