package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// AuthService implements login against the placeholder credential scheme.
// There is no token issuance: clients authenticate subsequent requests with
// the raw user id as a bearer token.
type AuthService struct {
	users *entity.Collection[domain.User]
	log   zerolog.Logger
}

func NewAuthService(users *entity.Collection[domain.User], log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Login resolves identifier against usernames and emails, then requires the
// supplied password to equal the deterministic placeholder derived from the
// matched user's username. Any failure, whichever field was wrong, is the
// same invalid-credentials error.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != identifier && u.Email != identifier {
			continue
		}
		if password != domain.PlaceholderHash(u.Username) {
			break
		}
		s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login succeeded")
		sanitized := u.Sanitized()
		return &sanitized, nil
	}

	s.log.Warn().Str("identifier", identifier).Msg("login failed")
	return nil, domain.ErrInvalidCredentials
}
