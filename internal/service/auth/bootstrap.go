package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// EnsureDefaultUser creates the bootstrap account when no users exist.
// It reports whether an account was created. Safe to call on every start.
func (s *Service) EnsureDefaultUser(ctx context.Context, username, password string) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("auth.EnsureDefaultUser count: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	input := CredentialsInput{Username: username, Password: password}.normalize()
	if err := input.Validate(); err != nil {
		return false, fmt.Errorf("auth.EnsureDefaultUser: %w", err)
	}

	user, err := s.createUser(ctx, input)
	if err != nil {
		// Another instance won the race.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("auth.EnsureDefaultUser: %w", err)
	}

	s.log.WarnContext(ctx, "default account created",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return true, nil
}
