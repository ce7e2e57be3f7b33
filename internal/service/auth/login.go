package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// Login authenticates a user by exact username and password.
// Returns ErrUnauthorized if the user is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input CredentialsInput) (domain.Identity, error) {
	input = input.normalize()

	if err := input.Validate(); err != nil {
		return domain.Identity{}, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.InfoContext(ctx, "login rejected", slog.Int64("user_id", user.ID))
		return domain.Identity{}, domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return user.Identity(), nil
}
