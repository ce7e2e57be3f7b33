package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// Register creates a new user with a bcrypt password hash.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input CredentialsInput) (domain.Identity, error) {
	input = input.normalize()

	if err := input.Validate(); err != nil {
		return domain.Identity{}, err
	}

	// The unique constraint backstops concurrent registrations.
	_, err := s.users.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return domain.Identity{}, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Identity{}, fmt.Errorf("auth.Register get user: %w", err)
	}

	user, err := s.createUser(ctx, input)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return user.Identity(), nil
}

func (s *Service) createUser(ctx context.Context, input CredentialsInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, input.Username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
