// Package auth implements account registration, login and first-run bootstrap.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// Service implements auth operations. It never touches cookies: callers
// turn the returned Identity into a session.
type Service struct {
	log      *slog.Logger
	users    userRepo
	hashCost int
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		hashCost: hashCost,
	}
}

// Logout records the end of a session. Sessions are stateless tokens, so
// the transport layer clears the cookie; calling this with a nil identity
// is a no-op.
func (s *Service) Logout(ctx context.Context, id *domain.Identity) {
	if id == nil {
		return
	}
	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", id.UserID))
}
