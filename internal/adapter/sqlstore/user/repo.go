// Package user implements the User repository on top of sqlstore.
package user

import (
	"context"

	"github.com/heartmarshall/ainotes/internal/adapter/sqlstore"
	"github.com/heartmarshall/ainotes/internal/domain"
)

// Repo provides user persistence.
type Repo struct {
	db *sqlstore.DB
}

// New creates a new user repository.
func New(db *sqlstore.DB) *Repo {
	return &Repo{db: db}
}

// GetByUsername returns a user by exact, case-sensitive username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := r.db.Builder().
		Select("id", "username", "password_hash").
		From("users").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u domain.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		return nil, sqlstore.MapError(err, "user", 0)
	}
	return &u, nil
}

// Create inserts a new user and returns it with the store-assigned ID.
func (r *Repo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query, args, err := r.db.Builder().
		Insert("users").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	u := domain.User{Username: username, PasswordHash: passwordHash}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID); err != nil {
		return nil, sqlstore.MapError(err, "user", 0)
	}
	return &u, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.Builder().Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlstore.MapError(err, "user", 0)
	}
	return n, nil
}
