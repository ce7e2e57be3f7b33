// Package note implements the Note repository on top of sqlstore.
package note

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heartmarshall/ainotes/internal/adapter/sqlstore"
	"github.com/heartmarshall/ainotes/internal/domain"
)

// Repo provides note persistence. Every method commits on its own.
type Repo struct {
	db *sqlstore.DB
}

// New creates a new note repository.
func New(db *sqlstore.DB) *Repo {
	return &Repo{db: db}
}

var noteColumns = []string{"id", "content", "summary"}

// List returns all notes ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Note, error) {
	query, args, err := r.db.Builder().
		Select(noteColumns...).
		From("notes").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// GetByID returns a single note.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	query, args, err := r.db.Builder().
		Select(noteColumns...).
		From("notes").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	n, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlstore.MapError(err, "note", id)
	}
	return &n, nil
}

// Create inserts a note with no summary.
func (r *Repo) Create(ctx context.Context, content string) (*domain.Note, error) {
	query, args, err := r.db.Builder().
		Insert("notes").
		Columns("content").
		Values(content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	n := domain.Note{Content: content}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n.ID); err != nil {
		return nil, sqlstore.MapError(err, "note", 0)
	}
	return &n, nil
}

// UpdateContent overwrites content and leaves summary untouched.
// Returns domain.ErrNotFound when no row has the id.
func (r *Repo) UpdateContent(ctx context.Context, id int64, content string) error {
	query, args, err := r.db.Builder().
		Update("notes").
		Set("content", content).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, id, query, args)
}

// SetSummary stores the summary text. Returns domain.ErrNotFound when no row has the id.
func (r *Repo) SetSummary(ctx context.Context, id int64, summary string) error {
	query, args, err := r.db.Builder().
		Update("notes").
		Set("summary", summary).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, id, query, args)
}

// Delete removes the note. Deleting an unknown id is not an error;
// the returned bool reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.db.Builder().
		Delete("notes").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqlstore.MapError(err, "note", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("note %d: rows affected: %w", id, err)
	}
	return n > 0, nil
}

func (r *Repo) execOne(ctx context.Context, id int64, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlstore.MapError(err, "note", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("note %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return sqlstore.MapError(sql.ErrNoRows, "note", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (domain.Note, error) {
	var (
		n       domain.Note
		summary sql.NullString
	)
	if err := s.Scan(&n.ID, &n.Content, &summary); err != nil {
		return domain.Note{}, err
	}
	if summary.Valid {
		n.Summary = &summary.String
	}
	return n, nil
}
