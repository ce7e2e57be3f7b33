// Package note implements the note lifecycle: CRUD, AI summaries and
// Markdown rendering of note content.
package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// noteRepo defines the note repository interface needed by note service.
type noteRepo interface {
	List(ctx context.Context) ([]domain.Note, error)
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, content string) (*domain.Note, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	SetSummary(ctx context.Context, id int64, summary string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// textGenerator produces text for a prompt.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service implements note operations. Authorization is enforced by the
// transport layer before any mutating method is reached.
type Service struct {
	log   *slog.Logger
	notes noteRepo
	ai    textGenerator
	md    goldmark.Markdown
}

// NewService creates a new note service instance.
func NewService(logger *slog.Logger, notes noteRepo, ai textGenerator) *Service {
	return &Service{
		log:   logger.With("service", "note"),
		notes: notes,
		ai:    ai,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// List returns all notes ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("note.List: %w", err)
	}
	return notes, nil
}

// Get returns a single note or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Note, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("note.Get: %w", err)
	}
	return n, nil
}

// Create stores a new note without a summary.
func (s *Service) Create(ctx context.Context, content string) (*domain.Note, error) {
	if err := domain.ValidateNoteContent(content); err != nil {
		return nil, err
	}

	n, err := s.notes.Create(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("note.Create: %w", err)
	}

	s.log.InfoContext(ctx, "note created", slog.Int64("note_id", n.ID))
	return n, nil
}

// Update replaces the content of an existing note; the summary is kept.
// Returns domain.ErrNotFound for an unknown id and creates nothing.
func (s *Service) Update(ctx context.Context, id int64, content string) error {
	if err := domain.ValidateNoteContent(content); err != nil {
		return err
	}

	if err := s.notes.UpdateContent(ctx, id, content); err != nil {
		return fmt.Errorf("note.Update: %w", err)
	}

	s.log.InfoContext(ctx, "note updated", slog.Int64("note_id", id))
	return nil
}

// Delete removes a note. Unknown ids are not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.notes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("note.Delete: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", id))
	} else {
		s.log.DebugContext(ctx, "delete of unknown note ignored", slog.Int64("note_id", id))
	}
	return nil
}
