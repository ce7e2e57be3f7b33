// Package export renders all notes into a downloadable PDF document.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ainotes/internal/config"
	"github.com/heartmarshall/ainotes/internal/domain"
)

// ContentType is the MIME type of exported documents.
const ContentType = "application/pdf"

// noteLister defines the note source needed by export service.
type noteLister interface {
	List(ctx context.Context) ([]domain.Note, error)
}

// Document is a fully rendered export.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
	Notes       int
}

// Service implements the PDF export.
type Service struct {
	log      *slog.Logger
	notes    noteLister
	cfg      config.ExportConfig
	compress bool
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, notes noteLister, cfg config.ExportConfig) *Service {
	return &Service{
		log:      logger.With("service", "export"),
		notes:    notes,
		cfg:      cfg,
		compress: true,
	}
}

// ExportPDF renders every note, ordered by id, into memory.
func (s *Service) ExportPDF(ctx context.Context) (*Document, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export.ExportPDF list notes: %w", err)
	}

	c, err := newPDFCanvas(s.cfg.FontPath, s.compress)
	if err != nil {
		return nil, fmt.Errorf("export.ExportPDF: %w", err)
	}

	pages := render(c, layout{
		title:        s.cfg.Title,
		summaryLabel: s.cfg.SummaryLabel,
		wrapWidth:    s.cfg.WrapWidth,
	}, notes)

	var buf bytes.Buffer
	if err := c.output(&buf); err != nil {
		return nil, fmt.Errorf("export.ExportPDF render: %w", err)
	}

	s.log.InfoContext(ctx, "notes exported",
		slog.Int("notes", len(notes)),
		slog.Int("pages", pages),
		slog.Int("bytes", buf.Len()))

	return &Document{
		Filename:    s.cfg.Filename,
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       pages,
		Notes:       len(notes),
	}, nil
}
