package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ainotes/internal/config"
	"github.com/heartmarshall/ainotes/internal/domain"
)

type stubLister struct {
	notes []domain.Note
	err   error
}

func (s stubLister) List(ctx context.Context) ([]domain.Note, error) { return s.notes, s.err }

func newTestService(notes noteLister) *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), notes, config.ExportConfig{
		Title:        "My notes",
		SummaryLabel: "AI summary:",
		Filename:     "notes.pdf",
		WrapWidth:    90,
	})
	svc.compress = false
	return svc
}

// drawn returns s as it appears in an uncompressed content stream drawn
// with a UTF-8 font: UTF-16BE with PDF string escapes.
func drawn(s string) string {
	var b strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		b.WriteByte(byte(u >> 8))
		b.WriteByte(byte(u))
	}
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`, "\r", `\r`).Replace(b.String())
}

func TestService_ExportPDF_ContainsNote(t *testing.T) {
	t.Parallel()

	svc := newTestService(stubLister{notes: []domain.Note{{ID: 1, Content: "Buy milk"}}})

	doc, err := svc.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "notes.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, 1, doc.Pages)
	assert.Equal(t, 1, doc.Notes)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF-")), "not a PDF")
	assert.Contains(t, string(doc.Data), drawn("Note #1"))
	assert.Contains(t, string(doc.Data), drawn("Buy milk"))
}

func TestService_ExportPDF_MultiplePages(t *testing.T) {
	t.Parallel()

	notes := make([]domain.Note, 0, 80)
	for i := range 80 {
		notes = append(notes, domain.Note{ID: int64(i + 1), Content: "line of text"})
	}
	svc := newTestService(stubLister{notes: notes})

	doc, err := svc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Greater(t, doc.Pages, 1)
	assert.Contains(t, string(doc.Data), drawn("Note #80"))
}

func TestService_ExportPDF_ListError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc := newTestService(stubLister{err: boom})

	_, err := svc.ExportPDF(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_ExportPDF_VietnameseSummaryKept(t *testing.T) {
	t.Parallel()

	summary := "Lỗi AI: Tóm tắt ghi chú này"
	svc := newTestService(stubLister{notes: []domain.Note{
		{ID: 1, Content: "Mua sữa và trứng", Summary: &summary},
	}})

	doc, err := svc.ExportPDF(context.Background())
	require.NoError(t, err)

	data := string(doc.Data)
	assert.Contains(t, data, drawn("Mua sữa và trứng"))
	assert.Contains(t, data, drawn("AI summary: Lỗi AI: Tóm tắt ghi chú này"))
	assert.NotContains(t, data, "L.i AI")
}

func TestService_ExportPDF_CustomFont(t *testing.T) {
	t.Parallel()

	ttf, err := fontsFS.ReadFile(embeddedFonts[""])
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "custom.ttf")
	require.NoError(t, os.WriteFile(path, ttf, 0o600))

	svc := newTestService(stubLister{notes: []domain.Note{{ID: 1, Content: "Ghi chú"}}})
	svc.cfg.FontPath = path

	doc, err := svc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(doc.Data), drawn("Ghi chú"))
}

func TestService_ExportPDF_MissingFont(t *testing.T) {
	t.Parallel()

	svc := newTestService(stubLister{})
	svc.cfg.FontPath = "/nonexistent/font.ttf"

	_, err := svc.ExportPDF(context.Background())
	assert.Error(t, err)
}
