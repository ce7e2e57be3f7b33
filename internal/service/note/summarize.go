package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// summaryPrompt is prepended to the raw note content.
	summaryPrompt = "Tóm tắt ghi chú này: "
	// FailurePrefix marks a stored summary that is an error message.
	FailurePrefix = "Lỗi AI: "
)

// SummaryStatus tells whether a summarization call produced a summary.
type SummaryStatus string

const (
	SummaryOK     SummaryStatus = "ok"
	SummaryFailed SummaryStatus = "failed"
)

// SummaryOutcome is what Summarize stored on the note. The stored column
// keeps only Text; Status exists for callers (logs, metrics).
type SummaryOutcome struct {
	Status SummaryStatus
	Text   string
}

// Summarize asks the text generator for a summary of the note and stores
// the result. Generator failures are stored as "Lỗi AI: <message>" and
// reported through the outcome, never as an error. Errors are returned
// only for persistence problems and for an unknown id (domain.ErrNotFound).
func (s *Service) Summarize(ctx context.Context, id int64) (SummaryOutcome, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return SummaryOutcome{}, fmt.Errorf("note.Summarize: %w", err)
	}

	outcome := s.generate(ctx, n.Content)

	// Record the outcome even if the client has gone away.
	if err := s.notes.SetSummary(context.WithoutCancel(ctx), id, outcome.Text); err != nil {
		return SummaryOutcome{}, fmt.Errorf("note.Summarize store: %w", err)
	}

	s.log.InfoContext(ctx, "note summarized",
		slog.Int64("note_id", id),
		slog.String("status", string(outcome.Status)))

	return outcome, nil
}

func (s *Service) generate(ctx context.Context, content string) SummaryOutcome {
	text, err := s.ai.GenerateText(ctx, summaryPrompt+content)
	if err == nil {
		text = strings.TrimSpace(text)
		if text != "" {
			return SummaryOutcome{Status: SummaryOK, Text: text}
		}
		err = fmt.Errorf("empty response")
	}

	s.log.WarnContext(ctx, "summary generation failed", slog.String("error", err.Error()))
	return SummaryOutcome{Status: SummaryFailed, Text: FailurePrefix + err.Error()}
}
