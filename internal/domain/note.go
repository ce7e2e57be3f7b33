package domain

import "strings"

// Note is a unit of user text with an optional AI-generated summary.
// Summary is nil until summarization runs; afterwards it holds either the
// generated text or a failure message, indistinguishable at this level.
type Note struct {
	ID      int64
	Content string
	Summary *string
}

// HasSummary reports whether a summary (or failure message) has been stored.
func (n *Note) HasSummary() bool {
	return n.Summary != nil && *n.Summary != ""
}

// SummaryText returns the stored summary or "" when absent.
func (n *Note) SummaryText() string {
	if n.Summary == nil {
		return ""
	}
	return *n.Summary
}

// ValidateNoteContent checks that content carries non-whitespace text.
func ValidateNoteContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "required")
	}
	return nil
}
