package note

import (
	"bytes"
	"fmt"
	"html/template"
)

// RenderContent converts note Markdown to HTML. Raw HTML in the source and
// dangerous link schemes are dropped by the renderer.
func (s *Service) RenderContent(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("note.RenderContent: %w", err)
	}
	return template.HTML(buf.String()), nil
}
