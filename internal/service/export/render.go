package export

import (
	"fmt"

	"github.com/heartmarshall/ainotes/internal/domain"
)

// A4 portrait, in points.
const (
	pageHeight = 841.89

	marginLeft = 50.0
	marginTop  = 50.0
	// A new page starts once the cursor is this close to the bottom edge.
	bottomReserve = 80.0

	summaryIndent = 20.0
	lineHeight    = 15.0
	titleGap      = 10.0
	noteGap       = 10.0

	titleSize  = 16.0
	headerSize = 12.0
	bodySize   = 11.0
)

// canvas is the drawing surface the renderer paginates onto.
type canvas interface {
	AddPage()
	SetFont(style string, size float64)
	Text(x, y float64, s string)
}

type fontSpec struct {
	style string
	size  float64
}

// layout carries the per-export text settings.
type layout struct {
	title        string
	summaryLabel string
	wrapWidth    int
}

// renderer lays notes out top-down, checking for a page break before
// every line it draws.
type renderer struct {
	c     canvas
	l     layout
	y     float64
	font  fontSpec
	pages int
}

func render(c canvas, l layout, notes []domain.Note) int {
	r := &renderer{c: c, l: l, font: fontSpec{style: "B", size: titleSize}}
	r.newPage()

	r.line(marginLeft, r.l.title)
	r.y += titleGap

	for _, n := range notes {
		r.setFont("B", headerSize)
		r.line(marginLeft, fmt.Sprintf("Note #%d", n.ID))

		r.setFont("", bodySize)
		for _, ln := range wrap(n.Content, r.l.wrapWidth) {
			r.line(marginLeft, ln)
		}

		if n.HasSummary() {
			text := n.SummaryText()
			if r.l.summaryLabel != "" {
				text = r.l.summaryLabel + " " + text
			}
			for _, ln := range wrap(text, r.l.wrapWidth) {
				r.line(marginLeft+summaryIndent, ln)
			}
		}

		r.y += noteGap
	}

	return r.pages
}

func (r *renderer) line(x float64, text string) {
	if r.y >= pageHeight-bottomReserve {
		r.newPage()
	}
	r.c.Text(x, r.y, text)
	r.y += lineHeight
}

func (r *renderer) setFont(style string, size float64) {
	r.font = fontSpec{style: style, size: size}
	r.c.SetFont(style, size)
}

// newPage starts a page and re-applies the current font.
func (r *renderer) newPage() {
	r.c.AddPage()
	r.pages++
	r.y = marginTop
	r.c.SetFont(r.font.style, r.font.size)
}
