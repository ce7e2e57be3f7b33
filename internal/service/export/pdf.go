package export

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "notefont"

// DejaVu Sans Condensed covers Latin Extended Additional, so Vietnamese
// summaries render without substitution.
//
//go:embed fonts/*.ttf
var fontsFS embed.FS

var embeddedFonts = map[string]string{
	"":  "fonts/DejaVuSansCondensed.ttf",
	"B": "fonts/DejaVuSansCondensed-Bold.ttf",
	"I": "fonts/DejaVuSansCondensed-Oblique.ttf",
}

// pdfCanvas draws UTF-8 text onto an fpdf document.
type pdfCanvas struct {
	pdf *fpdf.Fpdf
}

// newPDFCanvas registers the embedded DejaVu faces, or the TTF at fontPath
// for every style when one is configured.
func newPDFCanvas(fontPath string, compress bool) (*pdfCanvas, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(compress)

	var override []byte
	if fontPath != "" {
		ttf, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", fontPath, err)
		}
		override = ttf
	}

	for style, name := range embeddedFonts {
		ttf := override
		if ttf == nil {
			b, err := fontsFS.ReadFile(name)
			if err != nil {
				return nil, fmt.Errorf("read embedded font %s: %w", name, err)
			}
			ttf = b
		}
		pdf.AddUTF8FontFromBytes(fontFamily, style, ttf)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("init pdf: %w", err)
	}
	return &pdfCanvas{pdf: pdf}, nil
}

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

// output writes the finished document; it reports any error fpdf recorded
// while drawing.
func (c *pdfCanvas) output(w io.Writer) error {
	return c.pdf.Output(w)
}
