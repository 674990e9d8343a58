// Package pdf renders text documents as single-page PDFs.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedEncoding is returned when text contains a character the
// built-in PDF fonts cannot represent.
var ErrUnsupportedEncoding = errors.New("text cannot be encoded in Windows-1252")

// Layout of the page, in points from the top-left corner.
const (
	marginLeft    = 50.0
	titleBaseline = 42.0
	titleSize     = 18.0
	firstLine     = 72.0
	lineStep      = 18.0
	lineSize      = 12.0
	fontFamily    = "Helvetica"
)

// Renderer renders a title and lines onto one Letter page.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for the document creation date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements usecase.DocumentRenderer. Lines that run past the
// bottom of the page are clipped.
func (r *Renderer) Render(title string, lines []string) ([]byte, error) {
	encodedTitle, err := encode(title)
	if err != nil {
		return nil, err
	}
	encodedLines := make([]string, len(lines))
	for i, line := range lines {
		if encodedLines[i], err = encode(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	created := r.now().UTC()

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCatalogSort(true)
	doc.SetCreationDate(created)
	doc.SetModificationDate(created)
	doc.SetTitle(title, true)
	doc.SetCreator("gobank", false)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont(fontFamily, "", titleSize)
	doc.Text(marginLeft, titleBaseline, encodedTitle)

	doc.SetFont(fontFamily, "", lineSize)
	_, pageHeight := doc.GetPageSize()
	y := firstLine
	for _, line := range encodedLines {
		if y > pageHeight {
			break
		}
		doc.Text(marginLeft, y, line)
		y += lineStep
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func encode(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
	return out, nil
}
