package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

// A4 page geometry in millimeters, matching the print CSS (2cm margin).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 20.0
)

// PDFOptions configures direct PDF rendering.
type PDFOptions struct {
	FontPath string  // TTF/OTF file; a system serif is tried when empty
	FontSize float64 // point size; 12 when zero
}

// PDFRenderer renders letter text onto A4 pages.
type PDFRenderer struct {
	logger *logrus.Logger
}

// NewPDFRenderer creates a renderer.
func NewPDFRenderer(logger *logrus.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// WritePDF lays the letter text out line by line and writes a PDF to
// path. Long lines wrap at the text width; pages break as needed.
func (r *PDFRenderer) WritePDF(path, text string, opts PDFOptions) error {
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	fontFamily := canvas.NewFontFamily("letter")
	if opts.FontPath != "" {
		if err := fontFamily.LoadFontFile(opts.FontPath, canvas.FontRegular); err != nil {
			return fmt.Errorf("failed to load font %s: %w", opts.FontPath, err)
		}
	} else if err := fontFamily.LoadSystemFont("serif", canvas.FontRegular); err != nil {
		return fmt.Errorf("failed to load a system serif font (set export.font_path): %w", err)
	}

	face := fontFamily.Face(opts.FontSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	// 1.6 line height, as in the print stylesheet. Face size is in
	// points; convert to page millimeters.
	lineHeight := opts.FontSize * 1.6 * 25.4 / 72.0
	textWidth := pageWidth - 2*pageMargin
	usableHeight := pageHeight - 2*pageMargin
	linesPerPage := int(usableHeight / lineHeight)
	if linesPerPage < 1 {
		linesPerPage = 1
	}

	lines := wrapLines(strings.Split(text, "\n"), face, textWidth)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PDF file: %w", err)
	}
	defer f.Close()

	w := pdf.New(f, pageWidth, pageHeight, nil)
	for page := 0; page*linesPerPage < len(lines); page++ {
		if page > 0 {
			w.NewPage(pageWidth, pageHeight)
		}
		c := canvas.New(pageWidth, pageHeight)
		ctx := canvas.NewContext(c)

		start := page * linesPerPage
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		y := pageHeight - pageMargin - lineHeight
		for _, line := range lines[start:end] {
			if line != "" {
				ctx.DrawText(pageMargin, y, canvas.NewTextLine(face, line, canvas.Left))
			}
			y -= lineHeight
		}
		c.RenderTo(w)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize PDF: %w", err)
	}

	if r.logger != nil {
		r.logger.WithField("path", path).Debug("Wrote PDF document")
	}
	return nil
}

// wrapLines splits lines that exceed the text width, breaking at
// spaces where possible.
func wrapLines(lines []string, face *canvas.FontFace, width float64) []string {
	var out []string
	for _, line := range lines {
		for textLineWidth(face, line) > width {
			cut := len(line)
			for cut > 1 && textLineWidth(face, line[:cut]) > width {
				if i := strings.LastIndex(line[:cut-1], " "); i > 0 {
					cut = i
				} else {
					cut--
				}
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return out
}

func textLineWidth(face *canvas.FontFace, line string) float64 {
	if line == "" {
		return 0
	}
	return canvas.NewTextLine(face, line, canvas.Left).Bounds().W()
}
