// Package export writes the companion guide of the talk as an A4 PDF.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// DefaultFileName is used when no output path is configured.
const DefaultFileName = "Vibe-Coding-Guide.pdf"

// ErrUnavailable wraps every export failure.
var ErrUnavailable = errors.New("export unavailable")

// Page geometry in millimetres.
const (
	pageW    = 210.0
	pageH    = 297.0
	margin   = 20.0
	contentW = pageW - margin*2
)

type rgb struct{ r, g, b int }

//nolint:gochecknoglobals // Fixed palette of the printed guide.
var (
	colDark      = rgb{5, 5, 5}
	colWhite     = rgb{255, 255, 255}
	colAccent    = rgb{99, 102, 241}
	colTeal      = rgb{45, 212, 191}
	colGray      = rgb{161, 161, 170}
	colLightGray = rgb{200, 200, 205}
	colBadge     = rgb{30, 30, 40}
	colCard      = rgb{18, 18, 24}
	colCardEdge  = rgb{40, 40, 55}
	colFooter    = rgb{80, 80, 90}
	colCopyright = rgb{60, 60, 70}
)

// Write renders the guide to w.
func Write(w io.Writer) error {
	doc := build()
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// WriteFile renders the guide to path, creating parent directories.
func WriteFile(path string) error {
	if path == "" {
		path = DefaultFileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := Write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// sheet tracks the write cursor over an fpdf document.
type sheet struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func newSheet() *sheet {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetTitle("Vibe Coding Guide", true)
	s := &sheet{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()
	s.background()
	return s
}

func (s *sheet) fill(c rgb) { s.pdf.SetFillColor(c.r, c.g, c.b) }
func (s *sheet) ink(c rgb)  { s.pdf.SetTextColor(c.r, c.g, c.b) }
func (s *sheet) pen(c rgb)  { s.pdf.SetDrawColor(c.r, c.g, c.b) }

func (s *sheet) background() {
	s.fill(colDark)
	s.pdf.Rect(0, 0, pageW, pageH, "F")
}

// section always starts on a fresh page.
func (s *sheet) section() {
	s.pdf.AddPage()
	s.background()
	s.y = margin
}

func (s *sheet) need(h float64) {
	if s.y+h > pageH-margin {
		s.section()
	}
}

// split wraps text to width w and returns the lines already translated to
// the core font encoding. SplitText indexes its width table by rune, so the
// encoded bytes are widened to one rune each for measuring.
func (s *sheet) split(text string, w float64) []string {
	enc := s.tr(text)
	wide := make([]rune, len(enc))
	for i := range len(enc) {
		wide[i] = rune(enc[i])
	}
	out := s.pdf.SplitText(string(wide), w)
	for i, l := range out {
		out[i] = narrow(l)
	}
	return out
}

// narrow reverses the widening done by split.
func narrow(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}
	return string(b)
}

func (s *sheet) lines(lines []string, x, step float64) {
	for i, l := range lines {
		s.pdf.Text(x, s.y+float64(i)*step, l)
	}
}

func (s *sheet) centered(text string, y float64) {
	t := s.tr(text)
	s.pdf.Text(pageW/2-s.pdf.GetStringWidth(t)/2, y, t)
}

func (s *sheet) spacer(n float64) { s.y += n }

func (s *sheet) heading(text string, size float64, c rgb) {
	s.pdf.SetFont("Helvetica", "B", size)
	s.ink(c)
	ls := s.split(text, contentW)
	lineH := size * 0.6
	s.need(lineH*float64(len(ls)) + 6)
	s.lines(ls, margin, lineH)
	s.y += lineH*float64(len(ls)) + 4
}

func (s *sheet) body(text string) {
	s.pdf.SetFont("Helvetica", "", 10)
	s.ink(colGray)
	ls := s.split(text, contentW)
	s.need(float64(len(ls))*5 + 4)
	s.lines(ls, margin, 5)
	s.y += float64(len(ls))*5 + 4
}

func (s *sheet) label(text string) {
	s.pdf.SetFont("Helvetica", "B", 7)
	s.ink(colAccent)
	s.need(10)
	s.pdf.Text(margin, s.y, s.tr(text))
	s.y += 7
}

func (s *sheet) link(text, url string) {
	s.pdf.SetFont("Helvetica", "", 9)
	s.ink(colAccent)
	tw := s.pdf.GetStringWidth(text)
	s.pdf.Text(margin, s.y, text)
	s.pdf.LinkString(margin, s.y-3.5, tw, 4.5, url)
	s.pen(colAccent)
	s.pdf.SetLineWidth(0.2)
	s.pdf.Line(margin, s.y+0.5, margin+tw, s.y+0.5)
	s.y += 5
}

func (s *sheet) bullet(title, desc string) {
	var ls []string
	if desc != "" {
		s.pdf.SetFont("Helvetica", "", 9)
		ls = s.split(desc, contentW-5)
	}
	s.need(8 + float64(len(ls))*4.8 + 6)
	s.fill(colAccent)
	s.pdf.Circle(margin+1.5, s.y-1.2, 1, "F")
	s.pdf.SetFont("Helvetica", "B", 10)
	s.ink(colWhite)
	s.pdf.Text(margin+5, s.y, s.tr(title))
	s.y += 6
	if len(ls) > 0 {
		s.pdf.SetFont("Helvetica", "", 9)
		s.ink(colGray)
		s.lines(ls, margin+5, 4.8)
		s.y += float64(len(ls))*4.8 + 5
	}
}

func (s *sheet) numbered(num, title, desc string) {
	var ls []string
	if desc != "" {
		s.pdf.SetFont("Helvetica", "", 9)
		ls = s.split(desc, contentW-12)
	}
	s.need(10 + float64(len(ls))*4.8 + 6)
	s.fill(colBadge)
	s.pdf.RoundedRect(margin, s.y-4, 8, 6, 1, "1234", "F")
	s.pdf.SetFont("Helvetica", "B", 7)
	s.ink(colAccent)
	s.pdf.Text(margin+2.5, s.y, num)
	s.pdf.SetFont("Helvetica", "B", 10)
	s.ink(colWhite)
	s.pdf.Text(margin+12, s.y, s.tr(title))
	s.y += 6
	if len(ls) > 0 {
		s.pdf.SetFont("Helvetica", "", 9)
		s.ink(colGray)
		s.lines(ls, margin+12, 4.8)
		s.y += float64(len(ls))*4.8 + 6
	}
}

func (s *sheet) tool(name, desc string) {
	s.need(22)
	s.fill(colCard)
	s.pen(colCardEdge)
	s.pdf.RoundedRect(margin, s.y-4, contentW, 18, 2, "1234", "FD")
	s.pdf.SetFont("Helvetica", "B", 11)
	s.ink(colWhite)
	s.pdf.Text(margin+6, s.y+2, s.tr(name))
	s.pdf.SetFont("Helvetica", "", 8.5)
	s.ink(colGray)
	s.pdf.Text(margin+6, s.y+8, s.tr(desc))
	s.y += 20
}

func (s *sheet) rule(c rgb, w, width float64) {
	s.pen(c)
	s.pdf.SetLineWidth(width)
	s.pdf.Line(margin, s.y, margin+w, s.y)
}
