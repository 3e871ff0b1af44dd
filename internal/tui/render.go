package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/deck/internal/countdown"
	"github.com/ensigniasec/deck/internal/motion"
	"github.com/ensigniasec/deck/internal/slides"
	"github.com/ensigniasec/deck/internal/theme"
)

type elementKey struct{ slide, element int }

// slideRenderer turns element markdown into styled terminal text. Output is
// cached per element until the theme or the pane width changes.
type slideRenderer struct {
	theme   theme.Theme
	palette theme.Palette
	width   int
	term    *glamour.TermRenderer
	cache   map[elementKey][]string
}

func newSlideRenderer(t theme.Theme) *slideRenderer {
	return &slideRenderer{theme: t, palette: theme.PaletteFor(t), cache: make(map[elementKey][]string)}
}

// SetTheme implements theme.Renderer.
func (r *slideRenderer) SetTheme(t theme.Theme) {
	r.theme = t
	r.palette = theme.PaletteFor(t)
	r.reset()
}

func (r *slideRenderer) reset() {
	r.term = nil
	clear(r.cache)
}

func (r *slideRenderer) resize(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.reset()
}

// element returns the rendered lines of one element.
func (r *slideRenderer) element(slide, element int, md string) []string {
	k := elementKey{slide, element}
	if lines, ok := r.cache[k]; ok {
		return lines
	}
	out := r.markdown(md)
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	r.cache[k] = lines
	return lines
}

func (r *slideRenderer) markdown(md string) string {
	if r.term == nil {
		term, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.palette.GlamourStyle),
			glamour.WithWordWrap(max(r.width, paneMinWidth)),
		)
		if err != nil {
			logrus.Debugf("markdown renderer unavailable: %v", err)
			return md
		}
		r.term = term
	}
	out, err := r.term.Render(md)
	if err != nil {
		logrus.Debugf("rendering slide markdown: %v", err)
		return md
	}
	return out
}

// reserveLines is the headroom kept under an element so its entry offset
// never pushes the rest of the slide around.
func reserveLines(role slides.Role) int {
	switch role {
	case slides.RoleTitle:
		return 2
	case slides.RoleFade:
		return 1
	default:
		return 0
	}
}

// placeElement applies animation props to rendered lines.
func (r *slideRenderer) placeElement(lines []string, role slides.Role, p motion.Props) []string {
	reserve := reserveLines(role)
	down := min(max(int(math.Round(p.Y/pxPerLine)), 0), reserve)
	indent := max(int(math.Round(p.X/pxPerCol)), -2)

	out := make([]string, 0, len(lines)+reserve)
	for range down {
		out = append(out, "")
	}
	switch {
	case p.Opacity < hiddenOpacity:
		for range lines {
			out = append(out, "")
		}
	case p.Opacity < faintOpacity:
		st := lipgloss.NewStyle().Foreground(r.palette.Muted).Faint(true).Italic(p.Skew > 0.5)
		for _, l := range lines {
			out = append(out, shift(st.Render(ansi.Strip(l)), indent))
		}
	default:
		for _, l := range lines {
			out = append(out, shift(l, indent))
		}
	}
	for range reserve - down {
		out = append(out, "")
	}
	return out
}

// shift moves a line right by n columns, or left by trimming up to -n
// leading columns.
func shift(line string, n int) string {
	switch {
	case n > 0:
		return strings.Repeat(" ", n) + line
	case n < 0:
		return ansi.TruncateLeft(line, -n, "")
	default:
		return line
	}
}

// renderCountdown draws the timer digits. Digits that changed on the last
// tick are highlighted as a flip cue.
func (r *slideRenderer) renderCountdown(t *countdown.Timer) []string {
	digits := t.Digits()
	changed := t.LastChanged()
	base := lipgloss.NewStyle().Bold(true).Foreground(r.palette.Foreground).Padding(0, 1)
	flip := base.Foreground(r.palette.Teal)

	cells := make([]string, 0, 5)
	for i, d := range digits {
		st := base
		if changed[i] && t.Running() {
			st = flip
		}
		cells = append(cells, st.Render(fmt.Sprint(d)))
		if i == 1 {
			cells = append(cells, base.Foreground(r.palette.Muted).Render(":"))
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.palette.Teal).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	return strings.Split(box, "\n")
}
