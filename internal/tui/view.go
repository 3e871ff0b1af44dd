package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading deck...\n"
	}

	footer := m.renderFooter()
	w, _ := m.paneSize()
	h := max(m.height-lipgloss.Height(footer), paneMinHeight)

	var main string
	if m.overlay == overlayPicker {
		lst := m.picker
		lst.SetSize(w, h)
		main = lipgloss.NewStyle().Width(w).Height(h).Render(lst.View())
	} else {
		main = m.renderStrip(w, h)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(h), main)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// paneSize is the width and height of one slide pane.
func (m Model) paneSize() (int, int) {
	return max(m.width-sidebarWidth, paneMinWidth), max(m.height-footerLines, paneMinHeight)
}

// renderStrip cuts the visible window out of the horizontal strip of
// slides. While the track moves, the window straddles two panes.
func (m Model) renderStrip(w, h int) string {
	bg := strings.Split(m.field.Render(w, h), "\n")
	n := m.reg.Count()

	pos := math.Max(0, math.Min(-m.track.Position(m.now()), float64(n-1)))
	left := int(math.Floor(pos))
	off := int(math.Round((pos - float64(left)) * float64(w)))
	if off >= w {
		left, off = left+1, 0
	}

	a := m.paneLines(left, w, h, bg)
	if off == 0 || left+1 >= n {
		return strings.Join(a, "\n")
	}
	b := m.paneLines(left+1, w, h, bg)
	rows := make([]string, h)
	for r := range h {
		rows[r] = ansi.Cut(a[r]+b[r], off, off+w)
	}
	return strings.Join(rows, "\n")
}

// paneLines lays out slide i as exactly h lines of width w, filling the
// space around the content with the backdrop.
func (m Model) paneLines(i, w, h int, bg []string) []string {
	desc := m.reg.Descriptor(i)
	var content []string
	for j, el := range desc.Elements {
		lines := m.renderer.element(i, j, el.Text)
		content = append(content, m.renderer.placeElement(lines, el.Role, m.stage.Props(i, j))...)
	}
	if desc.HasAuxiliaryBehavior {
		content = append(content, "")
		content = append(content, m.renderer.renderCountdown(m.timerHook.Timer())...)
	}

	top := max((h-len(content))/2, paneVPadding)
	out := make([]string, h)
	for row := range h {
		line := ""
		if c := row - top; c >= 0 && c < len(content) && content[c] != "" {
			line = ansi.Truncate(shift(content[c], paneHPadding), w, "")
		}
		fill := ""
		if row < len(bg) {
			fill = ansi.Cut(bg[row], ansi.StringWidth(line), w)
		}
		out[row] = line + fill
	}
	return out
}

func (m Model) renderSidebar(h int) string {
	p := m.renderer.palette
	snap := m.side.snap
	inner := sidebarWidth - 2

	muted := lipgloss.NewStyle().Foreground(p.Muted)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(ansi.Truncate(strings.ToUpper(m.reg.Title()), inner, "…")),
		muted.Render(ansi.Truncate(m.reg.Author(), inner, "…")),
		"",
	}
	for i, d := range snap.Dots {
		name := ansi.Truncate(m.reg.TitleOf(i), inner-2, "…")
		if d.Active {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(dotActive+" "+name))
			continue
		}
		lines = append(lines, muted.Render(dotInactive+" "+name))
	}

	lines = append(lines,
		"",
		lipgloss.NewStyle().Bold(true).Foreground(p.Foreground).Render(fmt.Sprintf("%02d / %02d", snap.Counter, snap.Total)),
		m.progress.ViewAs(snap.Progress),
		muted.Render("#"+snap.Fragment),
		"",
		muted.Render("theme: "+string(m.pref.Current())),
		m.renderExportControl(),
	)

	return lipgloss.NewStyle().Width(sidebarWidth).Height(h).MaxHeight(h).Render(strings.Join(lines, "\n"))
}

func (m Model) renderExportControl() string {
	p := m.renderer.palette
	if m.exporting {
		return lipgloss.NewStyle().Foreground(p.Muted).Render(m.spinner.View() + " Generating...")
	}
	return lipgloss.NewStyle().Foreground(p.Teal).Render("p: download guide")
}

func (m Model) renderFooter() string {
	p := m.renderer.palette
	var parts []string
	if m.alert != "" {
		color := p.Teal
		if m.alertIsErr {
			color = p.Alert
		}
		parts = append(parts, lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(color).
			Foreground(color).
			Padding(0, 1).
			Render(m.alert))
	}
	if m.overlay == overlayAddress {
		parts = append(parts, m.address.View())
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
