package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/deck/internal/slides"
)

// slideItem is the list item backing one slide in the picker.
type slideItem struct {
	Index int
	Name  string
}

// List item interface methods.
func (it slideItem) Title() string       { return it.Name }
func (it slideItem) Description() string { return "" }
func (it slideItem) FilterValue() string { return fmt.Sprintf("%d %s", it.Index+1, it.Name) }

func slideItems(reg *slides.Registry) []list.Item {
	items := make([]list.Item, 0, reg.Count())
	for i := range reg.Count() {
		items = append(items, slideItem{Index: i, Name: reg.TitleOf(i)})
	}
	return items
}

// slideDelegate renders slideItem rows with the active dot right-justified.
type slideDelegate struct {
	current func() int
}

func (d slideDelegate) Height() int                             { return 1 }
func (d slideDelegate) Spacing() int                            { return 0 }
func (d slideDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d slideDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(slideItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	leftPrefix := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		leftPrefix = "> "
		lineStyle = lineStyle.Foreground(lipgloss.Color("69")).Bold(true)
	}

	left := fmt.Sprintf("%s%02d. %s", leftPrefix, it.Index+1, it.Name)
	right := dotInactive
	if d.current != nil && d.current() == it.Index {
		right = dotActive
	}

	padding := max(m.Width()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + spaces(padding) + right
	_, _ = fmt.Fprint(w, lineStyle.Render(line))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(n).Render("")
}
