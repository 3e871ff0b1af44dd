package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(x)
		after := m.afterInput()
		return m, tea.Batch(cmd, after)

	case tea.MouseMsg:
		m.handleMouse(x)
		cmd := m.afterInput()
		return m, cmd

	case frameMsg:
		now := m.now()
		if gen, done := m.track.Step(now); done {
			m.nav.Settle(gen)
		}
		m.field.Step(now)
		if m.needsFrames() {
			return m, m.tickFrame()
		}
		m.ticking = false
		return m, nil

	case countdownTickMsg:
		timer := m.timerHook.Timer()
		if _, ok := timer.Tick(x.Gen); !ok {
			return m, nil
		}
		if timer.Running() {
			return m, tickCountdown(x.Gen)
		}
		return m, nil

	case exportDoneMsg:
		// The export control is restored on every outcome.
		m.exporting = false
		var cmd tea.Cmd
		if x.Err != nil {
			cmd = m.setAlert("PDF generation failed. Please try again.\n\nError: "+x.Err.Error(), true)
		} else {
			cmd = m.setAlert("Guide saved to "+x.Path, false)
		}
		return m, cmd

	case alertExpiredMsg:
		if x.Seq == m.alertSeq {
			m.alert = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(x)
		return m, cmd
	}

	return m, nil
}
