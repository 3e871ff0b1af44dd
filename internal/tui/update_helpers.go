package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/deck/internal/export"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	switch m.overlay {
	case overlayPicker:
		return m.handlePickerKey(msg)
	case overlayAddress:
		return m.handleAddressKey(msg)
	case overlayNone:
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		t := m.pref.Toggle()
		logrus.WithField("theme", t).Debug("theme toggled")
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.startExport()

	case key.Matches(msg, m.keys.Back):
		if frag, ok := m.loc.Back(); ok {
			m.hash.Handle(frag)
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if frag, ok := m.loc.Forward(); ok {
			m.hash.Handle(frag)
		}
		return m, nil

	case key.Matches(msg, m.keys.Address):
		m.overlay = overlayAddress
		m.address.SetValue("")
		cmd := m.address.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Picker):
		m.overlay = overlayPicker
		m.picker.ResetFilter()
		m.picker.Select(m.nav.Current())
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.alert = ""
		m.helpVisible = false
		m.help.ShowAll = false
		return m, nil
	}

	if m.keyboard.Handle(msg) {
		return m, m.screen.take()
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Picker), key.Matches(msg, m.keys.Quit):
			m.overlay = overlayNone
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			if it, ok := m.picker.SelectedItem().(slideItem); ok {
				m.nav.RequestGoTo(it.Index, false)
			}
			m.overlay = overlayNone
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleAddressKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeAddress()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.submitAddress(m.address.Value())
		m.closeAddress()
		return m, nil
	}
	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

func (m *Model) closeAddress() {
	m.overlay = overlayNone
	m.address.Blur()
	m.address.SetValue("")
}

// submitAddress behaves like typing a new fragment into an address bar: it
// adds a history entry and then follows it as an external change.
func (m *Model) submitAddress(value string) {
	if value == "" {
		return
	}
	frag, changed := m.loc.Push(value)
	if !changed {
		return
	}
	if !m.hash.Handle(frag) {
		logrus.WithField("fragment", frag).Debug("address not followed")
	}
}

// handleMouse feeds wheel, drag and pointer movement to the adapters.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.overlay != overlayNone {
		return
	}
	if m.wheel.HandleMouse(msg) {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if idx, ok := m.dotAt(msg.X, msg.Y); ok {
			m.nav.RequestGoTo(idx, false)
			return
		}
		m.swipe.Start(float64(msg.X) * m.cellWidth)
	case tea.MouseActionRelease:
		m.swipe.End(float64(msg.X) * m.cellWidth)
	case tea.MouseActionMotion:
		if m.width > 0 && m.height > 0 {
			nx := float64(msg.X)/float64(m.width)*2 - 1
			ny := float64(msg.Y)/float64(m.height)*2 - 1
			m.field.Point(nx, ny)
		}
	}
}

// dotAt maps a click in the sidebar to the slide whose dot is on that row.
func (m Model) dotAt(x, y int) (int, bool) {
	if x >= sidebarWidth {
		return 0, false
	}
	idx := y - sidebarDotsTop
	if idx < 0 || idx >= m.reg.Count() {
		return 0, false
	}
	return idx, true
}

// afterInput schedules follow-up work after a possible navigation: frames
// for the new movement, and ticks for a countdown that just started.
func (m *Model) afterInput() tea.Cmd {
	var cmds []tea.Cmd
	if !m.ticking && m.needsFrames() {
		m.ticking = true
		cmds = append(cmds, m.tickFrame())
	}
	if gen, ok := m.timerHook.TakeStarted(); ok {
		cmds = append(cmds, tickCountdown(gen))
	}
	return tea.Batch(cmds...)
}

func (m Model) needsFrames() bool {
	return m.track.Moving() || m.stage.Active(m.now()) || m.field.Enabled()
}

// startExport disables the export control and runs the export off the
// update loop.
func (m Model) startExport() (Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	return m, tea.Batch(m.spinner.Tick, exportCmd(m.exportFn, m.exportPath))
}

func exportCmd(fn func(string) error, path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			path = export.DefaultFileName
		}
		err := fn(path)
		if err != nil {
			logrus.WithError(err).Warn("guide export failed")
		}
		return exportDoneMsg{Path: path, Err: err}
	}
}

// setAlert shows text until it expires or is replaced.
func (m *Model) setAlert(text string, isErr bool) tea.Cmd {
	m.alertSeq++
	m.alert = text
	m.alertIsErr = isErr
	seq := m.alertSeq
	return tea.Tick(alertTTL, func(time.Time) tea.Msg { return alertExpiredMsg{Seq: seq} })
}

// layout sizes the sub-models to the window.
func (m *Model) layout() {
	w, h := m.paneSize()
	m.renderer.resize(w - 2*paneHPadding)
	m.picker.SetSize(w, h)
	m.progress.Width = sidebarWidth - 4
	m.help.Width = m.width
	m.address.Width = max(w-4, 8)
}
