package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/deck/internal/backdrop"
	"github.com/ensigniasec/deck/internal/config"
	"github.com/ensigniasec/deck/internal/countdown"
	"github.com/ensigniasec/deck/internal/export"
	"github.com/ensigniasec/deck/internal/input"
	"github.com/ensigniasec/deck/internal/location"
	"github.com/ensigniasec/deck/internal/motion"
	"github.com/ensigniasec/deck/internal/nav"
	"github.com/ensigniasec/deck/internal/slides"
	"github.com/ensigniasec/deck/internal/surface"
	"github.com/ensigniasec/deck/internal/theme"
)

// overlay is the modal layer drawn over the slides, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayPicker
	overlayAddress
)

// Options configures a presentation Model.
type Options struct {
	Registry *slides.Registry
	Config   *config.Config
	// Fragment is the deep link to start on, e.g. "#slide-3". Invalid or
	// out-of-range values start on the first slide.
	Fragment string
	// Store persists the theme preference. Nil keeps it in memory.
	Store theme.Store
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
	// Export writes the guide to a path; defaults to export.WriteFile.
	Export func(path string) error
}

// sidebar is the surface sink behind the dots, counter and progress bar.
type sidebar struct{ snap surface.Snapshot }

func (s *sidebar) Apply(snap surface.Snapshot) { s.snap = snap }

// screen records full-screen toggles requested by the keyboard adapter.
type screen struct {
	alt     bool
	pending bool
}

func (s *screen) toggle() { s.pending = true }

// take returns the command for a pending toggle, if any.
func (s *screen) take() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	s.alt = !s.alt
	if s.alt {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// Model is the root Bubble Tea model.
type Model struct {
	reg       *slides.Registry
	nav       *nav.Controller
	track     *motion.Track
	stage     *motion.Stage
	surface   *surface.Broadcaster
	side      *sidebar
	loc       *location.Location
	timerHook *countdown.Hook
	keyboard  *input.Keyboard
	wheel     *input.Wheel
	swipe     *input.Swipe
	hash      *input.HashChange
	pref      *theme.Preference
	field     *backdrop.Field
	renderer  *slideRenderer
	screen    *screen

	now           func() time.Time
	frameInterval time.Duration
	cellWidth     float64
	exportPath    string
	exportFn      func(string) error

	width    int
	height   int
	ticking  bool
	quitting bool

	helpVisible bool
	exporting   bool
	alert       string
	alertIsErr  bool
	alertSeq    int

	overlay  overlay
	picker   list.Model
	address  textinput.Model
	spinner  spinner.Model
	progress progress.Model
	help     help.Model

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel wires the presentation and navigates instantly to the deep-linked
// slide.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reg := opts.Registry
	if reg == nil {
		reg = slides.NewRegistry(slides.Default())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	exportFn := opts.Export
	if exportFn == nil {
		exportFn = export.WriteFile
	}
	frameRate := cfg.FrameRate
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}

	field := backdrop.New(now(), cfg.Backdrop.Enabled, frameRate)
	renderer := newSlideRenderer(theme.Dark)
	pref := theme.Load(opts.Store, field, renderer)
	// Load never recolors; apply the stored theme once here.
	field.SetTheme(pref.Current())
	renderer.SetTheme(pref.Current())

	side := &sidebar{}
	loc := location.New(opts.Fragment)
	bus := surface.NewBroadcaster(reg.Count(), surface.LocationSink(loc), side)

	track := motion.NewTrack(now)
	stage := motion.NewStage(reg, now, cfg.Transition.Exit)
	timer := countdown.New(cfg.Timer.Duration, now)
	timerHook := countdown.NewHook(reg, timer)

	ctrl := nav.New(reg.Count(), track, stage, bus,
		nav.WithDuration(cfg.Transition.Duration),
		nav.WithHook(timerHook),
	)

	scr := &screen{alt: true}
	keys := newKeyMap()

	delegate := slideDelegate{current: ctrl.Current}
	lst := list.New(slideItems(reg), delegate, 0, 0)
	lst.Title = "Slides"
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "#slide-1"
	ti.CharLimit = 16

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		reg:           reg,
		nav:           ctrl,
		track:         track,
		stage:         stage,
		surface:       bus,
		side:          side,
		loc:           loc,
		timerHook:     timerHook,
		keyboard:      input.NewKeyboard(ctrl, keys.Nav, scr.toggle),
		wheel:         input.NewWheel(ctrl, cfg.Wheel.Cooldown, now),
		swipe:         input.NewSwipe(ctrl, float64(cfg.Swipe.ThresholdPx)),
		hash:          input.NewHashChange(ctrl),
		pref:          pref,
		field:         field,
		renderer:      renderer,
		screen:        scr,
		now:           now,
		frameInterval: time.Second / time.Duration(frameRate),
		cellWidth:     float64(max(cfg.Swipe.CellWidthPx, 1)),
		exportPath:    cfg.Export.Path,
		exportFn:      exportFn,
		picker:        lst,
		address:       ti,
		spinner:       sp,
		progress:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:          help.New(),
		keys:          keys,
		ticking:       true, // Init schedules the first frame.
	}

	ctrl.RequestGoTo(location.InitialIndex(opts.Fragment, reg.Count()), true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickFrame()}
	if gen, ok := m.timerHook.TakeStarted(); ok {
		cmds = append(cmds, tickCountdown(gen))
	}
	return tea.Batch(cmds...)
}

// tickFrame schedules the next animation frame.
func (m Model) tickFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{At: t}
	})
}

// tickCountdown schedules the next countdown tick for one activation.
func tickCountdown(gen uint64) tea.Cmd {
	return tea.Tick(countdownTickInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{Gen: gen}
	})
}

// Current returns the current slide index.
func (m Model) Current() int { return m.nav.Current() }

// Fragment returns the current address fragment.
func (m Model) Fragment() string { return m.loc.Fragment() }
