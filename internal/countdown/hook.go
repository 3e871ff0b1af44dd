package countdown

// Registry reports which slides carry the countdown behavior.
type Registry interface {
	HasAuxiliaryBehavior(index int) bool
}

// Hook starts the Timer when a countdown slide becomes current and stops it
// when that slide is left.
type Hook struct {
	reg   Registry
	timer *Timer

	pending    uint64
	hasPending bool
}

// NewHook binds timer to the countdown slides of reg.
func NewHook(reg Registry, timer *Timer) *Hook {
	return &Hook{reg: reg, timer: timer}
}

// OnSlideActivation implements nav.Hook.
func (h *Hook) OnSlideActivation(index int, active bool) {
	if !h.reg.HasAuxiliaryBehavior(index) {
		return
	}
	switch {
	case active && !h.timer.Running():
		gen, _ := h.timer.Activate()
		h.pending, h.hasPending = gen, true
	case !active && h.timer.Running():
		h.timer.Deactivate()
		h.hasPending = false
	}
}

// TakeStarted returns the generation of an activation whose ticking has not
// been scheduled yet. It reports each activation once.
func (h *Hook) TakeStarted() (uint64, bool) {
	if !h.hasPending {
		return 0, false
	}
	h.hasPending = false
	return h.pending, true
}

// Timer returns the bound timer.
func (h *Hook) Timer() *Timer { return h.timer }
