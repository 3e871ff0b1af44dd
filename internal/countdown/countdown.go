// Package countdown implements the timer widget shown on the slide that
// carries the countdown behavior.
package countdown

import "time"

// DefaultDuration is the starting value of every activation.
const DefaultDuration = 20 * time.Minute

// Digits is the rendered form of the remaining time: tens and units of
// minutes, then tens and units of seconds.
type Digits [4]int

// Split decomposes seconds into display digits. Minutes above 99 keep only
// their last two digits.
func Split(seconds int) Digits {
	if seconds < 0 {
		seconds = 0
	}
	m, s := (seconds/60)%100, seconds%60
	return Digits{m / 10, m % 10, s / 10, s % 10}
}

// String renders the digits as MM:SS.
func (d Digits) String() string {
	b := []byte{'0' + byte(d[0]), '0' + byte(d[1]), ':', '0' + byte(d[2]), '0' + byte(d[3])}
	return string(b)
}

// Changed marks which digits differ from the previous render.
type Changed [4]bool

// Any reports whether at least one digit changed.
func (c Changed) Any() bool { return c[0] || c[1] || c[2] || c[3] }

// Timer counts down from a fixed duration. Remaining time is derived from
// the activation timestamp on every tick, so late ticks do not accumulate
// drift. Each activation gets a new generation; ticks carrying an older one
// are ignored.
type Timer struct {
	start time.Duration
	now   func() time.Time

	running   bool
	startedAt time.Time
	remaining int
	digits    Digits
	changed   Changed
	gen       uint64
}

// New returns a stopped Timer.
func New(start time.Duration, now func() time.Time) *Timer {
	if start <= 0 {
		start = DefaultDuration
	}
	if now == nil {
		now = time.Now
	}
	secs := int(start / time.Second)
	return &Timer{start: start, now: now, remaining: secs, digits: Split(secs)}
}

// Activate resets to the full duration and starts counting. It returns the
// new generation, or false if the timer was already running.
func (t *Timer) Activate() (uint64, bool) {
	if t.running {
		return t.gen, false
	}
	t.gen++
	t.running = true
	t.startedAt = t.now()
	t.render(int(t.start / time.Second))
	return t.gen, true
}

// Deactivate stops the timer and discards its progress.
func (t *Timer) Deactivate() bool {
	if !t.running {
		return false
	}
	t.running = false
	t.gen++
	return true
}

// Tick advances the timer for generation gen. It reports which digits
// changed and whether the tick was applied.
func (t *Timer) Tick(gen uint64) (Changed, bool) {
	if !t.running || gen != t.gen {
		return Changed{}, false
	}
	elapsed := int(t.now().Sub(t.startedAt) / time.Second)
	rem := int(t.start/time.Second) - elapsed
	if rem <= 0 {
		rem = 0
		t.running = false
	}
	t.render(rem)
	return t.changed, true
}

func (t *Timer) render(seconds int) {
	t.remaining = seconds
	next := Split(seconds)
	for i := range next {
		t.changed[i] = next[i] != t.digits[i]
	}
	t.digits = next
}

// Remaining returns the remaining seconds.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// Digits returns the current display digits.
func (t *Timer) Digits() Digits { return t.digits }

// LastChanged returns the digits that changed on the last render.
func (t *Timer) LastChanged() Changed { return t.changed }

// Generation identifies the current activation.
func (t *Timer) Generation() uint64 { return t.gen }
