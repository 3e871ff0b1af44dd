package location

// Location is the current address together with its navigable history.
// Replace rewrites the current entry in place; Push, Back and Forward move
// through history and report the new fragment so callers can treat it as an
// external change.
type Location struct {
	entries []string
	pos     int
}

// New returns a Location whose single history entry is fragment.
func New(fragment string) *Location {
	return &Location{entries: []string{normalize(fragment)}}
}

// Fragment returns the current fragment including the leading '#', or "" if
// none is set.
func (l *Location) Fragment() string {
	return l.entries[l.pos]
}

// Replace overwrites the current history entry. It does not create a new
// entry and does not count as a change.
func (l *Location) Replace(fragment string) {
	l.entries[l.pos] = normalize(fragment)
}

// Push records a new history entry after the current one, discarding any
// forward entries. It returns the fragment and whether it differs from the
// previous address.
func (l *Location) Push(fragment string) (string, bool) {
	f := normalize(fragment)
	prev := l.entries[l.pos]
	l.entries = append(l.entries[:l.pos+1], f)
	l.pos++
	return f, f != prev
}

// Back steps one entry back in history.
func (l *Location) Back() (string, bool) {
	if l.pos == 0 {
		return l.entries[l.pos], false
	}
	l.pos--
	return l.entries[l.pos], true
}

// Forward steps one entry forward in history.
func (l *Location) Forward() (string, bool) {
	if l.pos >= len(l.entries)-1 {
		return l.entries[l.pos], false
	}
	l.pos++
	return l.entries[l.pos], true
}

// Len returns the number of history entries.
func (l *Location) Len() int { return len(l.entries) }

func normalize(fragment string) string {
	if fragment == "" || fragment[0] == '#' {
		return fragment
	}
	return "#" + fragment
}
