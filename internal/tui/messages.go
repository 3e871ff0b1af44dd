package tui

import "time"

// Message types for Bubble Tea update loop.

// frameMsg advances the track, the element animations and the backdrop.
type frameMsg struct{ At time.Time }

// countdownTickMsg fires every second for one timer activation.
type countdownTickMsg struct{ Gen uint64 }

// exportDoneMsg reports the end of a guide export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// alertExpiredMsg clears the alert with the given sequence number.
type alertExpiredMsg struct{ Seq int }
