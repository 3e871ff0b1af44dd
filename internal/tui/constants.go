package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	defaultFrameRate      = 30
	countdownTickInterval = time.Second

	// sidebarWidth is the fixed column holding dots, counter and progress.
	sidebarWidth = 30
	// footerLines is the status/help line under the slides.
	footerLines = 1
	// paneMinWidth keeps slides readable on narrow terminals.
	paneMinWidth  = 20
	paneMinHeight = 5
	paneHPadding  = 4
	paneVPadding  = 1

	// pxPerLine and pxPerCol scale element offsets to terminal cells.
	pxPerLine = 20.0
	pxPerCol  = 10.0

	// opacity below which an element is not drawn, and below which it is faint.
	hiddenOpacity = 0.15
	faintOpacity  = 0.65

	// alertTTL is how long an alert stays on screen.
	alertTTL = 6 * time.Second
)

const (
	dotActive   = "●"
	dotInactive = "○"
)

// sidebarDotsTop is the sidebar row of the first dot, below the deck title,
// the author and a blank line.
const sidebarDotsTop = 3
