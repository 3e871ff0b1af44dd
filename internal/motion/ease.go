// Package motion holds the time-driven parts of a transition: the track
// movement between slides and the per-element enter and exit phases.
//
// Nothing here owns a goroutine or a timer. Callers sample the animations
// with the current time on every frame.
package motion

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// ExpoOut starts fast and settles slowly.
func ExpoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Power2In starts slowly and accelerates.
func Power2In(t float64) float64 { return t * t }

// Tween interpolates a single value over time.
type Tween struct {
	From, To float64
	Start    time.Time
	Delay    time.Duration
	Duration time.Duration
	Ease     Easing
}

// Progress returns eased progress in [0,1] at now.
func (tw Tween) Progress(now time.Time) float64 {
	elapsed := now.Sub(tw.Start) - tw.Delay
	if elapsed < 0 {
		return 0
	}
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return 1
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return ease(float64(elapsed) / float64(tw.Duration))
}

// At returns the interpolated value at now.
func (tw Tween) At(now time.Time) float64 {
	return lerp(tw.From, tw.To, tw.Progress(now))
}

// Done reports whether the tween has reached its end value.
func (tw Tween) Done(now time.Time) bool {
	return now.Sub(tw.Start) >= tw.Delay+tw.Duration
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
