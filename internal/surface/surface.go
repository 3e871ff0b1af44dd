// Package surface keeps the UI surfaces that depend on the current slide in
// step with it: the address fragment, the numeric counter, the progress fill
// and the dot list.
package surface

import "github.com/ensigniasec/deck/internal/location"

// Dot is the derived state of one entry in the dot list.
type Dot struct {
	Index  int
	Active bool
}

// Snapshot is everything a surface needs to render a given slide index.
type Snapshot struct {
	Index    int
	Total    int
	Fragment string
	Counter  int
	Progress float64
	Dots     []Dot
}

// Compute derives a full Snapshot for index. Dots are rebuilt from scratch.
func Compute(index, total int) Snapshot {
	dots := make([]Dot, total)
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == index}
	}
	return Snapshot{
		Index:    index,
		Total:    total,
		Fragment: location.Format(index),
		Counter:  index + 1,
		Progress: Progress(index, total),
		Dots:     dots,
	}
}

// Progress returns index/(total-1), or 0 for single-slide decks.
func Progress(index, total int) float64 {
	if total <= 1 {
		return 0
	}
	return float64(index) / float64(total-1)
}

// Sink receives every snapshot.
type Sink interface {
	Apply(s Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(s Snapshot)

// Apply implements Sink.
func (f SinkFunc) Apply(s Snapshot) { f(s) }

// Replacer is the history-replacing write of an address.
type Replacer interface {
	Replace(fragment string)
}

// LocationSink writes the snapshot's fragment without adding history.
func LocationSink(r Replacer) Sink {
	return SinkFunc(func(s Snapshot) { r.Replace(s.Fragment) })
}

// Broadcaster fans a freshly computed snapshot out to its sinks.
type Broadcaster struct {
	total int
	sinks []Sink
	last  Snapshot
}

// NewBroadcaster returns a Broadcaster for a deck of total slides.
func NewBroadcaster(total int, sinks ...Sink) *Broadcaster {
	return &Broadcaster{total: total, sinks: sinks, last: Compute(0, total)}
}

// Add registers another sink.
func (b *Broadcaster) Add(s Sink) { b.sinks = append(b.sinks, s) }

// SyncTo updates every sink for index before returning.
func (b *Broadcaster) SyncTo(index int) {
	snap := Compute(index, b.total)
	b.last = snap
	for _, s := range b.sinks {
		s.Apply(snap)
	}
}

// Last returns the most recent snapshot.
func (b *Broadcaster) Last() Snapshot { return b.last }
