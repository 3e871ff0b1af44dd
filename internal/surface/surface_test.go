package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/deck/internal/location"
)

func activeDots(s Snapshot) []int {
	var out []int
	for _, d := range s.Dots {
		if d.Active {
			out = append(out, d.Index)
		}
	}
	return out
}

func TestCompute(t *testing.T) {
	t.Parallel()

	s := Compute(3, 6)
	assert.Equal(t, "slide-4", s.Fragment)
	assert.Equal(t, 4, s.Counter)
	assert.InDelta(t, 0.6, s.Progress, 1e-9)
	require.Len(t, s.Dots, 6)
	assert.Equal(t, []int{3}, activeDots(s))
}

func TestProgress_Bounds(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Progress(0, 6))
	assert.Equal(t, 1.0, Progress(5, 6))
	assert.Zero(t, Progress(0, 1))
	assert.Zero(t, Progress(3, 1))
}

func TestBroadcaster_SyncToUpdatesEverySink(t *testing.T) {
	t.Parallel()

	loc := location.New("")
	var got []Snapshot
	b := NewBroadcaster(5, LocationSink(loc), SinkFunc(func(s Snapshot) { got = append(got, s) }))

	b.SyncTo(2)
	b.SyncTo(4)

	assert.Equal(t, "#slide-5", loc.Fragment())
	assert.Equal(t, 1, loc.Len())
	require.Len(t, got, 2)
	assert.Equal(t, []int{2}, activeDots(got[0]))
	assert.Equal(t, []int{4}, activeDots(got[1]))
	assert.Equal(t, got[1], b.Last())
}
