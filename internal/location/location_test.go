package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "slide-1", Format(0))
	assert.Equal(t, "slide-6", Format(5))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "#slide-3", want: 2},
		{in: "slide-1", want: 0},
		{in: "#slide-6", want: 5},
		{in: "#slide-7", wantErr: ErrOutOfRange},
		{in: "#slide-0", wantErr: ErrOutOfRange},
		{in: "#slide-", wantErr: ErrMalformedFragment},
		{in: "#slide-+2", wantErr: ErrMalformedFragment},
		{in: "#page-2", wantErr: ErrMalformedFragment},
		{in: "", wantErr: ErrMalformedFragment},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in, 6)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialIndex_RoundTrip(t *testing.T) {
	t.Parallel()

	l := New("")
	l.Replace("#" + Format(2))
	assert.Equal(t, "#slide-3", l.Fragment())
	assert.Equal(t, 2, InitialIndex(l.Fragment(), 6))

	assert.Equal(t, 0, InitialIndex("#slide-7", 6))
	assert.Equal(t, 0, InitialIndex("#slide-0", 6))
	assert.Equal(t, 0, InitialIndex("garbage", 6))
	assert.Equal(t, 0, InitialIndex("", 6))
}

func TestSplitTarget(t *testing.T) {
	t.Parallel()

	p, f := SplitTarget("talks/vibe.deck.yaml#slide-4")
	assert.Equal(t, "talks/vibe.deck.yaml", p)
	assert.Equal(t, "#slide-4", f)

	p, f = SplitTarget("talks/vibe.deck.yaml")
	assert.Equal(t, "talks/vibe.deck.yaml", p)
	assert.Empty(t, f)
}

func TestLocation_ReplaceDoesNotGrowHistory(t *testing.T) {
	t.Parallel()

	l := New("#slide-1")
	for i := range 5 {
		l.Replace(Format(i))
	}
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "#slide-5", l.Fragment())

	_, moved := l.Back()
	assert.False(t, moved)
}

func TestLocation_PushBackForward(t *testing.T) {
	t.Parallel()

	l := New("#slide-1")
	f, changed := l.Push("slide-4")
	assert.Equal(t, "#slide-4", f)
	assert.True(t, changed)

	l.Replace("#slide-5")

	f, moved := l.Back()
	require.True(t, moved)
	assert.Equal(t, "#slide-1", f)

	f, moved = l.Forward()
	require.True(t, moved)
	assert.Equal(t, "#slide-5", f)

	_, moved = l.Forward()
	assert.False(t, moved)

	// Pushing from the middle of history drops the forward entries.
	l.Back()
	l.Push("#slide-2")
	assert.Equal(t, 2, l.Len())
	_, moved = l.Forward()
	assert.False(t, moved)
}

func TestLocation_PushSameFragment(t *testing.T) {
	t.Parallel()

	l := New("#slide-2")
	_, changed := l.Push("#slide-2")
	assert.False(t, changed)
}
