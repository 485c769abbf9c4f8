package game

import (
	"testing"
	"time"

	"github.com/automoto/notmarioland/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name   string
		frames []time.Duration
		want   int
	}{
		{"short frame", []time.Duration{10 * time.Millisecond}, 0},
		{"accumulates", []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, 1},
		{"one second", []time.Duration{200 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond}, 60},
		{"stall is capped", []time.Duration{5 * time.Second}, 15},
		{"negative ignored", []time.Duration{-time.Second}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(60, 250*time.Millisecond)
			got := 0
			for _, f := range tt.frames {
				got += c.Advance(f)
			}
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, c.Alpha(), 0.0)
			assert.Less(t, c.Alpha(), 1.0)
		})
	}
}

func TestGameLoopRunsUntilInputEnds(t *testing.T) {
	s := newSession(t)
	inputs := []input.Snapshot{{}, {}, {}}
	source := func() (input.Snapshot, bool) {
		if len(inputs) == 0 {
			return input.Snapshot{}, false
		}
		in := inputs[0]
		inputs = inputs[1:]
		return in, true
	}

	loop := NewGameLoop(s, 1000, source)
	require.NoError(t, loop.Run())
	assert.Equal(t, 3, s.State.Timer)
}

func TestGameLoopStopTwice(t *testing.T) {
	s := newSession(t)
	source := func() (input.Snapshot, bool) { return input.Snapshot{}, true }

	loop := NewGameLoop(s, 1000, source)
	assert.NotPanics(t, func() {
		loop.Stop()
		loop.Stop()
	})
	require.NoError(t, loop.Run())
}
