// Package input defines the per-tick input snapshot the simulation consumes.
package input

// Action is a logical game input.
type Action uint8

const (
	Left Action = iota
	Right
	Up
	Down
	Jump
	Pause

	ActionCount
)

var actionNames = [ActionCount]string{"left", "right", "up", "down", "jump", "pause"}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Snapshot is the input for one logic tick. Down holds the actions held
// this tick; Pressed holds the actions pressed since the previous tick.
type Snapshot struct {
	Down    uint8
	Pressed uint8
}

// IsDown reports whether an action is held.
func (s Snapshot) IsDown(a Action) bool {
	return s.Down&(1<<a) != 0
}

// IsPressed reports whether an action was pressed since the last tick.
func (s Snapshot) IsPressed(a Action) bool {
	return s.Pressed&(1<<a) != 0
}

// With returns a copy with the action held and pressed.
func (s Snapshot) With(actions ...Action) Snapshot {
	for _, a := range actions {
		s.Down |= 1 << a
		s.Pressed |= 1 << a
	}
	return s
}

// Holding returns a copy with the actions held but not freshly pressed.
func (s Snapshot) Holding(actions ...Action) Snapshot {
	for _, a := range actions {
		s.Down |= 1 << a
	}
	return s
}

// Latch collects input across render frames. Presses are kept until the
// next logic tick drains them, so a press that starts and ends between two
// ticks is not lost.
type Latch struct {
	down    uint8
	pressed uint8
}

// Set records the held state of an action for the current frame.
func (l *Latch) Set(a Action, down bool) {
	if down {
		l.down |= 1 << a
	} else {
		l.down &^= 1 << a
	}
}

// Press latches an edge for a.
func (l *Latch) Press(a Action) {
	l.pressed |= 1 << a
}

// Drain returns the snapshot for one tick and clears the latched presses.
func (l *Latch) Drain() Snapshot {
	s := Snapshot{Down: l.down, Pressed: l.pressed}
	l.pressed = 0
	return s
}
