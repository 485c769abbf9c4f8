package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind names the screen effect being played.
type TransitionKind uint8

const (
	NoTransition TransitionKind = iota
	DeathTransition
	DoorTransition
	SecretDoorTransition
	OpenTransition
	WinTransition
)

func (k TransitionKind) String() string {
	switch k {
	case DeathTransition:
		return "death"
	case DoorTransition:
		return "door"
	case SecretDoorTransition:
		return "secret-door"
	case OpenTransition:
		return "open"
	case WinTransition:
		return "win"
	}
	return "none"
}

// Transition tracks the progress of a screen effect from 0 to 1, one logic
// tick at a time.
type Transition struct {
	Kind     TransitionKind
	Progress float32

	tween *gween.Tween
	done  bool
}

func newTransition(kind TransitionKind, ticks int) Transition {
	if ticks < 1 {
		ticks = 1
	}
	return Transition{
		Kind:  kind,
		tween: gween.New(0, 1, float32(ticks), ease.InOutQuad),
	}
}

// step advances the effect one tick. A finished opening clears itself;
// other effects hold at full progress until replaced.
func (t *Transition) step() {
	if t.tween == nil {
		return
	}
	if t.done {
		if t.Kind == OpenTransition {
			*t = Transition{}
		}
		return
	}
	t.Progress, t.done = t.tween.Update(1)
}

// Active reports whether an effect is playing.
func (t Transition) Active() bool {
	return t.Kind != NoTransition
}
