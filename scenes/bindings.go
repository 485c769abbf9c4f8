package scenes

import (
	"github.com/automoto/notmarioland/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the set of keys and buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and buttons.
type Bindings struct {
	Actions [input.ActionCount]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// DefaultBindings returns the keyboard and gamepad layout.
func DefaultBindings() Bindings {
	var b Bindings
	b.AnalogDeadzone = 0.25
	b.Actions[input.Left] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	}
	b.Actions[input.Right] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	}
	b.Actions[input.Up] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	}
	b.Actions[input.Down] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	}
	b.Actions[input.Jump] = Binding{
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	}
	b.Actions[input.Pause] = Binding{
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	}
	return b
}

// Poller reads the keyboard and gamepads once per frame into a latch.
type Poller struct {
	Bindings Bindings

	gamepadIDs []ebiten.GamepadID
	previous   [input.ActionCount]bool
}

func NewPoller(b Bindings) *Poller {
	return &Poller{Bindings: b}
}

// Poll records this frame's held actions in l and latches the ones that
// went down since the previous frame.
func (p *Poller) Poll(l *input.Latch) {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	var current [input.ActionCount]bool
	for a, binding := range p.Bindings.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[a] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[a] = true
				}
			}
		}
	}

	left, right, up, down := p.analogStick()
	current[input.Left] = current[input.Left] || left
	current[input.Right] = current[input.Right] || right
	current[input.Up] = current[input.Up] || up
	current[input.Down] = current[input.Down] || down

	for a, held := range current {
		action := input.Action(a)
		l.Set(action, held)
		if held && !p.previous[a] {
			l.Press(action)
		}
	}
	p.previous = current
}

// analogStick reads the left stick of every gamepad against the deadzone.
func (p *Poller) analogStick() (left, right, up, down bool) {
	deadzone := p.Bindings.AnalogDeadzone
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}
