// Package game runs a levelset: it owns the run state and the live level
// and moves between playing, dying, door and win states.
package game

import (
	"errors"
	"log"

	"github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/level"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/tiles"
)

// Mode is the session's top-level state.
type Mode uint8

const (
	Playing Mode = iota
	Dying
	Entering
	Won
	Paused
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "playing"
	case Dying:
		return "dying"
	case Entering:
		return "entering"
	case Won:
		return "won"
	case Paused:
		return "paused"
	}
	return "unknown"
}

var ErrNoLevels = errors.New("levelset has no levels")

// Session is a single run through a levelset.
type Session struct {
	Levels *leveldata.Levelset
	State  *state.GlobalState
	Level  *level.Level

	mode       Mode
	resume     Mode
	countdown  int
	doorTarget int
	transition Transition
	neighbours []Neighbour
}

// NewSession starts a run on the first level of ls.
func NewSession(ls *leveldata.Levelset) (*Session, error) {
	if len(ls.Levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Session{
		Levels: ls,
		State:  state.New(),
	}
	s.enter(0)
	s.transition = newTransition(OpenTransition, config.Transition.OpenTicks)
	return s, nil
}

// Mode returns the current state.
func (s *Session) Mode() Mode { return s.mode }

// Transition returns the screen effect in progress.
func (s *Session) Transition() Transition { return s.transition }

// Tick advances the session by one logic tick. Errors are level graph
// problems found while crossing a screen edge; the session stays on the
// current level when one is returned. Unpaired doors are not errors.
func (s *Session) Tick(in input.Snapshot) error {
	if in.IsPressed(input.Pause) {
		s.TogglePause()
	}
	if s.mode == Paused {
		return nil
	}
	s.transition.step()

	switch s.mode {
	case Won:
		return nil
	case Dying, Entering:
		s.countdown--
		if s.countdown > 0 {
			return nil
		}
		if s.mode == Dying {
			s.enter(s.Level.Index)
		} else {
			s.enterDoor()
		}
		s.mode = Playing
		s.transition = newTransition(OpenTransition, config.Transition.OpenTicks)
		return nil
	}
	return s.play(in)
}

func (s *Session) play(in input.Snapshot) error {
	gs := s.State
	gs.Timer++
	if gs.Timer%max(gs.Modifiers.TimeScale, 1) != 0 {
		return nil
	}

	l := s.Level
	l.Update(in, gs)
	l.CollectKeys(gs)
	l.CollectDoors(gs)

	body := l.PlayerBody()
	cx, cy := body.Box().Center()
	switch {
	case cx < 0 && body.SpeedX < 0:
		return s.crossEdge(gamemath.Left)
	case cx > l.PixelWidth() && body.SpeedX > 0:
		return s.crossEdge(gamemath.Right)
	case cy < 0 && body.SpeedY < 0:
		return s.crossEdge(gamemath.Up)
	case cy > l.PixelHeight() && body.SpeedY > 0:
		return s.crossEdge(gamemath.Down)
	}

	if in.IsPressed(input.Up) && l.PlayerState().Grounded {
		if door, ok := l.DoorUnderPlayer(); ok {
			return s.startDoor(door)
		}
	}

	switch {
	case l.PlayerDies():
		s.die()
	case l.ReachedGoal():
		s.win()
	}
	return nil
}

// crossEdge moves the player through side d into the neighbouring level,
// keeping its velocity and slide state. Sides without an exit hold the
// player at the edge, except the bottom which kills.
func (s *Session) crossEdge(d gamemath.Direction) error {
	l := s.Level
	body := l.PlayerBody()
	if _, ok := l.Raw.Exit(d); !ok {
		switch d {
		case gamemath.Left:
			l.PlacePlayer(-body.W/2, body.Y)
		case gamemath.Right:
			l.PlacePlayer(l.PixelWidth()-body.W/2, body.Y)
		case gamemath.Down:
			s.die()
		}
		return nil
	}

	link, err := s.Levels.Link(l.Index, d)
	if err != nil {
		return err
	}

	carried := *body
	movement := *l.PlayerState()
	s.enter(link.Index)

	next := s.Level.PlayerBody()
	next.SpeedX, next.SpeedY = carried.SpeedX, carried.SpeedY
	player := s.Level.PlayerState()
	player.FreezeTimer = movement.FreezeTimer
	player.WallSliding = movement.WallSliding
	s.Level.PlacePlayer(carried.X-link.X, carried.Y-link.Y)
	return nil
}

func (s *Session) startDoor(door tiles.Tile) error {
	if s.Levels.Level(door.Door) == nil {
		log.Printf("Door in level %d leads to missing level %d", s.Level.Index, door.Door)
		return nil
	}
	kind := DoorTransition
	if door.Kind == tiles.SecretDoor {
		kind = SecretDoorTransition
	}
	s.mode = Entering
	s.doorTarget = door.Door
	s.countdown = config.Transition.DoorTicks
	s.transition = newTransition(kind, config.Transition.DoorTicks)
	return nil
}

// enterDoor builds the door's target level and places the player on the
// door leading back. Without one the player stays at the level's spawn.
func (s *Session) enterDoor() {
	from := s.Level.Index
	s.enter(s.doorTarget)
	col, row, ok := s.Level.FindDoor(from)
	if !ok {
		log.Printf("Level %d has no door back to level %d", s.doorTarget, from)
		return
	}
	s.Level.PlacePlayer(col*gamemath.TileSize, row*gamemath.TileSize)
}

func (s *Session) die() {
	s.State.Deaths++
	s.mode = Dying
	s.countdown = config.Transition.DeathTicks
	s.transition = newTransition(DeathTransition, config.Transition.DeathTicks)
}

func (s *Session) win() {
	s.mode = Won
	s.transition = newTransition(WinTransition, config.Transition.WinTicks)
	log.Printf("Levelset %q won in %d ticks with %d deaths", s.Levels.Name, s.State.Timer, s.State.Deaths)
}

// enter rebuilds level index from its raw data and the run's overrides.
func (s *Session) enter(index int) {
	raw := s.Levels.Level(index)
	s.Level = level.New(raw, index, s.State)
	s.State.EnterScreen(raw.Modifiers)
	s.neighbours = s.buildNeighbours()
	if config.Debug.LogLoads {
		log.Printf("Entered level %d %q", index, raw.Name)
	}
}

// TogglePause pauses or resumes the session. A won session stays won.
func (s *Session) TogglePause() {
	switch s.mode {
	case Won:
	case Paused:
		s.mode = s.resume
	default:
		s.resume = s.mode
		s.mode = Paused
	}
}

// ResetRun discards all progress and restarts on the first level.
func (s *Session) ResetRun() {
	s.State.Reset()
	s.mode = Playing
	s.countdown = 0
	s.enter(0)
	s.transition = newTransition(OpenTransition, config.Transition.OpenTicks)
}

// Reload swaps in a freshly loaded levelset and rebuilds the current level
// from it, keeping the run state. The current index is clamped to the new
// set.
func (s *Session) Reload(ls *leveldata.Levelset) error {
	if len(ls.Levels) == 0 {
		return ErrNoLevels
	}
	index := min(s.Level.Index, len(ls.Levels)-1)
	body := *s.Level.PlayerBody()
	s.Levels = ls
	s.enter(index)
	s.Level.PlacePlayer(body.X, body.Y)
	return nil
}
