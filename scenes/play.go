// Package scenes hosts a session in an ebitengine window: it polls input,
// paces logic ticks against wall-clock time and draws frames.
package scenes

import (
	"errors"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/game"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/replay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit ends the game loop cleanly.
var ErrQuit = errors.New("quit")

// Reloader loads a fresh copy of the levelset after a file change.
type Reloader func() (*leveldata.Levelset, error)

// PlayScene runs a session in real time.
type PlayScene struct {
	session  *game.Session
	clock    *game.Clock
	latch    input.Latch
	poller   *Poller
	recorder *replay.Recorder
	playback game.InputSource
	watcher  *leveldata.Watcher
	reload   Reloader

	last time.Time
	once sync.Once
}

// PlayOptions configures a PlayScene. Recorder, Playback and Watcher are
// optional.
type PlayOptions struct {
	Recorder *replay.Recorder
	Playback game.InputSource
	Watcher  *leveldata.Watcher
	Reload   Reloader
}

func NewPlayScene(s *game.Session, opts PlayOptions) *PlayScene {
	return &PlayScene{
		session:  s,
		clock:    game.NewClock(cfg.Screen.TickRate, cfg.Screen.MaxFrameTime),
		poller:   NewPoller(DefaultBindings()),
		recorder: opts.Recorder,
		playback: opts.Playback,
		watcher:  opts.Watcher,
		reload:   opts.Reload,
	}
}

func (ps *PlayScene) Update() error {
	ps.once.Do(func() { ps.last = time.Now() })

	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		return ErrQuit
	}
	// Resets are not part of the input log, so they would break a replay.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && ps.recorder == nil && ps.playback == nil {
		ps.session.ResetRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
	ps.pollReload()

	ps.poller.Poll(&ps.latch)

	now := time.Now()
	ticks := ps.clock.Advance(now.Sub(ps.last))
	ps.last = now

	for range ticks {
		in := ps.latch.Drain()
		if ps.playback != nil {
			var ok bool
			if in, ok = ps.playback(); !ok {
				return ErrQuit
			}
		}
		if ps.recorder != nil {
			ps.recorder.Record(in)
		}
		if err := ps.session.Tick(in); err != nil {
			log.Printf("Level graph error: %v", err)
		}
	}
	return nil
}

// pollReload applies pending level file changes without blocking.
func (ps *PlayScene) pollReload() {
	if ps.watcher == nil || ps.reload == nil {
		return
	}
	changed := false
	for {
		select {
		case path, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return
			}
			log.Printf("Level file changed: %s", path)
			changed = true
			continue
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return
			}
			log.Printf("Watcher error: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}

	ls, err := ps.reload()
	if err != nil {
		log.Printf("Reload failed: %v", err)
		return
	}
	if err := ls.Validate(); err != nil {
		log.Printf("Reloaded levelset has graph errors: %v", err)
	}
	if err := ps.session.Reload(ls); err != nil {
		log.Printf("Reload failed: %v", err)
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	DrawFrame(screen, ps.session.Frame(), cfg.Debug.ShowBoxes)
}
