package game

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/notmarioland/input"
)

// Clock turns wall-clock frame times into whole logic ticks.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

// NewClock returns a clock ticking tickRate times per second. Frames
// longer than maxFrame are cut to maxFrame so a stall does not trigger a
// burst of catch-up ticks.
func NewClock(tickRate int, maxFrame time.Duration) *Clock {
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxFrame: maxFrame,
	}
}

// Advance adds a frame's duration and returns how many ticks are due.
func (c *Clock) Advance(frame time.Duration) int {
	if frame > c.maxFrame {
		frame = c.maxFrame
	}
	if frame < 0 {
		frame = 0
	}
	c.acc += frame
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	return n
}

// Alpha is the fraction of a tick left in the accumulator.
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// InputSource yields the input for the next tick. ok is false when the
// source is exhausted.
type InputSource func() (in input.Snapshot, ok bool)

// GameLoop drives a session in real time without a window.
type GameLoop struct {
	session  *Session
	tickRate int
	source   InputSource
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(session *Session, tickRate int, source InputSource) *GameLoop {
	return &GameLoop{
		session:  session,
		tickRate: tickRate,
		source:   source,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the input source runs dry, the run is won or Stop is
// called.
func (g *GameLoop) Run() error {
	g.running = true
	defer func() { g.running = false }()
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			done, err := g.tick()
			if err != nil || done {
				return err
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() (bool, error) {
	in, ok := g.source()
	if !ok {
		return true, nil
	}
	if err := g.session.Tick(in); err != nil {
		log.Printf("Tick error: %v", err)
		return true, err
	}
	return g.session.Mode() == Won, nil
}
