// Package replay records the per-tick input of a run and plays it back.
// The simulation is deterministic, so the inputs alone reproduce a run.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/notmarioland/game"
	"github.com/automoto/notmarioland/input"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is bumped whenever the simulation changes in a way that breaks
// old recordings.
const Version = 1

var ErrVersion = errors.New("replay version mismatch")

// Recording is a run's input log.
type Recording struct {
	Version  int              `msgpack:"version"`
	Levelset string           `msgpack:"levelset"`
	Inputs   []input.Snapshot `msgpack:"inputs"`
}

// Recorder appends one snapshot per logic tick.
type Recorder struct {
	rec Recording
}

func NewRecorder(levelset string) *Recorder {
	return &Recorder{rec: Recording{Version: Version, Levelset: levelset}}
}

func (r *Recorder) Record(in input.Snapshot) {
	r.rec.Inputs = append(r.rec.Inputs, in)
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int { return len(r.rec.Inputs) }

// Recording returns the log so far.
func (r *Recorder) Recording() *Recording { return &r.rec }

// Encode writes a recording as msgpack.
func Encode(w io.Writer, rec *Recording) error {
	return msgpack.NewEncoder(w).Encode(rec)
}

// Decode reads a recording written by Encode.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrVersion, rec.Version, Version)
	}
	return &rec, nil
}

// Save writes a recording to path.
func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Source returns an input source that yields the recording once.
func (rec *Recording) Source() game.InputSource {
	i := 0
	return func() (input.Snapshot, bool) {
		if i >= len(rec.Inputs) {
			return input.Snapshot{}, false
		}
		in := rec.Inputs[i]
		i++
		return in, true
	}
}

// Play feeds every recorded tick to s as fast as possible. It stops at the
// first tick error.
func (rec *Recording) Play(s *game.Session) error {
	for i, in := range rec.Inputs {
		if err := s.Tick(in); err != nil {
			return fmt.Errorf("replay tick %d: %w", i, err)
		}
	}
	return nil
}
