package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/zyedidia/generic/mapset"
)

// Placement is a level positioned relative to another level's origin, in
// sub-pixel units.
type Placement struct {
	Index int
	X, Y  int
}

// linkOffset returns the origin of to relative to from when to is entered
// through from's side d. ok is false when either anchor is missing.
func linkOffset(from, to *LevelRaw, d gamemath.Direction) (dx, dy int, ok bool) {
	a, b := from.Offsets[d], to.Offsets[d.Opposite()]
	if !a.OK || !b.OK {
		return 0, 0, false
	}
	ts := gamemath.TileSize
	switch d {
	case gamemath.Left:
		return -to.Width() * ts, a.Value - b.Value, true
	case gamemath.Right:
		return from.Width() * ts, a.Value - b.Value, true
	case gamemath.Up:
		return a.Value - b.Value, -to.Height() * ts, true
	case gamemath.Down:
		return a.Value - b.Value, from.Height() * ts, true
	}
	return 0, 0, false
}

// Link resolves the exit on side d of level from. It returns the target
// level and its origin relative to from. The target must exit back to from
// on the opposite side and both edges must carry an exit anchor.
func (ls *Levelset) Link(from int, d gamemath.Direction) (Placement, error) {
	src := ls.Level(from)
	if src == nil {
		return Placement{}, &GraphError{From: from, To: -1, Side: d, Msg: "no such level"}
	}
	to, ok := src.Exit(d)
	if !ok {
		return Placement{}, &GraphError{From: from, To: -1, Side: d, Msg: "no exit"}
	}
	dst := ls.Level(to)
	if dst == nil {
		return Placement{}, &GraphError{From: from, To: to, Side: d, Msg: "no such level"}
	}
	if back, ok := dst.Exit(d.Opposite()); !ok || back != from {
		return Placement{}, &GraphError{From: from, To: to, Side: d, Msg: fmt.Sprintf("target has no %s exit back", d.Opposite())}
	}
	if !src.Offsets[d].OK {
		return Placement{}, &GraphError{From: from, To: to, Side: d, Msg: "missing exit anchor on source edge"}
	}
	dx, dy, ok := linkOffset(src, dst, d)
	if !ok {
		return Placement{}, &GraphError{From: from, To: to, Side: d, Msg: "missing exit anchor on target edge"}
	}
	return Placement{Index: to, X: dx, Y: dy}, nil
}

// Walk returns every level reachable from start through anchored exits,
// depth first, each placed relative to start. start comes first at the
// origin. Edges without anchors on both sides are skipped.
func (ls *Levelset) Walk(start int) []Placement {
	if ls.Level(start) == nil {
		return nil
	}

	seen := mapset.New[int]()
	seen.Put(start)
	stack := []Placement{{Index: start}}
	var out []Placement

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)

		raw := ls.Levels[cur.Index]
		// Push in reverse so the left neighbour is visited first.
		for i := len(gamemath.Directions) - 1; i >= 0; i-- {
			d := gamemath.Directions[i]
			next, ok := raw.Exit(d)
			if !ok || seen.Has(next) || ls.Level(next) == nil {
				continue
			}
			dx, dy, ok := linkOffset(raw, ls.Levels[next], d)
			if !ok {
				continue
			}
			seen.Put(next)
			stack = append(stack, Placement{Index: next, X: cur.X + dx, Y: cur.Y + dy})
		}
	}
	return out
}

// FindTheme returns the theme for a level: its own, or the first declared
// by a level reachable from it. offset is the origin of the declaring level
// relative to start. ok is false when no reachable level declares a theme.
func (ls *Levelset) FindTheme(start int) (theme int, offset Placement, ok bool) {
	for _, p := range ls.Walk(start) {
		if t := ls.Levels[p.Index].Theme; t.Set && t.Index >= 0 {
			return t.Index, p, true
		}
	}
	return 0, Placement{Index: start}, false
}

// Validate checks every exit with Link and that every door has exactly one
// door back in its target level. All problems are returned joined.
func (ls *Levelset) Validate() error {
	var errs []error
	for i, raw := range ls.Levels {
		for _, d := range gamemath.Directions {
			if _, ok := raw.Exit(d); !ok {
				continue
			}
			if _, err := ls.Link(i, d); err != nil {
				errs = append(errs, err)
			}
		}
		for _, door := range raw.Doors {
			target := ls.Level(door.Index)
			if target == nil {
				continue
			}
			back := 0
			for _, d := range target.Doors {
				if d.Index == i {
					back++
				}
			}
			if back != 1 {
				errs = append(errs, &GraphError{
					From: i, To: door.Index, Side: gamemath.NoDirection,
					Msg: fmt.Sprintf("door target has %d doors back, want 1", back),
				})
			}
		}
	}
	return errors.Join(errs...)
}
