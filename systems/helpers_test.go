package systems

import (
	"testing"

	"github.com/automoto/notmarioland/components"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/state"
	"github.com/automoto/notmarioland/systems/factory"
	"github.com/automoto/notmarioland/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const ts = gamemath.TileSize

var legend = map[rune]tiles.Kind{
	'.': tiles.Empty,
	'#': tiles.Wall,
	'4': tiles.Wall4,
	'^': tiles.OneWayUp,
	'*': tiles.Spikes,
	'k': tiles.KeyRed,
	'L': tiles.LockRed,
	'B': tiles.LockBlue,
	'S': tiles.Secret,
	'j': tiles.JumpArrow,
	'i': tiles.IceCube,
	'v': tiles.Vanish,
	'G': tiles.Goal,
}

// gridFrom builds a single layer grid from rows of legend characters.
func gridFrom(t *testing.T, rows ...string) tiles.Grid {
	t.Helper()
	g := tiles.NewGrid(1, len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			k, ok := legend[ch]
			if !ok {
				t.Fatalf("unknown legend %q", ch)
			}
			g.Set(0, r, c, tiles.Of(k))
		}
	}
	return g
}

type rig struct {
	world  donburi.World
	space  *resolv.Space
	player *donburi.Entry
	grid   tiles.Grid
	gs     *state.GlobalState
}

func newRig(t *testing.T, x, y int, rows ...string) *rig {
	t.Helper()
	grid := gridFrom(t, rows...)
	world := donburi.NewWorld()
	space := components.Space.Get(factory.CreateSpace(world, grid.Width(), grid.Height())).Space
	return &rig{
		world:  world,
		space:  space,
		player: factory.CreatePlayer(world, space, x, y),
		grid:   grid,
		gs:     state.New(),
	}
}

func (r *rig) body() *components.BodyData     { return components.Body.Get(r.player) }
func (r *rig) movement() *components.PlayerData { return components.Player.Get(r.player) }

func (r *rig) tick(in input.Snapshot) {
	UpdatePlayer(r.player, in, r.grid, r.gs)
	UpdateObjects(r.world)
}

func (r *rig) run(n int, in input.Snapshot) {
	for range n {
		r.tick(in)
	}
}
