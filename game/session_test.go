package game

import (
	"errors"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/input"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = gamemath.TileSize

const header = "#: wall\na: exit_anchor\np: player\nd: door\n*: spikes\nG: goal\n"

func testLevels(t *testing.T) *leveldata.Levelset {
	t.Helper()
	fsys := fstest.MapFS{
		"w/levels.levelset": {Data: []byte("World\n===\nstart\nnext\n")},
		"w/start.lvl": {Data: []byte("Start\n===\n" + header + "===\nright: next\ndoor: next\n===\n" +
			"########\n" +
			"#......#\n" +
			".......#\n" +
			"#p.d...a\n" +
			"########\n")},
		"w/next.lvl": {Data: []byte("Next\n===\n" + header + "===\nleft: start\ndoor: start\n===\n" +
			"######\n" +
			"#....#\n" +
			"#p...#\n" +
			"a..d.#\n" +
			"######\n")},
	}
	ls, err := leveldata.LoadLevelset(fsys, "w")
	require.NoError(t, err)
	return ls
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testLevels(t))
	require.NoError(t, err)
	return s
}

func tickN(t *testing.T, s *Session, n int, in input.Snapshot) {
	t.Helper()
	for range n {
		require.NoError(t, s.Tick(in))
	}
}

// standAt places the player on the floor of row 3 and lets it settle.
func standAt(t *testing.T, s *Session, col int) {
	t.Helper()
	s.Level.PlacePlayer(col*ts, 3*ts)
	tickN(t, s, 2, input.Snapshot{})
	require.True(t, s.Level.PlayerState().Grounded)
}

func TestNewSessionStartsOnFirstLevel(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, 0, s.Level.Index)
	assert.Equal(t, OpenTransition, s.Transition().Kind)
	assert.Equal(t, ts, s.Level.PlayerBody().X)

	_, err := NewSession(&leveldata.Levelset{})
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestExitCarriesPlayerAcross(t *testing.T) {
	s := newSession(t)
	standAt(t, s, 5)
	s.State.Jumps = 2

	body := s.Level.PlayerBody()
	s.Level.PlacePlayer(7*ts+1500, 3*ts)
	body.SpeedX = gamemath.MaxPlayerSpeed

	require.NoError(t, s.Tick(input.Snapshot{}.Holding(input.Right)))

	require.Equal(t, 1, s.Level.Index)
	next := s.Level.PlayerBody()
	assert.Equal(t, 7*ts+1500+gamemath.MaxPlayerSpeed-8*ts, next.X)
	assert.Equal(t, 3*ts, next.Y)
	assert.Equal(t, gamemath.MaxPlayerSpeed, next.SpeedX)
	assert.Equal(t, 0, s.State.Jumps)
}

func TestExitWithoutPathBackFails(t *testing.T) {
	s := newSession(t)
	standAt(t, s, 5)
	s.Levels.Levels[1].Exits[gamemath.Left] = leveldata.Ref{Index: -1}

	s.Level.PlacePlayer(7*ts+1500, 3*ts)
	s.Level.PlayerBody().SpeedX = gamemath.MaxPlayerSpeed
	err := s.Tick(input.Snapshot{}.Holding(input.Right))

	var graphErr *leveldata.GraphError
	require.True(t, errors.As(err, &graphErr))
	assert.Equal(t, 0, graphErr.From)
	assert.Equal(t, 1, graphErr.To)
	assert.Equal(t, 0, s.Level.Index)
}

func TestEdgeWithoutExitClamps(t *testing.T) {
	s := newSession(t)
	s.Level.PlacePlayer(-ts/2-100, 2*ts)

	require.NoError(t, s.Tick(input.Snapshot{}.Holding(input.Left)))

	assert.Equal(t, 0, s.Level.Index)
	assert.Equal(t, -ts/2, s.Level.PlayerBody().X)
	assert.Equal(t, Playing, s.Mode())
}

func TestFallingOutDies(t *testing.T) {
	s := newSession(t)
	s.Level.PlacePlayer(2*ts, 5*ts+10)

	require.NoError(t, s.Tick(input.Snapshot{}))

	assert.Equal(t, Dying, s.Mode())
	assert.Equal(t, 1, s.State.Deaths)
}

func TestDeathRespawns(t *testing.T) {
	s := newSession(t)
	s.Level.Tiles.Set(0, 3, 5, tiles.Of(tiles.Spikes))
	s.State.Jumps = 1
	s.Level.PlacePlayer(5*ts, 3*ts)

	require.NoError(t, s.Tick(input.Snapshot{}))
	require.Equal(t, Dying, s.Mode())
	assert.Equal(t, DeathTransition, s.Transition().Kind)
	assert.Equal(t, 1, s.State.Deaths)

	timer := s.State.Timer
	tickN(t, s, cfg.Transition.DeathTicks-1, input.Snapshot{})
	assert.Equal(t, Dying, s.Mode())
	assert.Equal(t, timer, s.State.Timer, "timer stops while dying")

	tickN(t, s, 1, input.Snapshot{})
	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, OpenTransition, s.Transition().Kind)
	assert.Equal(t, ts, s.Level.PlayerBody().X)
	assert.True(t, s.Level.Tiles.At(0, 3, 5).IsEmpty(), "level rebuilt from raw data")
	assert.Equal(t, 0, s.State.Jumps)
}

func TestDoorRoundTrip(t *testing.T) {
	s := newSession(t)
	standAt(t, s, 3)

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Up)))
	require.Equal(t, Entering, s.Mode())
	assert.Equal(t, DoorTransition, s.Transition().Kind)

	tickN(t, s, cfg.Transition.DoorTicks, input.Snapshot{})
	require.Equal(t, Playing, s.Mode())
	require.Equal(t, 1, s.Level.Index)
	assert.Equal(t, 3*ts, s.Level.PlayerBody().X)
	assert.Equal(t, 3*ts, s.Level.PlayerBody().Y)

	standAt(t, s, 3)
	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Up)))
	tickN(t, s, cfg.Transition.DoorTicks, input.Snapshot{})
	assert.Equal(t, 0, s.Level.Index)
	assert.Equal(t, 3*ts, s.Level.PlayerBody().X)
}

func TestDoorWithoutWayBackLandsOnSpawn(t *testing.T) {
	s := newSession(t)
	next := s.Levels.Levels[1]
	next.Layers.Set(0, 3, 3, tiles.Tile{})
	next.Doors = nil
	standAt(t, s, 3)

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Up)))
	require.Equal(t, Entering, s.Mode())
	tickN(t, s, cfg.Transition.DoorTicks, input.Snapshot{})

	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, 1, s.Level.Index)
	assert.Equal(t, ts, s.Level.PlayerBody().X)
	assert.Equal(t, 2*ts, s.Level.PlayerBody().Y)
}

func TestDoorToMissingLevelIsIgnored(t *testing.T) {
	s := newSession(t)
	standAt(t, s, 3)
	s.Level.Tiles.Set(0, 3, 3, tiles.NewDoor(9, false))

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Up)))

	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, 0, s.Level.Index)
}

func TestDoorNeedsGround(t *testing.T) {
	s := newSession(t)
	s.Level.PlacePlayer(3*ts, 3*ts-1000)

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Up)))

	assert.Equal(t, Playing, s.Mode())
	assert.False(t, s.Level.PlayerState().Grounded)
}

func TestWinFreezesSession(t *testing.T) {
	s := newSession(t)
	s.Level.Tiles.Set(0, 3, 5, tiles.Of(tiles.Goal))
	s.Level.PlacePlayer(5*ts, 3*ts)

	require.NoError(t, s.Tick(input.Snapshot{}))
	require.Equal(t, Won, s.Mode())

	timer := s.State.Timer
	y := s.Level.PlayerBody().Y
	tickN(t, s, 50, input.Snapshot{}.With(input.Jump, input.Pause))
	assert.Equal(t, Won, s.Mode())
	assert.Equal(t, timer, s.State.Timer)
	assert.Equal(t, y, s.Level.PlayerBody().Y)
	assert.Equal(t, WinTransition, s.Transition().Kind)
}

func TestPauseToggle(t *testing.T) {
	s := newSession(t)
	standAt(t, s, 2)
	timer := s.State.Timer

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Pause)))
	assert.Equal(t, Paused, s.Mode())

	tickN(t, s, 10, input.Snapshot{}.Holding(input.Right))
	assert.Equal(t, timer, s.State.Timer)
	assert.Equal(t, 2*ts, s.Level.PlayerBody().X)

	require.NoError(t, s.Tick(input.Snapshot{}.With(input.Pause)))
	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, timer+1, s.State.Timer, "the resuming tick plays")
}

func TestTimeScaleSlowsSimulation(t *testing.T) {
	s := newSession(t)
	s.Level.PlacePlayer(3*ts, ts)
	s.State.Modifiers.TimeScale = 2
	s.State.Timer = 0

	require.NoError(t, s.Tick(input.Snapshot{}))
	assert.Equal(t, ts, s.Level.PlayerBody().Y, "odd tick skipped")

	require.NoError(t, s.Tick(input.Snapshot{}))
	assert.Greater(t, s.Level.PlayerBody().Y, ts)
}

func TestResetRun(t *testing.T) {
	s := newSession(t)
	s.Level.PlacePlayer(2*ts, 5*ts+10)
	require.NoError(t, s.Tick(input.Snapshot{}))
	require.Equal(t, 1, s.State.Deaths)

	s.ResetRun()

	assert.Equal(t, Playing, s.Mode())
	assert.Equal(t, 0, s.State.Deaths)
	assert.Equal(t, 0, s.Level.Index)
}

func TestFrame(t *testing.T) {
	s := newSession(t)
	s.State.Keys[tiles.Green] = 2

	f := s.Frame()

	assert.Equal(t, "Start", f.Name)
	assert.Equal(t, 2, f.HUD.Keys[tiles.Green])
	require.Len(t, f.Neighbours, 1)
	assert.Equal(t, 1, f.Neighbours[0].Index)
	assert.Equal(t, 8*ts, f.Neighbours[0].X)
	assert.Equal(t, 0, f.Neighbours[0].Y)
	assert.Nil(t, f.Theme)
	require.NotEmpty(t, f.Objects)
	assert.Equal(t, ts, f.Objects[0].Box.X)
}
