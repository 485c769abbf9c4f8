package systems

import (
	"testing"

	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/systems/factory"
	"github.com/automoto/notmarioland/tiles"
	"github.com/stretchr/testify/assert"
)

func TestPlayerDiesOnSpikes(t *testing.T) {
	r := newRig(t, ts, 0,
		"..*",
		"...",
	)
	assert.False(t, PlayerDies(r.world, r.player, r.grid))

	r.body().X = ts + 200
	UpdateObjects(r.world)
	assert.True(t, PlayerDies(r.world, r.player, r.grid))
}

func TestPlayerDiesOnSaw(t *testing.T) {
	grace := ts - cfg.Hazards.SawMargin
	tests := []struct {
		name string
		sawX int
		dies bool
	}{
		{"inside margin", 2*ts + grace, false},
		{"past margin", 2*ts + grace - 1, true},
		{"overlapping", 2 * ts, true},
		{"far away", 5 * ts, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, 2*ts, 2*ts,
				"........",
				"........",
				"........",
				"........",
				"........",
			)
			factory.CreateSaw(r.world, r.space, tt.sawX, 2*ts, 0, 0)

			assert.Equal(t, tt.dies, PlayerDies(r.world, r.player, r.grid))
		})
	}
}

func TestGoalAndDoors(t *testing.T) {
	grid := gridFrom(t, "G..")
	grid.Set(0, 0, 2, tiles.NewDoor(4, true))

	assert.True(t, ReachedGoal(gamemath.TileBox(0, 0), grid))
	assert.False(t, ReachedGoal(gamemath.TileBox(1, 0), grid))

	door, ok := DoorAt(gamemath.TileBox(1, 0).Offset(10, 0), grid)
	assert.True(t, ok)
	assert.Equal(t, 4, door.Door)
	assert.Equal(t, tiles.SecretDoor, door.Kind)

	_, ok = DoorAt(gamemath.TileBox(0, 0), grid)
	assert.False(t, ok)
}
