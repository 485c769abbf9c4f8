package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="1">
 <properties>
  <property name="name" value="Tiled Room"/>
  <property name="left" value="0"/>
  <property name="doors" value="0, 0"/>
  <property name="slippery" type="bool" value="true"/>
 </properties>
 <tileset firstgid="1" name="kinds" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <tile id="0"><properties><property name="tile" value="wall"/></properties></tile>
  <tile id="1"><properties><property name="tile" value="exit_anchor"/></properties></tile>
  <tile id="2"><properties><property name="tile" value="door"/></properties></tile>
  <tile id="3"><properties><property name="tile" value="player"/></properties></tile>
 </tileset>
 <layer id="1" name="front" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
2,4,3,3,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="back" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/room.tmx": {Data: []byte(tmxLevel)}}

	raw, err := LoadTMX(fsys, "levels/room.tmx")
	require.NoError(t, err)

	assert.Equal(t, "Tiled Room", raw.Name)
	assert.Equal(t, 4, raw.Width())
	assert.Equal(t, 3, raw.Height())
	assert.Len(t, raw.Layers, 2)
	assert.Equal(t, tiles.Of(tiles.Wall), raw.Layers.At(0, 0, 0))
	assert.Equal(t, tiles.Of(tiles.DoorGeneric), raw.Layers.At(0, 1, 2))
	assert.Equal(t, Spawn{Col: 1, Row: 1, OK: true}, raw.Spawn)
	assert.Equal(t, Offset{Value: gamemath.TileSize, OK: true}, raw.Offsets[gamemath.Left])
	assert.Len(t, raw.Doors, 2)
	assert.True(t, raw.Modifiers.Slippery)

	exit, ok := raw.Exit(gamemath.Left)
	require.True(t, ok)
	assert.Equal(t, 0, exit)
}

func TestLevelsetFallsBackToTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"w/levels.levelset": {Data: []byte("W\n===\nroom\n")},
		"w/room.tmx":        {Data: []byte(tmxLevel)},
	}

	ls, err := LoadLevelset(fsys, "w")
	require.NoError(t, err)
	require.Len(t, ls.Levels, 1)
	assert.Equal(t, "w/room.tmx", ls.Level(0).File)
}
