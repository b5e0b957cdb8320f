package leveldata

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/playdead/shared/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileset = `<tileset firstgid="1" name="collision" tilewidth="40" tileheight="32" tilecount="3" columns="3">
  <tile id="1"><properties><property name="collision" value="platform"/></properties></tile>
  <tile id="2"><properties><property name="collision" value="%s"/></properties></tile>
 </tileset>`

// tmx builds a 4x3 map. gid 1 has no properties, 2 is a platform and 3 uses
// the given collision name.
func tmx(third, layerName, objects string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="40" tileheight="32" infinite="0">
 %s
 <layer id="1" name="%s" width="4" height="3">
  <data encoding="csv">
0,0,0,3,
0,2,2,0,
1,1,1,1
</data>
 </layer>
 %s
</map>`, fmt.Sprintf(tileset, third), layerName, objects)
}

const spawnGroup = `<objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="60" y="64"><point/></object>
 </objectgroup>`

func load(t *testing.T, contents string) (*Data, error) {
	t.Helper()
	fsys := fstest.MapFS{"levels/test.tmx": &fstest.MapFile{Data: []byte(contents)}}
	return Load(fsys, "levels/test.tmx")
}

func TestLoadCollisionLayer(t *testing.T) {
	data, err := load(t, tmx("ladder", CollisionLayer, spawnGroup))
	require.NoError(t, err)

	assert.Equal(t, "test", data.Name)
	assert.Equal(t, 4, data.Width)
	assert.Equal(t, 3, data.Height)
	assert.Equal(t, 40, data.TileWidth)
	assert.Equal(t, 32, data.TileHeight)

	assert.Equal(t, tiles.Passable, data.Collision(0, 0))
	assert.Equal(t, tiles.Ladder, data.Collision(3, 0))
	assert.Equal(t, tiles.Platform, data.Collision(1, 1))
	assert.Equal(t, tiles.Impassable, data.Collision(2, 2), "tiles without a property are solid")
	assert.Equal(t, tiles.Passable, data.Collision(-1, 7))

	require.Len(t, data.SpawnPoints, 1)
	assert.Equal(t, SpawnPoint{X: 60, Y: 64}, data.SpawnPoints[0])
}

func TestLoadObjectGroups(t *testing.T) {
	objects := spawnGroup + `
 <objectgroup id="3" name="Checkpoint">
  <object id="2" x="80" y="0" width="40" height="64">
   <properties><property name="checkpointID" type="int" value="7"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Exit">
  <object id="3" x="120" y="0" width="40" height="64"/>
 </objectgroup>
 <objectgroup id="5" name="DeadZones">
  <object id="4" x="0" y="96" width="160" height="32"/>
 </objectgroup>
 <objectgroup id="6" name="MovingTiles">
  <object id="5" x="40" y="40" width="80" height="16">
   <properties>
    <property name="collision" value="platform"/>
    <property name="dx" type="float" value="120"/>
    <property name="duration" type="float" value="1.5"/>
   </properties>
  </object>
  <object id="6" x="0" y="0" width="40" height="32"/>
 </objectgroup>
 <objectgroup id="7" name="WaterSources">
  <object id="7" x="50" y="70"><properties><property name="level" type="int" value="3"/></properties><point/></object>
  <object id="8" x="130" y="70"><point/></object>
 </objectgroup>`

	data, err := load(t, tmx("water", CollisionLayer, objects))
	require.NoError(t, err)

	assert.Equal(t, []Area{{ID: 7, X: 80, Y: 0, W: 40, H: 64}}, data.Checkpoints)
	assert.Equal(t, []Area{{ID: 3, X: 120, Y: 0, W: 40, H: 64}}, data.Exits)
	assert.Equal(t, []Area{{ID: 4, X: 0, Y: 96, W: 160, H: 32}}, data.KillPlanes)

	require.Len(t, data.MovingTiles, 2)
	assert.Equal(t, MovingTileSpawn{
		X: 40, Y: 40, W: 80, H: 16,
		Collision: tiles.Platform,
		DX:        120,
		Duration:  1.5,
	}, data.MovingTiles[0])
	assert.Equal(t, tiles.Impassable, data.MovingTiles[1].Collision)
	assert.Equal(t, defaultMoveSeconds, data.MovingTiles[1].Duration)

	assert.Equal(t, []WaterSourceSpawn{
		{Col: 1, Row: 2, Level: 3},
		{Col: 3, Row: 2, Level: 1},
	}, data.WaterSources)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"unknown collision", tmx("lava", CollisionLayer, spawnGroup), `unknown collision "lava"`},
		{"missing layer", tmx("ladder", "wg-tiles", spawnGroup), `no "collision" layer`},
		{"missing spawn", tmx("ladder", CollisionLayer, ""), "no PlayerSpawn object"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := load(t, c.contents)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
			assert.Contains(t, err.Error(), "levels/test.tmx")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/nope.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(tmx("ladder", CollisionLayer, spawnGroup))},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(tmx("death", CollisionLayer, spawnGroup))},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, tiles.Death, levels["a"].Collision(3, 0))

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
