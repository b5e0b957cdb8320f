package assets

import (
	"testing"

	"github.com/automoto/playdead/shared/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	loader, err := NewLevelLoader(LevelFS(""))
	require.NoError(t, err)
	require.Contains(t, loader.Names(), "sewer")

	l, err := loader.Load("sewer")
	require.NoError(t, err)
	assert.Equal(t, "sewer", l.Name)

	d, err := loader.Data("sewer")
	require.NoError(t, err)
	assert.NotEmpty(t, d.Checkpoints)
	assert.NotEmpty(t, d.Exits)
	assert.NotEmpty(t, d.KillPlanes)
	assert.NotEmpty(t, d.MovingTiles)
	assert.NotEmpty(t, d.WaterSources)

	// The spawn stands on solid ground.
	col, row := l.GridPosition(l.Spawn())
	assert.Equal(t, tiles.Impassable, l.Collision(col, row))
}

func TestLevelLoaderOrder(t *testing.T) {
	loader, err := NewLevelLoader(LevelFS(""))
	require.NoError(t, err)

	first := loader.Names()[0]
	assert.Equal(t, 0, loader.Index(first))
	assert.Equal(t, -1, loader.Index("nope"))
	assert.Equal(t, first, loader.Next(loader.Names()[len(loader.Names())-1]))

	_, err = loader.Load("nope")
	assert.Error(t, err)
}
