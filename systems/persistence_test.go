package systems

import (
	"testing"

	"github.com/automoto/playdead/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useMemStore(t *testing.T) memStore {
	t.Helper()
	prev := store
	m := memStore{}
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

func TestPersistenceWithoutStore(t *testing.T) {
	prev := store
	store = nil
	t.Cleanup(func() { store = prev })

	s, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, SaveSettings(&SavedSettings{Muted: true}))
	assert.False(t, HasSaveGame())
	assert.NoError(t, ClearGameProgress())
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemStore(t)

	SaveCurrentSettings(&components.SettingsData{SFXVolume: 0.25, Muted: true, Debug: true})

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &SavedSettings{SFXVolume: 0.25, Muted: true}, s)
}

func TestGameProgressSavesCheckpoint(t *testing.T) {
	useMemStore(t)
	e, _, _ := newTestScene(t, nil)

	data := levelData(e)
	data.ActiveCheckpoint = &components.ActiveCheckpointData{SpawnX: 500, SpawnY: 512, CheckpointID: 2}
	SaveGameProgress(data, &components.ProgressData{Deaths: 4, LevelsCleared: 1})

	require.True(t, HasSaveGame())
	saved, err := LoadGameProgress()
	require.NoError(t, err)
	assert.Equal(t, &SavedGameProgress{
		Level:            "sewer",
		LevelIndex:       0,
		CheckpointID:     2,
		CheckpointSpawnX: 500,
		CheckpointSpawnY: 512,
		HasCheckpoint:    true,
		Deaths:           4,
		LevelsCleared:    1,
	}, saved)

	require.NoError(t, ClearGameProgress())
	assert.False(t, HasSaveGame())
}

func TestCorruptSaveIsReported(t *testing.T) {
	m := useMemStore(t)
	m[progressKey] = []byte("{not json")

	saved, err := LoadGameProgress()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestRestoreGameProgress(t *testing.T) {
	e, _, data := newTestScene(t, nil)
	cp := data.Checkpoints[0]

	spawn := RestoreGameProgress(e, &SavedGameProgress{
		Level:            "sewer",
		CheckpointID:     cp.ID,
		CheckpointSpawnX: 500,
		CheckpointSpawnY: 512,
		HasCheckpoint:    true,
		Deaths:           3,
	})

	assert.Equal(t, 500.0, spawn.X)
	assert.Equal(t, 512.0, spawn.Y)
	assert.Equal(t, 3, GetOrCreateProgress(e).Deaths)
	require.NotNil(t, levelData(e).ActiveCheckpoint)

	activated := 0
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		if components.Checkpoint.Get(entry).Activated {
			activated++
		}
	})
	assert.Equal(t, 1, activated)
}

func TestRestoreIgnoresOtherLevels(t *testing.T) {
	e, _, _ := newTestScene(t, nil)

	spawn := RestoreGameProgress(e, &SavedGameProgress{Level: "attic", HasCheckpoint: true, CheckpointSpawnX: 1})
	assert.Equal(t, levelData(e).CurrentLevel.Spawn(), spawn)
	assert.Nil(t, levelData(e).ActiveCheckpoint)

	assert.Equal(t, levelData(e).CurrentLevel.Spawn(), RestoreGameProgress(e, nil))
}
