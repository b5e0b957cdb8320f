package factory

import (
	"math"

	"github.com/automoto/playdead/archetypes"
	"github.com/automoto/playdead/assets"
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/leveldata"
	"github.com/automoto/playdead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity and the trigger space for the named
// level.
func CreateLevel(ecs *ecs.ECS, loader *assets.LevelLoader, name string) (*donburi.Entry, error) {
	current, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	data, err := loader.Data(name)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		Data:         data,
		Loader:       loader,
		LevelIndex:   loader.Index(name),
	})

	createSpaceFor(ecs, data)
	CreateTriggers(ecs, data)
	return level, nil
}

// createSpaceFor sizes the space to the grid, grown to hold trigger volumes
// that sit outside it, such as kill planes under the map.
func createSpaceFor(ecs *ecs.ECS, data *leveldata.Data) {
	w, h := data.Width*data.TileWidth, data.Height*data.TileHeight
	for _, areas := range [][]leveldata.Area{data.Checkpoints, data.Exits, data.KillPlanes} {
		for _, a := range areas {
			w = max(w, int(math.Ceil(a.X+a.W)))
			h = max(h, int(math.Ceil(a.Y+a.H)))
		}
	}
	CreateSpace(ecs, w, h, data.TileWidth, data.TileHeight)
}

// CreateTriggers spawns the checkpoint, exit and dead zone volumes.
func CreateTriggers(ecs *ecs.ECS, data *leveldata.Data) {
	for _, c := range data.Checkpoints {
		CreateCheckpoint(ecs, c)
	}
	for _, e := range data.Exits {
		CreateExit(ecs, e)
	}
	for _, z := range data.KillPlanes {
		CreateDeadZone(ecs, z)
	}
}

// ReplaceLevel swaps the current level for another one, rebuilding the
// trigger space. The player's hit box is moved into the new space.
func ReplaceLevel(ecs *ecs.ECS, name string) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)

	current, err := levelData.Loader.Load(name)
	if err != nil {
		return err
	}
	data, err := levelData.Loader.Data(name)
	if err != nil {
		return err
	}

	var stale []donburi.Entity
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Checkpoint, tags.Exit, tags.DeadZone} {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			stale = append(stale, e.Entity())
		})
	}
	for _, e := range stale {
		ecs.World.Remove(e)
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(spaceEntry.Entity())
	}

	levelData.CurrentLevel = current
	levelData.Data = data
	levelData.LevelIndex = levelData.Loader.Index(name)
	levelData.ActiveCheckpoint = nil
	levelData.Frames = 0

	createSpaceFor(ecs, data)
	CreateTriggers(ecs, data)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		addToSpace(ecs, components.Object.Get(playerEntry).Object)
	}
	return nil
}
