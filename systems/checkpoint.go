package systems

import (
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/automoto/playdead/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints checks for player collision with checkpoints and activates them
func UpdateCheckpoints(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if !components.Player.Get(playerEntry).Actor.Alive() {
		return
	}

	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return
	}

	checkpointObjs := check.ObjectsByTags(tags.ResolvCheckpoint)
	if len(checkpointObjs) == 0 {
		return
	}

	checkpointEntry, ok := checkpointObjs[0].Data.(*donburi.Entry)
	if !ok || checkpointEntry == nil {
		return
	}

	checkpoint := components.Checkpoint.Get(checkpointEntry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	levelData := components.Level.Get(levelEntry)
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		SpawnX:       checkpoint.SpawnX,
		SpawnY:       checkpoint.SpawnY,
		CheckpointID: checkpoint.CheckpointID,
	}

	PlaySFX(ecs, playstate.SoundCheckpoint)
	log.Info("checkpoint reached", "id", checkpoint.CheckpointID)
	SaveGameProgress(levelData, GetOrCreateProgress(ecs))
}
