package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/automoto/playdead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExits checks for player collision with an exit and triggers level complete
func UpdateExits(ecs *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if !components.Player.Get(playerEntry).Actor.Alive() {
		return
	}

	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvExit)
	if check == nil {
		return
	}

	exitObjs := check.ObjectsByTags(tags.ResolvExit)
	if len(exitObjs) == 0 {
		return
	}

	exitEntry, ok := exitObjs[0].Data.(*donburi.Entry)
	if !ok || exitEntry == nil {
		return
	}

	exit := components.Exit.Get(exitEntry)
	if exit.Activated {
		return
	}

	exit.Activated = true
	levelComplete.IsComplete = true
	levelComplete.Timer = cfg.LevelComplete.DelayFrames

	PlaySFX(ecs, playstate.SoundExit)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		RecordLevelClear(ecs, components.Level.Get(levelEntry))
	}
}
