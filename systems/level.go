package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances the moving tiles. Runs before UpdatePlayer so the
// resolver sees this frame's tile displacement.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	levelData.CurrentLevel.Update(frameDT())
	levelData.Frames++

	if levelData.WaterCooldown > 0 {
		levelData.WaterCooldown--
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRaiseWater).JustPressed && levelData.WaterCooldown == 0 {
		levelData.CurrentLevel.RaiseWater()
		levelData.WaterCooldown = cfg.Water.RaiseCooldownFrames
		log.Debug("water raised", "level", levelData.CurrentLevel.Name)
	}
}

// UpdateWater floods from every water source. Runs after UpdatePlayer; the
// actor meets new water on the next frame.
func UpdateWater(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	levelData.CurrentLevel.FillWater()
}
