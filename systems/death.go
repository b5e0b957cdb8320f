package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const deathShakeIntensity = 6.0

// UpdateDeaths notices when the actor has died, lets the death animation
// play out, then respawns at the last checkpoint.
func UpdateDeaths(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	if !playerEntry.HasComponent(components.Death) {
		if player.Actor.Alive() {
			return
		}
		donburi.Add(playerEntry, components.Death, &components.DeathData{
			Timer: cfg.Respawn.DelayFrames,
		})
		progress := GetOrCreateProgress(ecs)
		progress.Deaths++
		TriggerScreenShake(ecs, deathShakeIntensity, cfg.Respawn.DelayFrames/3)
		log.Info("player died", "cause", player.Actor.DeathCause(), "deaths", progress.Deaths)
		return
	}

	death := components.Death.Get(playerEntry)
	death.Timer--
	if death.Timer > 0 {
		return
	}

	donburi.Remove[components.DeathData](playerEntry, components.Death)
	RespawnPlayer(ecs, playerEntry)
}

// RespawnPlayer rebuilds the level from its file so flooded cells drain, and
// puts the actor back at the active checkpoint or the level spawn.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	if fresh, err := levelData.Loader.Load(levelData.CurrentLevel.Name); err == nil {
		levelData.CurrentLevel = fresh
	} else {
		log.Warn("could not reload level", "level", levelData.CurrentLevel.Name, "err", err)
	}

	spawn := levelData.CurrentLevel.Spawn()
	if cp := levelData.ActiveCheckpoint; cp != nil {
		spawn = gamemath.Vec2{X: cp.SpawnX, Y: cp.SpawnY}
	}

	player := components.Player.Get(e)
	player.Actor.Reset(spawn)
	syncPlayerObject(e)
	SnapCamera(ecs, spawn)
}
