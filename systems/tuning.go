package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/actor"
	"github.com/automoto/playdead/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning applies physics tuning reloaded by the file watcher. It runs
// between frames, never during a step.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(entry)

	select {
	case err, ok := <-tuning.Errors:
		if ok {
			log.Warn("tuning reload failed, keeping previous values", "err", err)
		}
	default:
	}

	select {
	case params, ok := <-tuning.Updates:
		if !ok {
			return
		}
		ApplyTuning(ecs, params)
		tuning.Reloads++
		log.Info("tuning reloaded", "reloads", tuning.Reloads)
	default:
	}
}

// ApplyTuning swaps the physics tuning on the live actor and resizes its
// trigger box to match.
func ApplyTuning(ecs *ecs.ECS, params actor.Params) {
	cfg.Physics = params

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	player.Actor.SetParams(params)

	bounds := player.Actor.Bounds()
	obj := components.Object.Get(playerEntry)
	obj.W, obj.H = bounds.W, bounds.H
	obj.SetShape(resolv.NewRectangle(0, 0, bounds.W, bounds.H))
	syncPlayerObject(playerEntry)
}
