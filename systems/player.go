package systems

import (
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/actor"
	"github.com/automoto/playdead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDT is the fixed step handed to the physics core.
func frameDT() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// UpdatePlayer steps the actor against the current level with this frame's
// intent and forwards its sound cues.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	player := components.Player.Get(playerEntry)

	var intent actor.Intent
	if player.Actor.Alive() {
		intent = IntentFrom(getOrCreateInput(ecs))
	}

	player.Actor.Step(levelData.CurrentLevel, frameDT(), intent)

	for _, cue := range player.Actor.DrainCues() {
		PlaySFX(ecs, cue)
	}

	player.Animator.Update(player.Actor.Animation(), player.Actor.AnimationPaused())
	syncPlayerObject(playerEntry)
}

// syncPlayerObject moves the player's trigger box onto the actor's bounds.
func syncPlayerObject(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	bounds := player.Actor.Bounds()
	obj.X = bounds.X
	obj.Y = bounds.Y
	obj.Update()
}
