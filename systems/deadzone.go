package systems

import (
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/automoto/playdead/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeadZones kills the actor when it touches a dead zone volume.
func UpdateDeadZones(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Actor.Alive() {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	if check := playerObj.Check(0, 0, tags.ResolvDeadZone); check != nil {
		player.Actor.Kill(playstate.DeathFall)
		for _, cue := range player.Actor.DrainCues() {
			PlaySFX(ecs, cue)
		}
	}
}
