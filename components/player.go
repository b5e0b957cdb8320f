package components

import (
	"github.com/automoto/playdead/assets/animations"
	"github.com/automoto/playdead/shared/actor"
	"github.com/yohamta/donburi"
)

// PlayerData wraps the physics actor so systems can reach it through the
// world.
type PlayerData struct {
	Actor    *actor.Actor
	Animator *animations.Animator
}

var Player = donburi.NewComponentType[PlayerData]()
