package components

import "github.com/yohamta/donburi"

// DeathData marks a player whose actor has died. Timer counts down each
// frame; at 0 the player respawns.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
