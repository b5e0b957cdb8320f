package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the trigger volumes (checkpoints, exits, dead zones) and the
// player's hit box. Tile collision does not go through it.
var Space = donburi.NewComponentType[resolv.Space]()
