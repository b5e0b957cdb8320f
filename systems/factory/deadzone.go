package factory

import (
	"github.com/automoto/playdead/archetypes"
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/leveldata"
	"github.com/automoto/playdead/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible volume that kills the player on touch.
// Levels put them below the map so falling out of the world ends in death.
func CreateDeadZone(ecs *ecs.ECS, area leveldata.Area) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(area.X, area.Y, area.W, area.H, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, area.W, area.H))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return zone
}
