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

// CreateExit creates a level exit entity with collision detection
func CreateExit(ecs *ecs.ECS, area leveldata.Area) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(area.X, area.Y, area.W, area.H, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, area.W, area.H))
	obj.Data = exit

	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	components.Exit.SetValue(exit, components.ExitData{})

	addToSpace(ecs, obj)
	return exit
}
