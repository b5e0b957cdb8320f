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

// CreateCheckpoint creates a checkpoint entity with collision detection
func CreateCheckpoint(ecs *ecs.ECS, area leveldata.Area) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(area.X, area.Y, area.W, area.H, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, area.W, area.H))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	// Actor positions are feet positions, so respawn on the volume's floor.
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: area.ID,
		SpawnX:       area.X + area.W/2,
		SpawnY:       area.Y + area.H,
	})

	addToSpace(ecs, obj)
	return checkpoint
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
