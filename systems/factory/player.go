package factory

import (
	"github.com/automoto/playdead/archetypes"
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/actor"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the single controllable actor with its feet at spawn.
func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	a := actor.New(cfg.Physics, spawn)
	bounds := a.Bounds()

	obj := resolv.NewObject(bounds.X, bounds.Y, bounds.W, bounds.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, bounds.W, bounds.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Actor:    a,
		Animator: GenerateAnimator("player"),
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		LerpSpeed: 0.2,
	})

	addToSpace(ecs, obj)
	return player
}
