package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			r := objectBounds(obj)
			if !v.visible(r) {
				continue
			}
			v.stroke(screen, r, debugColor(obj))
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	a := components.Player.Get(playerEntry).Actor
	p, vel := a.Position(), a.Velocity()
	msg := fmt.Sprintf("%s ground:%t climb:%t\npos %.1f,%.1f\nvel %.1f,%.1f",
		a.Animation(), a.OnGround(), a.Climbing(), p.X, p.Y, vel.X, vel.Y)
	if tuning, ok := components.Tuning.First(ecs.World); ok {
		msg += fmt.Sprintf("\ntuning reloads %d", components.Tuning.Get(tuning).Reloads)
	}
	ebitenutil.DebugPrintAt(screen, msg, cfg.UI.HUDX, screen.Bounds().Dy()-64)
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return colornames.Blue
	case obj.HasTags(tags.ResolvDeadZone):
		return colornames.Red
	case obj.HasTags(tags.ResolvCheckpoint):
		return colornames.Lime
	case obj.HasTags(tags.ResolvExit):
		return colornames.Magenta
	}
	return colornames.Cyan
}
