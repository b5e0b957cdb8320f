package systems

import (
	"fmt"

	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/records"
	"github.com/automoto/playdead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the level name, death count, run time and audio state in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	progress := GetOrCreateProgress(ecs)

	tps := ebiten.TPS()
	msg := fmt.Sprintf("%s  deaths %d  time %s", levelData.CurrentLevel.Name, progress.Deaths,
		records.FormatFrames(levelData.Frames, tps))
	if levelData.BestFrames > 0 {
		msg += "  best " + records.FormatFrames(levelData.BestFrames, tps)
	}
	if levelData.ActiveCheckpoint != nil {
		msg += fmt.Sprintf("  checkpoint %d", levelData.ActiveCheckpoint.CheckpointID)
	}
	if GetOrCreateSettings(ecs).Muted {
		msg += "  [muted]"
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		a := components.Player.Get(playerEntry).Actor
		if !a.Alive() {
			msg += "\n" + a.DeathCause().String()
		}
	}

	ebitenutil.DebugPrintAt(screen, msg, cfg.UI.HUDX, cfg.UI.HUDY)
}
