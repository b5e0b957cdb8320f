package scenes

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/playdead/assets"
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/systems"
	"github.com/automoto/playdead/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects what the platformer scene loads.
type Options struct {
	// Levels holds the .tmx files at its root.
	Levels fs.FS
	// Level is the level to start in. Empty means the saved level, or the
	// first one when nothing is saved.
	Level string
	// Resume restores the saved checkpoint and counters.
	Resume bool
	// Tuning, when set, feeds hot-reloaded physics tuning into the scene.
	Tuning *cfg.TuningWatcher
}

type PlatformerScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
	err  error
}

func NewPlatformerScene(opts Options) *PlatformerScene {
	return &PlatformerScene{opts: opts}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() error {
	systems.PreloadAllSFX()

	loader, err := assets.NewLevelLoader(ps.opts.Levels)
	if err != nil {
		return fmt.Errorf("failed to load levels: %w", err)
	}

	var saved *systems.SavedGameProgress
	if ps.opts.Resume {
		saved, _ = systems.LoadGameProgress()
	}
	name := startLevel(loader, ps.opts.Level, saved)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Between-frame work: tuning reloads, input and toggles that run while paused.
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)

	// One frame of simulation. Order matters: tiles move, the actor steps
	// against them, triggers see the resolved position, then water spreads.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateExits))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeadZones))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWater))
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSquashStretch))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Runs while the level-complete banner is up.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevelComplete))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	if _, err := factory.CreateLevel(ecs, loader, name); err != nil {
		return fmt.Errorf("failed to create level %s: %w", name, err)
	}
	factory.CreateCamera(ecs)

	spawn := systems.RestoreGameProgress(ecs, saved)
	factory.CreatePlayer(ecs, spawn)
	systems.SnapCamera(ecs, spawn)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(levelEntry)
		levelData.DeathsAtEntry = systems.GetOrCreateProgress(ecs).Deaths
		systems.LoadBestClear(levelData)
	}

	if w := ps.opts.Tuning; w != nil {
		entry := ecs.World.Entry(ecs.World.Create(components.Tuning))
		components.Tuning.SetValue(entry, components.TuningData{
			Updates: w.Params,
			Errors:  w.Errors,
		})
	}

	ps.ecs = ecs
	log.Info("level loaded", "level", name, "spawn_x", spawn.X, "spawn_y", spawn.Y)
	return nil
}

// startLevel picks the explicit level, then the saved one, then the first.
func startLevel(loader *assets.LevelLoader, requested string, saved *systems.SavedGameProgress) string {
	if requested != "" {
		return requested
	}
	if saved != nil && loader.Index(saved.Level) >= 0 {
		return saved.Level
	}
	return loader.Names()[0]
}
