// playdead runs a single-player platformer level set on the physics core in
// shared/.
//
// Usage:
//
//	playdead                       - Resume the saved game, or start the first level
//	playdead --level sewer         - Start a specific level
//	playdead --levels ./levels     - Load .tmx files from disk instead of the embedded set
//	playdead --tuning t.yaml --watch - Overlay physics tuning and reload it on save
//	playdead records [level]       - Show the fastest clears
package main

import (
	"fmt"
	"os"

	"github.com/automoto/playdead/assets"
	"github.com/automoto/playdead/config"
	"github.com/automoto/playdead/fonts"
	"github.com/automoto/playdead/scenes"
	"github.com/automoto/playdead/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "playdead"

var (
	flagLevel  string
	flagLevels string
	flagTuning string
	flagWatch  bool
	flagDebug  bool
	flagScale  float64
	flagSounds string
	flagFresh  bool
	flagDBPath string
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A small platformer built on a tile physics core",
	Long: `Run through TMX levels with ladders, one-way platforms, rising water
and moving platforms.

Controls:
  Arrows/WASD  - Move and climb
  Space/X      - Jump (hold for height)
  Esc/P        - Pause
  R            - Restart from the last checkpoint
  F            - Raise the water
  M            - Mute
  F1           - Debug overlay
  F11          - Fullscreen`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", config.C.Level, "Level to start in (default: saved or first level)")
	rootCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of .tmx levels (default: embedded levels)")
	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to a physics tuning YAML file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlay")
	rootCmd.Flags().Float64Var(&flagScale, "scale", config.C.Scale, "Window scale")
	rootCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory of .ogg/.wav sound effects (default: synthesized)")
	rootCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore and clear saved progress")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/."+appName+"/records.db", "Path to the clear-time database")

	rootCmd.AddCommand(recordsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
		config.Debug.Enabled = true
	}
	log.SetDefault(logger)

	if flagScale > 0 {
		config.C.Scale = flagScale
	}
	config.C.Level = flagLevel
	config.C.LevelsDir = flagLevels
	config.C.TuningPath = flagTuning
	config.C.SoundDir = flagSounds

	if config.C.TuningPath != "" {
		params, err := config.LoadTuning(config.C.TuningPath, config.Physics)
		if err != nil {
			return err
		}
		config.Physics = params
		log.Info("tuning loaded", "path", config.C.TuningPath)
	}

	var watcher *config.TuningWatcher
	if flagWatch {
		if config.C.TuningPath == "" {
			return fmt.Errorf("--watch needs --tuning")
		}
		w, err := config.WatchTuning(config.C.TuningPath, config.Physics)
		if err != nil {
			return err
		}
		defer w.Close()
		watcher = w
	}

	if err := fonts.Load(); err != nil {
		return err
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if flagFresh {
		_ = systems.ClearGameProgress()
	}
	if err := systems.InitRecords(flagDBPath); err != nil {
		log.Warn("could not open records database", "err", err)
	}
	defer systems.CloseRecords()

	ebiten.SetWindowTitle(appName)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		scene: scenes.NewPlatformerScene(scenes.Options{
			Levels: assets.LevelFS(config.C.LevelsDir),
			Level:  config.C.Level,
			Resume: !flagFresh,
			Tuning: watcher,
		}),
	}
	return ebiten.RunGame(game)
}
