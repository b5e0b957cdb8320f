package config

import (
	"image/color"

	"github.com/automoto/playdead/shared/actor"
	"golang.org/x/image/colornames"
)

// Config is the window and content layout.
type Config struct {
	Width  int
	Height int
	Scale  float64

	// Level is the stem of the TMX file to start on. Empty resumes the saved
	// level, or starts the first one.
	Level string
	// LevelsDir is read from disk when set. Empty uses the embedded levels.
	LevelsDir string

	// TuningPath is an optional YAML file overlaid onto Physics.
	TuningPath string
	// SoundDir is an optional directory of wav/ogg cue files. Missing files
	// fall back to synthesized tones.
	SoundDir string
}

// RespawnConfig controls what happens after the actor dies.
type RespawnConfig struct {
	DelayFrames int // frames the death animation plays before respawn
}

// WaterConfig controls the debug water-raise action.
type WaterConfig struct {
	RaiseCooldownFrames int
}

// LevelCompleteConfig controls the pause between reaching an exit and
// loading the next level.
type LevelCompleteConfig struct {
	DelayFrames int
	Title       string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadMovingScale    float64
	LookAheadSpeedThreshold float64
}

// UIConfig holds the debug renderer palette.
type UIConfig struct {
	Background color.Color
	Tiles      map[string]color.Color
	Actor      color.Color
	ActorDead  color.Color
	Checkpoint color.Color
	Exit       color.Color
	KillPlane  color.Color
	Overlay    color.Color
	Text       color.Color
	HUDX       int
	HUDY       int
}

type DebugConfig struct {
	Enabled bool
}

var C *Config
var Physics actor.Params
var Respawn RespawnConfig
var Water WaterConfig
var LevelComplete LevelCompleteConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
	}

	Physics = actor.DefaultParams()

	Respawn = RespawnConfig{
		DelayFrames: 90,
	}

	Water = WaterConfig{
		RaiseCooldownFrames: 20,
	}

	LevelComplete = LevelCompleteConfig{
		DelayFrames: 120,
		Title:       "LEVEL COMPLETE",
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadMovingScale:    1.0,
		LookAheadSpeedThreshold: 20, // px/s
	}

	UI = UIConfig{
		Background: colornames.Midnightblue,
		Tiles: map[string]color.Color{
			"impassable": colornames.Slategray,
			"platform":   colornames.Burlywood,
			"ladder":     colornames.Sienna,
			"water":      colornames.Steelblue,
			"death":      colornames.Crimson,
		},
		Actor:      colornames.Gold,
		ActorDead:  colornames.Darkred,
		Checkpoint: colornames.Limegreen,
		Exit:       colornames.Orchid,
		KillPlane:  colornames.Darkred,
		Overlay:    color.RGBA{A: 180},
		Text:       colornames.White,
		HUDX:       4,
		HUDY:       4,
	}
}
