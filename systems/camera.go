package systems

import (
	"math"

	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	a := components.Player.Get(playerEntry).Actor

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the actor is moving - freeze offset when idle
	velocity := a.Velocity()
	if math.Abs(velocity.X) > config.Camera.LookAheadSpeedThreshold {
		direction := math.Copysign(1, velocity.X)
		targetLookAhead := direction * config.Camera.LookAheadDistanceX * config.Camera.LookAheadMovingScale
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Follow the centre of the actor, not its feet.
	centre := a.Bounds().Center()
	targetX, targetY := clampToLevel(levelData, centre.X+camera.LookAheadX, centre.Y)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// clampToLevel keeps the view inside the level when the level is larger than
// the screen, and centres it otherwise.
func clampToLevel(levelData *components.LevelData, x, y float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth, levelHeight := levelData.CurrentLevel.PixelSize()

	x = clampAxis(x, screenWidth, levelWidth)
	y = clampAxis(y, screenHeight, levelHeight)
	return x, y
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// SnapCamera jumps the camera to p without smoothing, used after respawns
// and level changes.
func SnapCamera(e *ecs.ECS, p gamemath.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.LookAheadX = 0
	camera.Position.X, camera.Position.Y = p.X, p.Y

	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.CurrentLevel != nil {
			camera.Position.X, camera.Position.Y = clampToLevel(levelData, p.X, p.Y)
		}
	}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
