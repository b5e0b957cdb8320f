package systems

import (
	"image/color"

	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/actor"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/tiles"
	"github.com/automoto/playdead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world coordinates onto the screen.
type view struct {
	offsetX, offsetY float64
	w, h             float64
}

func cameraView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offsetX: w/2 - camera.Position.X,
		offsetY: h/2 - camera.Position.Y,
		w:       w,
		h:       h,
	}, true
}

func (v view) visible(r gamemath.Rect) bool {
	x, y := r.X+v.offsetX, r.Y+v.offsetY
	return x+r.W >= 0 && y+r.H >= 0 && x <= v.w && y <= v.h
}

func (v view) fill(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X+v.offsetX), float32(r.Y+v.offsetY), float32(r.W), float32(r.H), c, false)
}

func (v view) stroke(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X+v.offsetX), float32(r.Y+v.offsetY), float32(r.W), float32(r.H), 1, c, false)
}

// DrawLevel draws the collision grid, moving tiles and trigger volumes as
// flat colours.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	v, ok := cameraView(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	l := levelData.CurrentLevel

	width, height := l.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := l.Tile(x, y)
			if tile == nil || tile.Collision == tiles.Passable || !v.visible(tile.Bounds) {
				continue
			}
			v.fill(screen, tile.Bounds, tileColor(tile.Collision))
		}
	}

	for _, tile := range l.MovingTiles() {
		if v.visible(tile.Bounds) {
			v.fill(screen, tile.Bounds, tileColor(tile.Collision))
		}
	}

	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(entry)
		r := objectRect(entry)
		if checkpoint.Activated {
			v.fill(screen, r, cfg.UI.Checkpoint)
			return
		}
		v.stroke(screen, r, cfg.UI.Checkpoint)
	})
	tags.Exit.Each(e.World, func(entry *donburi.Entry) {
		v.stroke(screen, objectRect(entry), cfg.UI.Exit)
	})
}

func tileColor(c tiles.Collision) color.Color {
	if col, ok := cfg.UI.Tiles[c.String()]; ok {
		return col
	}
	return cfg.UI.Text
}

func objectRect(entry *donburi.Entry) gamemath.Rect {
	return objectBounds(components.Object.Get(entry).Object)
}

func objectBounds(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// DrawPlayer draws the actor's collision box, squashed around its feet, with
// a marker on the side it faces.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	a := components.Player.Get(playerEntry).Actor
	squash := components.SquashStretch.Get(playerEntry)

	r := squashed(a.Bounds(), squash.ScaleX, squash.ScaleY)
	body := cfg.UI.Actor
	if !a.Alive() {
		body = cfg.UI.ActorDead
	}
	v.fill(screen, r, body)

	eye := gamemath.Rect{X: r.X + r.W - 6, Y: r.Y + 4, W: 4, H: 4}
	if a.Facing() == actor.FacingLeft {
		eye.X = r.X + 2
	}
	v.fill(screen, eye, cfg.UI.Background)
}

// squashed scales r about its bottom centre.
func squashed(r gamemath.Rect, sx, sy float64) gamemath.Rect {
	w, h := r.W*sx, r.H*sy
	return gamemath.Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Bottom() - h,
		W: w,
		H: h,
	}
}
