package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/automoto/playdead/shared/tiles"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names understood by the loader.
const (
	CollisionLayer     = "collision"
	PlayerSpawnGroup   = "PlayerSpawn"
	CheckpointGroup    = "Checkpoint"
	ExitGroup          = "Exit"
	DeadZoneGroup      = "DeadZones"
	MovingTileGroup    = "MovingTiles"
	WaterSourceGroup   = "WaterSources"
	collisionProperty  = "collision"
	defaultMoveSeconds = 2.0
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Data, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	data, err := fromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("parse TMX %s: %w", tmxPath, err)
	}
	data.Name = strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	return data, nil
}

func fromMap(levelMap *tiled.Map) (*Data, error) {
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &Data{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Cells:      make([]tiles.Collision, levelMap.Width*levelMap.Height),
	}

	if err := data.parseCollisionLayer(levelMap); err != nil {
		return nil, err
	}
	if err := data.parseObjects(levelMap); err != nil {
		return nil, err
	}
	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("no %s object", PlayerSpawnGroup)
	}
	return data, nil
}

func (d *Data) parseCollisionLayer(levelMap *tiled.Map) error {
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				// Tiles without a collision property are solid.
				collision := tiles.Impassable
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if name := tilesetTile.Properties.GetString(collisionProperty); name != "" {
						c, ok := tiles.ParseCollision(name)
						if !ok {
							return fmt.Errorf("tile %d,%d: unknown collision %q", x, y, name)
						}
						collision = c
					}
				}
				d.Cells[y*levelMap.Width+x] = collision
			}
		}
		return nil
	}
	return fmt.Errorf("no %q layer", CollisionLayer)
}

func (d *Data) parseObjects(levelMap *tiled.Map) error {
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				d.SpawnPoints = append(d.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
			sort.SliceStable(d.SpawnPoints, func(i, j int) bool {
				return d.SpawnPoints[i].Index < d.SpawnPoints[j].Index
			})
		case CheckpointGroup:
			for _, o := range og.Objects {
				d.Checkpoints = append(d.Checkpoints, area(o, o.Properties.GetInt("checkpointID")))
			}
		case ExitGroup:
			for _, o := range og.Objects {
				d.Exits = append(d.Exits, area(o, int(o.ID)))
			}
		case DeadZoneGroup:
			for _, o := range og.Objects {
				d.KillPlanes = append(d.KillPlanes, area(o, int(o.ID)))
			}
		case MovingTileGroup:
			for _, o := range og.Objects {
				m, err := movingTile(o)
				if err != nil {
					return err
				}
				d.MovingTiles = append(d.MovingTiles, m)
			}
		case WaterSourceGroup:
			for _, o := range og.Objects {
				waterLevel := 1
				if p := o.Properties.Get("level"); len(p) > 0 {
					waterLevel = o.Properties.GetInt("level")
				}
				d.WaterSources = append(d.WaterSources, WaterSourceSpawn{
					Col:   int(math.Floor(o.X / float64(d.TileWidth))),
					Row:   int(math.Floor(o.Y / float64(d.TileHeight))),
					Level: waterLevel,
				})
			}
		}
	}
	return nil
}

func area(o *tiled.Object, id int) Area {
	return Area{ID: id, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func movingTile(o *tiled.Object) (MovingTileSpawn, error) {
	collision := tiles.Impassable
	if name := o.Properties.GetString(collisionProperty); name != "" {
		c, ok := tiles.ParseCollision(name)
		if !ok {
			return MovingTileSpawn{}, fmt.Errorf("moving tile %d: unknown collision %q", o.ID, name)
		}
		collision = c
	}

	duration := o.Properties.GetFloat("duration")
	if duration <= 0 {
		duration = defaultMoveSeconds
	}

	return MovingTileSpawn{
		X:         o.X,
		Y:         o.Y,
		W:         o.Width,
		H:         o.Height,
		Collision: collision,
		DX:        o.Properties.GetFloat("dx"),
		DY:        o.Properties.GetFloat("dy"),
		Duration:  duration,
	}, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Data, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Data, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := Load(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
