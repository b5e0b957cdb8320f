package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/playdead/shared/level"
	"github.com/automoto/playdead/shared/leveldata"
)

//go:embed levels/*.tmx
var assetFS embed.FS

// LevelFS returns the directory levels are read from. An empty dir means the
// levels embedded in the binary.
func LevelFS(dir string) fs.FS {
	if dir == "" {
		sub, err := fs.Sub(assetFS, "levels")
		if err != nil {
			panic(err) // the embed pattern guarantees the directory
		}
		return sub
	}
	return os.DirFS(dir)
}

// LevelLoader parses TMX files once and hands out fresh playable levels.
type LevelLoader struct {
	fsys  fs.FS
	data  map[string]*leveldata.Data
	names []string
}

// NewLevelLoader parses every level in fsys.
func NewLevelLoader(fsys fs.FS) (*LevelLoader, error) {
	data, names, err := leveldata.LoadAll(fsys, ".")
	if err != nil {
		return nil, err
	}
	return &LevelLoader{fsys: fsys, data: data, names: names}, nil
}

// Names lists the levels in play order.
func (l *LevelLoader) Names() []string {
	return l.names
}

// Data returns the parsed file for a level.
func (l *LevelLoader) Data(name string) (*leveldata.Data, error) {
	d, ok := l.data[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return d, nil
}

// Load builds a fresh level. Water fill and moving tiles start from the
// file's initial state every time.
func (l *LevelLoader) Load(name string) (*level.Level, error) {
	d, err := l.Data(name)
	if err != nil {
		return nil, err
	}
	return level.FromData(d), nil
}

// Reload re-reads one level from disk, for editing levels while playing.
func (l *LevelLoader) Reload(name string) error {
	d, err := leveldata.Load(l.fsys, name+".tmx")
	if err != nil {
		return err
	}
	l.data[name] = d
	return nil
}

// Next returns the level after name, wrapping to the first.
func (l *LevelLoader) Next(name string) string {
	for i, n := range l.names {
		if n == name {
			return l.names[(i+1)%len(l.names)]
		}
	}
	return l.names[0]
}

// Index returns the play-order position of a level, or -1.
func (l *LevelLoader) Index(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return -1
}
