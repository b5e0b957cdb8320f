// Package fonts parses the Go font family once and hands out faces by name.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

// Get returns the x/image face registered under f. It panics if Load has not
// registered it.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the registered face for ebiten's text/v2 and ebitenui.
func (f FontName) Face() text.Face {
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	textFaces[f] = tf
	return tf
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// Load registers every face the overlays use.
func Load() error {
	sizes := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 12},
		{Small, goregular.TTF, 10},
		{Bold, gobold.TTF, 14},
		{Title, gobold.TTF, 24},
	}
	for _, s := range sizes {
		if err := LoadFontWithSize(s.name, s.ttf, s.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
