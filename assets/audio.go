package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes cue sounds and caches the PCM. Cues without a file
// in the sound directory get a synthesized tone instead.
type AudioLoader struct {
	sfxCache map[playstate.SoundID][]byte
	context  *audio.Context
	dir      fs.FS
}

// NewAudioLoader creates a loader. dir may be nil to use only synthesized
// tones.
func NewAudioLoader(ctx *audio.Context, dir fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[playstate.SoundID][]byte),
		context:  ctx,
		dir:      dir,
	}
}

// PreloadSFX decodes a cue and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id playstate.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a cue each time.
func (l *AudioLoader) LoadSFX(id playstate.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id playstate.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	data, err := l.decodeFile(id)
	if errors.Is(err, fs.ErrNotExist) {
		tone, ok := config.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no sound for cue %d", id)
		}
		data, err = Synthesize(tone, l.context.SampleRate()), nil
	}
	if err != nil {
		return nil, err
	}

	l.sfxCache[id] = data
	return data, nil
}

func (l *AudioLoader) decodeFile(id playstate.SoundID) ([]byte, error) {
	name, ok := config.Sound.SFXFiles[id]
	if !ok || l.dir == nil {
		return nil, fs.ErrNotExist
	}

	data, err := fs.ReadFile(l.dir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}
