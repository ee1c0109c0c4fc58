package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// stream is what every ebiten decoder returns
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Loader handles loading and caching of audio assets
type Loader struct {
	fsys     fs.FS
	context  *audio.Context
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
}

// NewLoader creates a loader reading files from fsys
func NewLoader(ctx *audio.Context, fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		context:  ctx,
		sfxCache: make(map[string][]byte),
	}
}

func (l *Loader) decode(path string) (stream, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}

	var s stream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		s, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *Loader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	s, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect, decoding it first
// if needed.
func (l *Loader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping streaming player. Music is not cached.
func (l *Loader) LoadMusic(path string) (*audio.Player, error) {
	s, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(s, s.Length())
	return l.context.NewPlayer(loop)
}
