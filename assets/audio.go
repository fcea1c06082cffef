package assets

import (
	"fmt"

	cfg "github.com/automoto/glyphterm/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneLoader synthesizes and caches sound effect PCM
type ToneLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewToneLoader creates a new tone loader with the given context
func NewToneLoader(ctx *audio.Context) *ToneLoader {
	return &ToneLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect without creating a player.
func (l *ToneLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	pcm := SynthesizeTone(tone, l.context.SampleRate())
	if len(pcm) == 0 {
		return fmt.Errorf("tone for sound %d is empty", id)
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *ToneLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
