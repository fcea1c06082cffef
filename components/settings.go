package components

import (
	"image/color"

	cfg "github.com/automoto/glyphterm/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the palette selections made from the settings menu
type SettingsData struct {
	FontColorIndex       int
	BackgroundColorIndex int
	OverscanColorIndex   int
	Font                 string
	Muted                bool
}

// FontColor returns the selected glyph color.
func (s *SettingsData) FontColor() color.RGBA {
	return pick(cfg.Settings.FontColors, s.FontColorIndex).Color
}

// BackgroundColor returns the selected screen color.
func (s *SettingsData) BackgroundColor() color.RGBA {
	return pick(cfg.Settings.BackgroundColors, s.BackgroundColorIndex).Color
}

// OverscanColor returns the selected border color.
func (s *SettingsData) OverscanColor() color.RGBA {
	return pick(cfg.Settings.OverscanColors, s.OverscanColorIndex).Color
}

func pick(p []cfg.Palette, i int) cfg.Palette {
	if len(p) == 0 {
		return cfg.Palette{}
	}
	if i < 0 || i >= len(p) {
		i = 0
	}
	return p[i]
}

var Settings = donburi.NewComponentType[SettingsData]()
