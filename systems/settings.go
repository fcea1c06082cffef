package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Font:  cfg.Settings.DefaultFont,
			Muted: globalMuted,
		})
	}
	return components.Settings.Get(entry)
}

// CycleSetting advances the palette behind a settings menu item, applies it
// and saves. It reports false when id is not a settings item.
func CycleSetting(e *ecs.ECS, id int) (string, bool) {
	s := GetOrCreateSettings(e)

	var label string
	switch id {
	case cfg.MenuFontColor:
		s.FontColorIndex = cycle(s.FontColorIndex, len(cfg.Settings.FontColors))
		label = "font color: " + cfg.Settings.FontColors[s.FontColorIndex].Label
		ApplyFontColor(e)
	case cfg.MenuBackgroundColor:
		s.BackgroundColorIndex = cycle(s.BackgroundColorIndex, len(cfg.Settings.BackgroundColors))
		label = "background color: " + cfg.Settings.BackgroundColors[s.BackgroundColorIndex].Label
	case cfg.MenuOverscanColor:
		s.OverscanColorIndex = cycle(s.OverscanColorIndex, len(cfg.Settings.OverscanColors))
		label = "overscan color: " + cfg.Settings.OverscanColors[s.OverscanColorIndex].Label
	case cfg.MenuSoundVolume:
		v := nextVolume(globalSFXVolume)
		SetSFXVolume(e, v)
		label = fmt.Sprintf("sound volume: %d%%", int(v*100+0.5))
	default:
		return "", false
	}

	SaveCurrentSettings(s)
	return label, true
}

// nextVolume returns the configured volume step after v, wrapping to the
// quietest one.
func nextVolume(v float64) float64 {
	steps := cfg.Settings.Volumes
	if len(steps) == 0 {
		return v
	}
	for _, step := range steps {
		if step > v+1e-6 {
			return step
		}
	}
	return steps[0]
}

func cycle(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i + 1) % n
}

// ApplyFontColor recolors every panel with the selected font color.
func ApplyFontColor(e *ecs.ECS) {
	clr := GetOrCreateSettings(e).FontColor()
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		components.Panel.Get(entry).Panel.FontColor = clr
	})
}

// ToggleMute flips sound effects on or off and saves the choice.
func ToggleMute(e *ecs.ECS) bool {
	s := GetOrCreateSettings(e)
	s.Muted = !s.Muted
	SetMuted(e, s.Muted)
	SaveCurrentSettings(s)
	return s.Muted
}

// SetStatus replaces the text line of the status panel.
func SetStatus(e *ecs.ECS, format string, args ...interface{}) {
	entry, ok := tags.Status.First(e.World)
	if !ok {
		return
	}
	p := components.Panel.Get(entry).Panel
	if p.Width() < 3 || p.Height() < 3 {
		return
	}

	inner := p.Width() - 2
	msg := fmt.Sprintf(format, args...)
	if len([]rune(msg)) > inner {
		msg = string([]rune(msg)[:inner])
	}
	msg += strings.Repeat(" ", inner-len([]rune(msg)))

	if err := p.SetCursor(1, 1); err != nil {
		return
	}
	_, _ = p.WriteString(msg)
}
