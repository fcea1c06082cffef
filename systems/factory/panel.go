package factory

import (
	"fmt"

	"github.com/automoto/glyphterm/archetypes"
	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/panel"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePanel spawns a glyph panel, boxed and greeted as configured.
func CreatePanel(ecs *ecs.ECS, pc cfg.PanelConfig) (*donburi.Entry, error) {
	p, err := newPanel(pc)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Panel.Spawn(ecs)
	components.Panel.SetValue(entry, components.PanelData{Panel: p})
	return entry, nil
}

// CreateStatusPanel spawns the panel leaf activations report to.
func CreateStatusPanel(ecs *ecs.ECS, pc cfg.PanelConfig) (*donburi.Entry, error) {
	p, err := newPanel(pc)
	if err != nil {
		return nil, err
	}
	entry := archetypes.StatusPanel.Spawn(ecs)
	components.Panel.SetValue(entry, components.PanelData{Panel: p, Layer: 1})
	return entry, nil
}

func newPanel(pc cfg.PanelConfig) (*panel.Panel, error) {
	p, err := panel.New(panel.Config{
		X:          pc.X,
		Y:          pc.Y,
		Width:      pc.Width,
		Height:     pc.Height,
		FontColor:  pc.FontColor,
		EraseColor: pc.EraseColor,
	})
	if err != nil {
		return nil, fmt.Errorf("create panel: %w", err)
	}
	if pc.Boxed {
		if err := p.DrawBox(0, 0, pc.Width, pc.Height); err != nil {
			return nil, fmt.Errorf("box panel: %w", err)
		}
		if pc.Width > 2 && pc.Height > 2 {
			_ = p.SetCursor(1, 1)
		}
	}
	if pc.Greeting != "" {
		greeting := []rune(pc.Greeting)
		if pc.Boxed && len(greeting) > pc.Width-2 {
			greeting = greeting[:max(pc.Width-2, 0)]
		}
		if _, err := p.WriteString(string(greeting)); err != nil {
			return nil, fmt.Errorf("greet panel: %w", err)
		}
	}
	return p, nil
}
