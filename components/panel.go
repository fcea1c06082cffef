package components

import (
	"github.com/automoto/glyphterm/panel"
	"github.com/yohamta/donburi"
)

// PanelData wraps a glyph grid drawn on screen
type PanelData struct {
	Panel *panel.Panel
	Layer int // higher layers draw later
}

var Panel = donburi.NewComponentType[PanelData]()
