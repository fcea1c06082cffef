package components

import (
	"github.com/automoto/glyphterm/fonts"
	"github.com/automoto/glyphterm/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Surface is a render canvas retargeted at the start of every draw
type Surface interface {
	render.Canvas
	Begin(dst *ebiten.Image)
}

// DisplayData is the renderer every panel and menu draws through
type DisplayData struct {
	Font     fonts.FontName
	Surface  Surface
	Renderer *render.Renderer
}

var Display = donburi.NewComponentType[DisplayData]()
