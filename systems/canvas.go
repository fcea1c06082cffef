package systems

import (
	"image/color"

	"github.com/automoto/glyphterm/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// atlasImages caches one GPU image per loaded font
var atlasImages = map[fonts.FontName]*ebiten.Image{}

// GlyphCanvas draws atlas glyphs and filled rectangles onto an ebiten image.
type GlyphCanvas struct {
	dst    *ebiten.Image
	font   *fonts.BitmapFont
	atlas  *ebiten.Image
	glyphs map[rune]*ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewGlyphCanvas binds a canvas to a loaded font.
func NewGlyphCanvas(name fonts.FontName) *GlyphCanvas {
	f := name.Get()
	atlas, ok := atlasImages[name]
	if !ok {
		atlas = ebiten.NewImageFromImage(f.Atlas)
		atlasImages[name] = atlas
	}
	return &GlyphCanvas{
		font:   f,
		atlas:  atlas,
		glyphs: make(map[rune]*ebiten.Image),
	}
}

// Begin sets the image subsequent draws land on.
func (c *GlyphCanvas) Begin(dst *ebiten.Image) {
	c.dst = dst
}

func (c *GlyphCanvas) glyph(r rune) *ebiten.Image {
	if g, ok := c.glyphs[r]; ok {
		return g
	}
	g := c.atlas.SubImage(c.font.Glyph(r)).(*ebiten.Image)
	c.glyphs[r] = g
	return g
}

func (c *GlyphCanvas) DrawGlyph(r rune, x, y float64, clr color.Color, scale float64) {
	if c.dst == nil || r == ' ' {
		return
	}
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(scale, scale)
	c.op.GeoM.Translate(x, y)
	c.op.ColorScale.Reset()
	c.op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.glyph(r), &c.op)
}

func (c *GlyphCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.dst == nil {
		return
	}
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
