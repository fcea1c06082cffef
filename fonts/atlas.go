package fonts

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII starting at 32, sixteen glyphs per row.
const (
	FirstGlyph   = 32
	LastGlyph    = 127
	AtlasColumns = 16
	AtlasRows    = (LastGlyph - FirstGlyph + 1) / AtlasColumns
)

// GlyphRect returns the atlas cell holding r. Runes outside the atlas map
// to the '?' cell.
func GlyphRect(r rune, cellW, cellH int) image.Rectangle {
	code := int(r)
	if code < FirstGlyph || code > LastGlyph {
		code = '?'
	}
	cx := code % AtlasColumns
	cy := code/AtlasColumns - FirstGlyph/AtlasColumns
	return image.Rect(cx*cellW, cy*cellH, (cx+1)*cellW, (cy+1)*cellH)
}

// BuildAtlas rasterizes the printable ASCII range of a TrueType font into a
// white-on-transparent grid of cellW x cellH cells.
func BuildAtlas(ttf []byte, cellW, cellH int, size float64) (*image.RGBA, error) {
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("invalid cell size %dx%d", cellW, cellH)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, AtlasColumns*cellW, AtlasRows*cellH))
	m := face.Metrics()
	baseline := (cellH + m.Ascent.Round() - m.Descent.Round()) / 2

	for code := FirstGlyph; code <= LastGlyph; code++ {
		r := rune(code)
		cell := GlyphRect(r, cellW, cellH)
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		x := cell.Min.X + (cellW-adv.Round())/2
		d := &font.Drawer{
			Dst:  img.SubImage(cell).(draw.Image),
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(x, cell.Min.Y+baseline),
		}
		d.DrawString(string(r))
	}
	return img, nil
}
