package fonts

import (
	"fmt"
	"image"
	"log"

	"github.com/automoto/glyphterm/render"
	"golang.org/x/image/font/gofont/gomono"
)

type FontName string

const (
	A2  FontName = "a2"
	NES FontName = "nes"
)

// BitmapFont is a glyph atlas and the size of its cells.
type BitmapFont struct {
	Name       FontName
	Atlas      *image.RGBA
	CellWidth  int
	CellHeight int
}

// Metrics returns the cell size in the form the renderer expects.
func (b *BitmapFont) Metrics() render.Font {
	return render.Font{CellWidth: b.CellWidth, CellHeight: b.CellHeight}
}

// Glyph returns the atlas cell for r.
func (b *BitmapFont) Glyph(r rune) image.Rectangle {
	return GlyphRect(r, b.CellWidth, b.CellHeight)
}

func (f FontName) Get() *BitmapFont {
	return getFont(f)
}

var (
	fonts = map[FontName]*BitmapFont{}
)

// LoadMono builds an atlas from the bundled Go Mono typeface.
func LoadMono(name FontName, cellW, cellH int, size float64) error {
	return LoadFont(name, gomono.TTF, cellW, cellH, size)
}

func LoadFont(name FontName, ttf []byte, cellW, cellH int, size float64) error {
	atlas, err := BuildAtlas(ttf, cellW, cellH, size)
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	fonts[name] = &BitmapFont{
		Name:       name,
		Atlas:      atlas,
		CellWidth:  cellW,
		CellHeight: cellH,
	}
	log.Printf("Loaded font %s (%dx%d cells)", name, cellW, cellH)
	return nil
}

// Loaded reports whether name has been built.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) *BitmapFont {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
