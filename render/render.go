// Package render turns panels and open menus into glyph and rectangle draw
// calls on a host-provided Canvas.
package render

import (
	"image/color"

	"github.com/automoto/glyphterm/menu"
	"github.com/automoto/glyphterm/panel"
)

// Canvas is implemented by the host. Coordinates are in screen pixels.
type Canvas interface {
	DrawGlyph(r rune, x, y float64, clr color.Color, scale float64)
	FillRect(x, y, w, h float64, clr color.Color)
}

// Font holds the cell metrics of the glyph atlas the canvas draws from.
type Font struct {
	CellWidth  int
	CellHeight int
}

// MenuStyle colors a menu box.
type MenuStyle struct {
	Background color.Color
	Border     color.Color
	Text       color.Color
	Disabled   color.Color
	Inactive   color.Color // text and border of menus below the top
	Cursor     color.Color
}

// Renderer draws with a fixed font and scale.
type Renderer struct {
	canvas Canvas
	font   Font
	scale  float64
}

func NewRenderer(c Canvas, font Font, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{canvas: c, font: font, scale: scale}
}

func (r *Renderer) Scale() float64 { return r.scale }
func (r *Renderer) Font() Font     { return r.font }

// CellSize is the on-screen size of one cell.
func (r *Renderer) CellSize() (w, h float64) {
	return float64(r.font.CellWidth) * r.scale, float64(r.font.CellHeight) * r.scale
}

func (r *Renderer) glyph(c rune, x, y float64, col, row int, clr color.Color) {
	cw, ch := r.CellSize()
	r.canvas.DrawGlyph(c, x+float64(col)*cw, y+float64(row)*ch, clr, r.scale)
}

// DrawPanel erases the panel area when an erase color is set, then draws
// every cell.
func (r *Renderer) DrawPanel(p *panel.Panel) {
	if p.EraseColor != nil {
		cw, ch := r.CellSize()
		r.canvas.FillRect(p.X, p.Y, float64(p.Width())*cw, float64(p.Height())*ch, *p.EraseColor)
	}
	p.Each(func(col, row int, c rune) {
		r.glyph(c, p.X, p.Y, col, row, p.FontColor)
	})
}

// DrawMenu draws one node's box at (x,y). Inactive menus use the inactive
// color and show no cursor.
func (r *Renderer) DrawMenu(t *menu.Tree, h menu.Handle, x, y float64, style MenuStyle, active bool) error {
	l, err := t.Layout(h)
	if err != nil {
		return err
	}

	w, hgt := l.Size()
	cw, ch := r.CellSize()
	r.canvas.FillRect(x, y, float64(w)*cw, float64(hgt)*ch, style.Background)

	border, text := style.Border, style.Text
	if !active {
		border, text = style.Inactive, style.Inactive
	}
	r.drawBox(x, y, w, hgt, border)

	for _, it := range l.Items {
		clr := text
		if !it.Enabled {
			clr = style.Disabled
		}
		nx, ny := l.NameCell(it.Col, it.Row)
		for i, c := range []rune(it.Name) {
			r.glyph(c, x, y, nx+i, ny, clr)
		}
		if it.Submenu {
			sx, sy := l.SubmenuCell(it.Col, it.Row)
			r.glyph(menu.SubmenuGlyph, x, y, sx, sy, clr)
		}
	}

	if active && l.Rows > 0 && l.Cols > 0 {
		cx, cy := l.CursorCell()
		r.glyph(menu.CursorGlyph, x, y, cx, cy, style.Cursor)
	}
	return nil
}

func (r *Renderer) drawBox(x, y float64, w, h int, clr color.Color) {
	if w < 2 || h < 2 {
		return
	}
	for cx := 1; cx < w-1; cx++ {
		r.glyph(panel.BoxHorizontal, x, y, cx, 0, clr)
		r.glyph(panel.BoxHorizontal, x, y, cx, h-1, clr)
	}
	for cy := 1; cy < h-1; cy++ {
		r.glyph(panel.BoxVertical, x, y, 0, cy, clr)
		r.glyph(panel.BoxVertical, x, y, w-1, cy, clr)
	}
	r.glyph(panel.BoxCorner, x, y, 0, 0, clr)
	r.glyph(panel.BoxCorner, x, y, w-1, 0, clr)
	r.glyph(panel.BoxCorner, x, y, 0, h-1, clr)
	r.glyph(panel.BoxCorner, x, y, w-1, h-1, clr)
}

// Cascade is the per-level offset between stacked menus, in unscaled pixels.
type Cascade struct {
	X, Y float64
}

// Offset returns the screen position of the menu at stack depth level.
func (r *Renderer) Offset(x, y float64, c Cascade, level int) (float64, float64) {
	return x + float64(level)*c.X*r.scale, y + float64(level)*c.Y*r.scale
}

// DrawStack draws the open menus bottom to top, each shifted by the cascade.
// slide is added to the x position of the top menu while it animates in.
// Drawing stops at the first menu that cannot be laid out.
func (r *Renderer) DrawStack(s *menu.Stack, x, y float64, c Cascade, style MenuStyle, slide float64) error {
	entries := s.Entries()
	for i, h := range entries {
		mx, my := r.Offset(x, y, c, i)
		top := i == len(entries)-1
		if top {
			mx += slide * r.scale
		}
		if err := r.DrawMenu(s.Tree(), h, mx, my, style, top); err != nil {
			return err
		}
	}
	return nil
}
