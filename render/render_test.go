package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/automoto/glyphterm/menu"
	"github.com/automoto/glyphterm/panel"
)

type call struct {
	kind string // "glyph" or "rect"
	r    rune
	x, y float64
	w, h float64
	clr  color.Color
}

type recorder struct {
	calls []call
}

func (c *recorder) DrawGlyph(r rune, x, y float64, clr color.Color, scale float64) {
	c.calls = append(c.calls, call{kind: "glyph", r: r, x: x, y: y, clr: clr})
}

func (c *recorder) FillRect(x, y, w, h float64, clr color.Color) {
	c.calls = append(c.calls, call{kind: "rect", x: x, y: y, w: w, h: h, clr: clr})
}

func (c *recorder) glyphAt(x, y float64) (call, bool) {
	for _, cl := range c.calls {
		if cl.kind == "glyph" && cl.x == x && cl.y == y {
			return cl, true
		}
	}
	return call{}, false
}

var (
	green = color.RGBA{G: 255, A: 255}
	black = color.RGBA{A: 255}
	gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}

	testStyle = MenuStyle{
		Background: black,
		Border:     white,
		Text:       white,
		Disabled:   gray,
		Inactive:   gray,
		Cursor:     red,
	}
)

func TestDrawPanelEraseFirst(t *testing.T) {
	erase := black
	p, err := panel.New(panel.Config{X: 40, Y: 40, Width: 16, Height: 16, FontColor: green, EraseColor: &erase})
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	NewRenderer(rec, Font{CellWidth: 6, CellHeight: 8}, 2).DrawPanel(p)

	if len(rec.calls) != 1+16*16 {
		t.Fatalf("calls = %d, want %d", len(rec.calls), 1+16*16)
	}
	first := rec.calls[0]
	if first.kind != "rect" || first.x != 40 || first.y != 40 || first.w != 16*12 || first.h != 16*16 {
		t.Errorf("first call = %+v", first)
	}
	for _, c := range rec.calls[1:] {
		if c.kind != "glyph" || c.clr != green {
			t.Fatalf("unexpected call %+v", c)
		}
	}
}

func TestDrawPanelWithoutErase(t *testing.T) {
	p, _ := panel.New(panel.Config{Width: 3, Height: 2, FontColor: green})
	_, _ = p.WriteString("hey")
	rec := &recorder{}
	NewRenderer(rec, Font{CellWidth: 8, CellHeight: 8}, 1).DrawPanel(p)

	if len(rec.calls) != 6 {
		t.Fatalf("calls = %d, want 6", len(rec.calls))
	}
	if c, ok := rec.glyphAt(16, 0); !ok || c.r != 'y' {
		t.Errorf("glyph at (16,0) = %+v, %v", c, ok)
	}
}

func buildTree(t *testing.T) (*menu.Tree, menu.Handle) {
	t.Helper()
	tr, root, err := menu.Build(menu.Spec{
		Name: "root", Rows: 4, Cols: 1,
		Children: []menu.Spec{
			{Name: "settings", ID: 101, Children: []menu.Spec{{Name: "font color", ID: 201}}},
			{Name: "demos", ID: 102},
			{Name: "games", ID: 103, Disabled: true},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tr, root
}

func TestDrawMenu(t *testing.T) {
	tr, root := buildTree(t)
	rec := &recorder{}
	r := NewRenderer(rec, Font{CellWidth: 6, CellHeight: 8}, 1)

	if err := r.DrawMenu(tr, root, 0, 0, testStyle, true); err != nil {
		t.Fatal(err)
	}
	if rec.calls[0].kind != "rect" || rec.calls[0].w != 13*6 || rec.calls[0].h != 6*8 {
		t.Errorf("background = %+v", rec.calls[0])
	}

	// Name "settings" starts at cell (2,1); its submenu marker at (11,1).
	if c, ok := rec.glyphAt(2*6, 8); !ok || c.r != 's' {
		t.Errorf("name glyph = %+v, %v", c, ok)
	}
	if c, ok := rec.glyphAt(11*6, 8); !ok || c.r != menu.SubmenuGlyph {
		t.Errorf("submenu glyph = %+v, %v", c, ok)
	}
	if _, ok := rec.glyphAt(11*6, 2*8); ok {
		t.Error("leaf item has a submenu marker")
	}
	if c, ok := rec.glyphAt(2*6, 3*8); !ok || c.clr != gray {
		t.Errorf("disabled item color = %+v", c)
	}

	last := rec.calls[len(rec.calls)-1]
	if last.r != menu.CursorGlyph || last.x != 6 || last.y != 8 || last.clr != red {
		t.Errorf("cursor = %+v", last)
	}
}

func TestCursorFollowsItem(t *testing.T) {
	tr, root := buildTree(t)
	_ = tr.OnDown(root)
	rec := &recorder{}
	r := NewRenderer(rec, Font{CellWidth: 6, CellHeight: 8}, 2)
	if err := r.DrawMenu(tr, root, 10, 20, testStyle, true); err != nil {
		t.Fatal(err)
	}

	cursor := rec.calls[len(rec.calls)-1]
	name, ok := rec.glyphAt(cursor.x+12, cursor.y)
	if !ok || name.r != 'd' {
		t.Errorf("glyph right of cursor = %+v, %v; want 'd' of demos", name, ok)
	}
}

func TestDrawMenuNotFinalized(t *testing.T) {
	tr, root := buildTree(t)
	_, _ = tr.Add(root, "late", 104)
	rec := &recorder{}
	err := NewRenderer(rec, Font{CellWidth: 6, CellHeight: 8}, 1).DrawMenu(tr, root, 0, 0, testStyle, true)
	if !errors.Is(err, menu.ErrNotFinalized) {
		t.Errorf("err = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("drew %d calls for a stale menu", len(rec.calls))
	}
}

func TestDrawStackCascade(t *testing.T) {
	tr, root := buildTree(t)
	s := menu.NewStack(tr)
	_ = s.Open(root)
	if _, err := s.Dispatch(menu.ActionSelect); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	r := NewRenderer(rec, Font{CellWidth: 6, CellHeight: 8}, 2)
	if err := r.DrawStack(s, 50, 50, Cascade{X: 12, Y: 8}, testStyle, 0); err != nil {
		t.Fatal(err)
	}

	var rects []call
	for _, c := range rec.calls {
		if c.kind == "rect" {
			rects = append(rects, c)
		}
	}
	if len(rects) != 2 {
		t.Fatalf("backgrounds = %d, want 2", len(rects))
	}
	if rects[0].x != 50 || rects[0].y != 50 {
		t.Errorf("root at (%v,%v)", rects[0].x, rects[0].y)
	}
	if rects[1].x != 50+24 || rects[1].y != 50+16 {
		t.Errorf("submenu at (%v,%v), want (74,66)", rects[1].x, rects[1].y)
	}

	// Only the top menu shows a cursor.
	cursors := 0
	for _, c := range rec.calls {
		if c.kind == "glyph" && c.r == menu.CursorGlyph {
			cursors++
		}
	}
	if cursors != 1 {
		t.Errorf("cursor glyphs = %d, want 1", cursors)
	}
}
