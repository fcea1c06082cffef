package menu

import (
	"fmt"
	"testing"
)

func TestLayoutSingleColumn(t *testing.T) {
	tr, root := newRoot(t)
	if err := tr.Finalize(root); err != nil {
		t.Fatal(err)
	}
	l, err := tr.Layout(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(l.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(l.Items))
	}
	for i, want := range []string{"settings", "demos", "games"} {
		it := l.Items[i]
		if it.Name != want || it.Col != 0 || it.Row != i {
			t.Errorf("item %d = %+v, want %s at (0,%d)", i, it, want, i)
		}
	}

	w, h := l.Size()
	// border + marker + "settings" + space + submenu marker + border
	if w != 1+1+8+1+1+1 || h != 4+2 {
		t.Errorf("Size = %dx%d", w, h)
	}
}

func TestLayoutGridRowMajor(t *testing.T) {
	tr := NewTree()
	root := tr.NewNode("root", 0)
	for i, name := range []string{"a", "bb", "c", "d", "e"} {
		if _, err := tr.Add(root, name, i+1); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.SetViewportSize(root, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := tr.Finalize(root); err != nil {
		t.Fatal(err)
	}
	l, err := tr.Layout(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(l.Items) != 4 {
		t.Fatalf("items = %d, want 4 (fifth is past the viewport)", len(l.Items))
	}
	it, ok := l.ItemAt(1, 0)
	if !ok || it.Name != "bb" {
		t.Errorf("ItemAt(1,0) = %+v, %v", it, ok)
	}
	it, ok = l.ItemAt(0, 1)
	if !ok || it.Name != "c" {
		t.Errorf("ItemAt(0,1) = %+v, %v", it, ok)
	}

	if l.Pitch() != 2+4 {
		t.Errorf("Pitch = %d", l.Pitch())
	}
	if x, y := l.NameCell(1, 1); x != 1+6+1 || y != 2 {
		t.Errorf("NameCell(1,1) = (%d,%d)", x, y)
	}
	if x, _ := l.SubmenuCell(0, 0); x != 1+1+2+1 {
		t.Errorf("SubmenuCell(0,0) x = %d", x)
	}
	if w, h := l.Size(); w != 2*6-1+2 || h != 4 {
		t.Errorf("Size = %dx%d", w, h)
	}
}

func TestCursorCellMatchesItemMarker(t *testing.T) {
	tr := NewTree()
	root := tr.NewNode("root", 0)
	for i := 0; i < 6; i++ {
		if _, err := tr.Add(root, string(rune('a'+i))+"item", i+1); err != nil {
			t.Fatal(err)
		}
	}
	_ = tr.SetViewportSize(root, 2, 3)
	_ = tr.Finalize(root)

	for _, pos := range [][2]int{{0, 0}, {2, 0}, {1, 1}, {2, 1}} {
		if err := tr.SetCursor(root, pos[0], pos[1]); err != nil {
			t.Fatal(err)
		}
		l, _ := tr.Layout(root)
		it, ok := l.ItemAt(pos[0], pos[1])
		if !ok {
			t.Fatalf("no item at %v", pos)
		}
		cx, cy := l.CursorCell()
		nx, ny := l.NameCell(it.Col, it.Row)
		if cx != nx-1 || cy != ny {
			t.Errorf("cursor cell (%d,%d) not beside name cell (%d,%d)", cx, cy, nx, ny)
		}
	}
}

func TestLayoutEmptyNode(t *testing.T) {
	tr := NewTree()
	h := tr.NewNode("empty", 1)
	_ = tr.SetViewportSize(h, 0, 0)
	_ = tr.Finalize(h)
	l, err := tr.Layout(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Items) != 0 {
		t.Errorf("items = %v", l.Items)
	}
	if w, hgt := l.Size(); w != 2 || hgt != 2 {
		t.Errorf("Size = %dx%d, want 2x2", w, hgt)
	}
}

func TestScrollBringsHiddenRowsIntoView(t *testing.T) {
	tr := NewTree()
	demos := tr.NewNode("demos", 102)
	names := []string{"mandelbrot", "word wrap", "matrix tetris", "pentominoes", "plinko"}
	for i, name := range names {
		if _, err := tr.Add(demos, name, 301+i); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.SetViewportSize(demos, 4, 1); err != nil {
		t.Fatal(err)
	}
	if err := tr.Finalize(demos); err != nil {
		t.Fatal(err)
	}

	l, _ := tr.Layout(demos)
	if len(l.Items) != 4 || l.Items[3].Name != "pentominoes" {
		t.Fatalf("initial items = %+v", l.Items)
	}

	for i := 0; i < 3; i++ {
		_ = tr.OnDown(demos)
	}
	res, err := tr.Apply(demos, ActionDown)
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != ResultMoved {
		t.Errorf("scrolling move kind = %v, want moved", res.Kind)
	}
	n, _ := tr.Get(demos)
	if _, y := n.Cursor(); y != 3 || n.Scroll() != 1 {
		t.Fatalf("cursor_y = %d scroll = %d, want 3 and 1", y, n.Scroll())
	}

	// No rows left below: the cursor saturates and nothing scrolls.
	if res, _ := tr.Apply(demos, ActionDown); res.Kind != ResultNone {
		t.Errorf("move past the end kind = %v, want none", res.Kind)
	}

	l, _ = tr.Layout(demos)
	if len(l.Items) != 4 || l.Items[0].Name != "word wrap" || l.Items[0].Row != 0 {
		t.Errorf("scrolled items = %+v", l.Items)
	}
	res, err = tr.OnSelect(demos)
	if err != nil || res.Kind != ResultActivatedLeaf {
		t.Fatalf("OnSelect = %+v, %v", res, err)
	}
	if n, _ := tr.Get(res.Node); n.Name() != "plinko" {
		t.Errorf("selected %q, want plinko", n.Name())
	}

	for i := 0; i < 3; i++ {
		_ = tr.OnUp(demos)
	}
	_ = tr.OnUp(demos)
	if _, y := n.Cursor(); y != 0 || n.Scroll() != 0 {
		t.Errorf("after scrolling back cursor_y = %d scroll = %d", y, n.Scroll())
	}
}

func TestFinalizeClampsScroll(t *testing.T) {
	tr := NewTree()
	root := tr.NewNode("root", 0)
	var hs []Handle
	for i := 0; i < 4; i++ {
		h, _ := tr.Add(root, fmt.Sprintf("item %d", i), i+1)
		hs = append(hs, h)
	}
	_ = tr.SetViewportSize(root, 2, 1)
	_ = tr.Finalize(root)
	for i := 0; i < 3; i++ {
		_ = tr.OnDown(root)
	}
	n, _ := tr.Get(root)
	if n.Scroll() != 2 {
		t.Fatalf("scroll = %d, want 2", n.Scroll())
	}

	_ = tr.SetVisible(hs[3], false)
	_ = tr.SetVisible(hs[2], false)
	if err := tr.Finalize(root); err != nil {
		t.Fatal(err)
	}
	if n.Scroll() != 0 {
		t.Errorf("scroll = %d after hiding rows, want 0", n.Scroll())
	}
}
