package menu

import "fmt"

// Glyphs stamped next to menu items
const (
	CursorGlyph  = '*'
	SubmenuGlyph = '>'
)

const (
	borderCells = 1
	// marker + name + space + submenu marker + gap, less the name itself
	pitchExtra = 4
)

// Item is a visible child placed in its parent's grid.
type Item struct {
	Node    Handle
	Name    string
	Col     int
	Row     int
	Submenu bool
	Enabled bool
}

// Layout places the visible children of a node on a cell grid. Items fill
// rows left to right; only the rows from Scroll to Scroll+Rows are shown, at
// viewport-relative positions. Marker, name and submenu cells all derive from the same pitch, so
// the cursor marker always lines up with its item.
type Layout struct {
	Rows      int
	Cols      int
	CellWidth int
	CursorX   int
	CursorY   int
	Scroll    int
	Items     []Item
}

// Layout computes the item grid of a finalized node.
func (t *Tree) Layout(h Handle) (Layout, error) {
	n, err := t.node(h)
	if err != nil {
		return Layout{}, err
	}
	if n.dirty {
		return Layout{}, fmt.Errorf("%w: %q", ErrNotFinalized, n.name)
	}

	l := Layout{
		Rows:      n.rows,
		Cols:      n.cols,
		CellWidth: n.cellWidth,
		CursorX:   n.cursorX,
		CursorY:   n.cursorY,
		Scroll:    n.scroll,
	}
	if n.cols == 0 {
		return l, nil
	}

	i := 0
	for _, c := range n.children {
		child := t.nodes[c]
		if !child.visible {
			continue
		}
		row, col := i/n.cols-n.scroll, i%n.cols
		i++
		if row < 0 {
			continue
		}
		if row >= n.rows {
			break
		}
		l.Items = append(l.Items, Item{
			Node:    c,
			Name:    child.name,
			Col:     col,
			Row:     row,
			Submenu: !child.leaf,
			Enabled: child.enabled,
		})
	}
	return l, nil
}

// Pitch is the number of cells between two item columns.
func (l Layout) Pitch() int {
	return l.CellWidth + pitchExtra
}

// Size returns the bordered box size in cells.
func (l Layout) Size() (width, height int) {
	inner := 0
	if l.Cols > 0 {
		inner = l.Cols*l.Pitch() - 1
	}
	return inner + 2*borderCells, l.Rows + 2*borderCells
}

// MarkerCell is where the cursor marker goes for grid position (col,row).
func (l Layout) MarkerCell(col, row int) (x, y int) {
	return borderCells + col*l.Pitch(), borderCells + row
}

// NameCell is where an item name starts.
func (l Layout) NameCell(col, row int) (x, y int) {
	x, y = l.MarkerCell(col, row)
	return x + 1, y
}

// SubmenuCell is where the submenu marker of an item goes.
func (l Layout) SubmenuCell(col, row int) (x, y int) {
	x, y = l.NameCell(col, row)
	return x + l.CellWidth + 1, y
}

// CursorCell is the marker cell under the node's cursor.
func (l Layout) CursorCell() (x, y int) {
	return l.MarkerCell(l.CursorX, l.CursorY)
}

// ItemAt returns the item at grid position (col,row).
func (l Layout) ItemAt(col, row int) (Item, bool) {
	for _, it := range l.Items {
		if it.Col == col && it.Row == row {
			return it, true
		}
	}
	return Item{}, false
}
