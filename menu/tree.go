// Package menu models a tree of named menu items and the stack of menus that
// are open on screen. Nodes live in an arena owned by Tree and are addressed
// by Handle; the Stack only stores handles.
package menu

import (
	"fmt"
	"unicode/utf8"
)

// Handle addresses a node inside a Tree.
type Handle int

// NoHandle is the parent of detached and root nodes.
const NoHandle Handle = -1

// Node is one menu entry. Fields are only changed through Tree methods.
type Node struct {
	name    string
	id      int
	enabled bool
	visible bool
	leaf    bool

	rows  int
	cols  int
	sized bool // viewport set explicitly

	cursorX int
	cursorY int
	scroll  int // first item row shown in the viewport

	cellWidth int
	dirty     bool

	parent   Handle
	children []Handle
	byName   map[string]Handle
}

func (n *Node) Name() string   { return n.name }
func (n *Node) ID() int        { return n.id }
func (n *Node) Enabled() bool  { return n.enabled }
func (n *Node) Visible() bool  { return n.visible }
func (n *Node) IsLeaf() bool   { return n.leaf }
func (n *Node) Parent() Handle { return n.parent }

// Dirty reports whether the node needs Finalize before it can be laid out.
func (n *Node) Dirty() bool { return n.dirty }

// CellWidth is the widest visible child name, as of the last Finalize.
func (n *Node) CellWidth() int { return n.cellWidth }

// Viewport returns the number of item rows and columns on display.
func (n *Node) Viewport() (rows, cols int) { return n.rows, n.cols }

// Cursor returns the local navigation cursor.
func (n *Node) Cursor() (x, y int) { return n.cursorX, n.cursorY }

// Scroll returns the item row shown at the top of the viewport.
func (n *Node) Scroll() int { return n.scroll }

// Children returns the child handles in insertion order.
func (n *Node) Children() []Handle {
	out := make([]Handle, len(n.children))
	copy(out, n.children)
	return out
}

// Tree owns every node. A node belongs to at most one parent and the parent
// links never form a cycle.
type Tree struct {
	nodes []*Node
}

func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the arena, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the first node created, or NoHandle for an empty tree.
func (t *Tree) Root() Handle {
	if len(t.nodes) == 0 {
		return NoHandle
	}
	return 0
}

// NewNode creates a detached leaf node.
func (t *Tree) NewNode(name string, id int) Handle {
	t.nodes = append(t.nodes, &Node{
		name:    name,
		id:      id,
		enabled: true,
		visible: true,
		leaf:    true,
		parent:  NoHandle,
		byName:  make(map[string]Handle),
	})
	return Handle(len(t.nodes) - 1)
}

// Get returns a read-only view of the node.
func (t *Tree) Get(h Handle) (*Node, error) {
	return t.node(h)
}

func (t *Tree) node(h Handle) (*Node, error) {
	if h < 0 || int(h) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return t.nodes[h], nil
}

// AddChild attaches child below parent. A name already used by a sibling is
// rejected and leaves both nodes untouched.
func (t *Tree) AddChild(parent, child Handle) error {
	p, err := t.node(parent)
	if err != nil {
		return err
	}
	c, err := t.node(child)
	if err != nil {
		return err
	}
	if c.parent != NoHandle {
		return fmt.Errorf("%w: %q", ErrAlreadyAttached, c.name)
	}
	for h := parent; h != NoHandle; h = t.nodes[h].parent {
		if h == child {
			return fmt.Errorf("%w: %q below %q", ErrCycle, c.name, p.name)
		}
	}
	if _, ok := p.byName[c.name]; ok {
		return fmt.Errorf("%w: %q in %q", ErrNameCollision, c.name, p.name)
	}

	p.children = append(p.children, child)
	p.byName[c.name] = child
	p.leaf = false
	p.dirty = true
	c.parent = parent
	return nil
}

// Add creates a node and attaches it below parent.
func (t *Tree) Add(parent Handle, name string, id int) (Handle, error) {
	p, err := t.node(parent)
	if err != nil {
		return NoHandle, err
	}
	if _, ok := p.byName[name]; ok {
		return NoHandle, fmt.Errorf("%w: %q in %q", ErrNameCollision, name, p.name)
	}
	h := t.NewNode(name, id)
	if err := t.AddChild(parent, h); err != nil {
		return NoHandle, err
	}
	return h, nil
}

// FindChildByName looks up a direct child.
func (t *Tree) FindChildByName(h Handle, name string) (Handle, error) {
	n, err := t.node(h)
	if err != nil {
		return NoHandle, err
	}
	child, ok := n.byName[name]
	if !ok {
		return NoHandle, fmt.Errorf("%w: child %q of %q", ErrNotFound, name, n.name)
	}
	return child, nil
}

// FindChildByID scans the direct children of h only; grandchildren are not
// searched.
func (t *Tree) FindChildByID(h Handle, id int) (Handle, error) {
	n, err := t.node(h)
	if err != nil {
		return NoHandle, err
	}
	for _, c := range n.children {
		if t.nodes[c].id == id {
			return c, nil
		}
	}
	return NoHandle, fmt.Errorf("%w: child id %d of %q", ErrNotFound, id, n.name)
}

// SetViewportSize fixes how many item rows and columns the node displays.
// The node stops being a leaf even if it has no children yet.
func (t *Tree) SetViewportSize(h Handle, rows, cols int) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrOutOfBounds, rows, cols)
	}
	n.rows, n.cols = rows, cols
	n.sized = true
	n.leaf = false
	n.dirty = true
	n.clampCursor()
	return nil
}

func (t *Tree) SetEnabled(h Handle, enabled bool) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	n.enabled = enabled
	return nil
}

// SetVisible hides or shows a node in its parent's layout. The parent must be
// finalized again afterwards.
func (t *Tree) SetVisible(h Handle, visible bool) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	if n.visible == visible {
		return nil
	}
	n.visible = visible
	if n.parent != NoHandle {
		t.nodes[n.parent].dirty = true
	}
	return nil
}

// Finalize recomputes cached layout metrics for h and its whole subtree and
// checks that ids are unique within it. It must run after the subtree is
// built and again whenever children are added.
func (t *Tree) Finalize(h Handle) error {
	if _, err := t.node(h); err != nil {
		return err
	}
	if err := t.checkIDs(h, make(map[int]Handle)); err != nil {
		return err
	}
	t.finalize(h)
	return nil
}

// checkIDs runs before any metric changes so a rejected subtree is left as
// it was.
func (t *Tree) checkIDs(h Handle, seen map[int]Handle) error {
	n := t.nodes[h]
	if prev, ok := seen[n.id]; ok {
		return fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateID, n.id, t.nodes[prev].name, n.name)
	}
	seen[n.id] = h
	for _, c := range n.children {
		if err := t.checkIDs(c, seen); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) finalize(h Handle) {
	n := t.nodes[h]
	width := 0
	visible := 0
	for _, c := range n.children {
		child := t.nodes[c]
		if !child.visible {
			continue
		}
		visible++
		width = max(width, utf8.RuneCountInString(child.name))
	}
	n.cellWidth = width

	if !n.leaf && !n.sized {
		n.rows, n.cols = visible, 1
	}
	n.clampCursor()
	n.scroll = min(n.scroll, max(0, t.itemRows(n)-n.rows))
	n.dirty = false

	for _, c := range n.children {
		t.finalize(c)
	}
}

// itemRows is the number of grid rows the visible children fill.
func (t *Tree) itemRows(n *Node) int {
	if n.cols == 0 {
		return 0
	}
	visible := 0
	for _, c := range n.children {
		if t.nodes[c].visible {
			visible++
		}
	}
	return (visible + n.cols - 1) / n.cols
}

func (n *Node) clampCursor() {
	n.cursorX = clamp(n.cursorX, n.cols)
	n.cursorY = clamp(n.cursorY, n.rows)
}

func clamp(v, extent int) int {
	if extent <= 0 || v < 0 {
		return 0
	}
	return min(v, extent-1)
}

func (t *Tree) OnUp(h Handle) error    { return t.move(h, 0, -1) }
func (t *Tree) OnDown(h Handle) error  { return t.move(h, 0, 1) }
func (t *Tree) OnLeft(h Handle) error  { return t.move(h, -1, 0) }
func (t *Tree) OnRight(h Handle) error { return t.move(h, 1, 0) }

// move shifts the cursor one cell, saturating at the viewport edges. Moving
// past the top or bottom edge scrolls instead when more item rows lie that
// way.
func (t *Tree) move(h Handle, dx, dy int) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	y := n.cursorY + dy
	switch {
	case y < 0 && n.scroll > 0:
		n.scroll--
	case n.rows > 0 && y >= n.rows && n.scroll+n.rows < t.itemRows(n):
		n.scroll++
	}
	n.cursorX = clamp(n.cursorX+dx, n.cols)
	n.cursorY = clamp(y, n.rows)
	return nil
}

// SetCursor places the cursor directly.
func (t *Tree) SetCursor(h Handle, x, y int) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	if x < 0 || x >= n.cols || y < 0 || y >= n.rows {
		return fmt.Errorf("%w: cursor (%d,%d) in %dx%d viewport of %q", ErrOutOfBounds, x, y, n.cols, n.rows, n.name)
	}
	n.cursorX, n.cursorY = x, y
	return nil
}

// OnSelect reports which child sits under the cursor and whether it opens a
// submenu or is an actionable leaf.
func (t *Tree) OnSelect(h Handle) (Result, error) {
	l, err := t.Layout(h)
	if err != nil {
		return Result{}, err
	}
	item, ok := l.ItemAt(l.CursorX, l.CursorY)
	if !ok {
		return Result{}, fmt.Errorf("%w: no item at (%d,%d) of %q", ErrNotFound, l.CursorX, l.CursorY, t.nodes[h].name)
	}
	if !item.Enabled {
		return Result{}, fmt.Errorf("%w: %q", ErrDisabled, item.Name)
	}
	if item.Submenu {
		return Result{Kind: ResultEnteredSubmenu, Node: item.Node}, nil
	}
	return Result{Kind: ResultActivatedLeaf, Node: item.Node}, nil
}

// OnCancel asks the caller to close h.
func (t *Tree) OnCancel(h Handle) (Result, error) {
	if _, err := t.node(h); err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultCloseRequested, Node: h}, nil
}

// Apply routes an action to the matching handler of h.
func (t *Tree) Apply(h Handle, a Action) (Result, error) {
	var move func(Handle) error
	switch a {
	case ActionUp:
		move = t.OnUp
	case ActionDown:
		move = t.OnDown
	case ActionLeft:
		move = t.OnLeft
	case ActionRight:
		move = t.OnRight
	case ActionSelect:
		return t.OnSelect(h)
	case ActionCancel:
		return t.OnCancel(h)
	default:
		return Result{}, fmt.Errorf("menu: unknown action %d", a)
	}

	n, err := t.node(h)
	if err != nil {
		return Result{}, err
	}
	x, y, scroll := n.cursorX, n.cursorY, n.scroll
	if err := move(h); err != nil {
		return Result{}, err
	}
	if n.cursorX == x && n.cursorY == y && n.scroll == scroll {
		return Result{Kind: ResultNone, Node: h}, nil
	}
	return Result{Kind: ResultMoved, Node: h}, nil
}

// Path returns the names from the topmost ancestor down to h.
func (t *Tree) Path(h Handle) ([]string, error) {
	if _, err := t.node(h); err != nil {
		return nil, err
	}
	var path []string
	for ; h != NoHandle; h = t.nodes[h].parent {
		path = append(path, t.nodes[h].name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
