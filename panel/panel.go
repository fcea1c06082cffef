// Package panel implements a fixed-size grid of glyph cells with a write cursor.
package panel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("panel: out of bounds")
	ErrInvalidSize = errors.New("panel: invalid size")
	// ErrTruncated is returned when a write ran past the last column. It wraps
	// ErrOutOfBounds.
	ErrTruncated = fmt.Errorf("%w: write truncated", ErrOutOfBounds)
)

// Box drawing glyphs
const (
	BoxCorner     = '+'
	BoxHorizontal = '-'
	BoxVertical   = '|'
)

// Replacement is stored for runes the glyph atlas has no cell for
const Replacement = '?'

// Config describes a panel at creation time
type Config struct {
	X, Y       float64 // Screen origin in pixels
	Width      int     // Columns
	Height     int     // Rows
	FontColor  color.RGBA
	EraseColor *color.RGBA // nil = draw glyphs only
}

// Panel is a character-cell overlay. Its dimensions never change after New.
type Panel struct {
	X, Y       float64
	FontColor  color.RGBA
	EraseColor *color.RGBA

	width  int
	height int
	cells  [][]rune

	cursorCol int // width once a write has filled the row
	cursorRow int
}

// New creates a panel filled with spaces and the cursor at (0,0).
func New(cfg Config) (*Panel, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	cells := make([][]rune, cfg.Height)
	for y := range cells {
		row := make([]rune, cfg.Width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}

	return &Panel{
		X:          cfg.X,
		Y:          cfg.Y,
		FontColor:  cfg.FontColor,
		EraseColor: cfg.EraseColor,
		width:      cfg.Width,
		height:     cfg.Height,
		cells:      cells,
	}, nil
}

func (p *Panel) Width() int  { return p.width }
func (p *Panel) Height() int { return p.height }

// Cursor returns the current write position. After a write fills the row the
// column reads as the last one.
func (p *Panel) Cursor() (col, row int) {
	return min(p.cursorCol, p.width-1), p.cursorRow
}

// PixelSize returns the on-screen size of the panel for the given cell size.
func (p *Panel) PixelSize(cellWidth, cellHeight int) (w, h float64) {
	return float64(p.width * cellWidth), float64(p.height * cellHeight)
}

func (p *Panel) inBounds(col, row int) bool {
	return col >= 0 && col < p.width && row >= 0 && row < p.height
}

// SetCursor moves the write position. The cursor is left unchanged when
// (col,row) lies outside the grid.
func (p *Panel) SetCursor(col, row int) error {
	if !p.inBounds(col, row) {
		return fmt.Errorf("%w: cursor (%d,%d) in %dx%d", ErrOutOfBounds, col, row, p.width, p.height)
	}
	p.cursorCol = col
	p.cursorRow = row
	return nil
}

// WriteString writes s into consecutive cells of the cursor row. It never
// wraps: runes that do not fit after the last column are dropped and
// ErrTruncated is returned along with the number of cells written. Once the
// row is full every further write is truncated until the cursor is moved.
func (p *Panel) WriteString(s string) (int, error) {
	row := p.cells[p.cursorRow]
	written := 0
	total := 0
	for _, r := range s {
		total++
		col := p.cursorCol + written
		if col >= p.width {
			continue
		}
		row[col] = displayable(r)
		written++
	}

	p.cursorCol += written

	if written < total {
		return written, fmt.Errorf("%w: %d of %d runes at row %d", ErrTruncated, written, total, p.cursorRow)
	}
	return written, nil
}

// PutChar writes a single cell without moving the cursor.
func (p *Panel) PutChar(col, row int, r rune) error {
	if !p.inBounds(col, row) {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfBounds, col, row)
	}
	p.cells[row][col] = displayable(r)
	return nil
}

// DrawBox stamps a border at the given cell offset. Boxes narrower or shorter
// than two cells are ignored; a box that does not fit is rejected without
// writing anything.
func (p *Panel) DrawBox(x, y, width, height int) error {
	if width < 2 || height < 2 {
		return nil
	}
	right := x + width - 1
	bottom := y + height - 1
	if !p.inBounds(x, y) || !p.inBounds(right, bottom) {
		return fmt.Errorf("%w: box (%d,%d %dx%d) in %dx%d", ErrOutOfBounds, x, y, width, height, p.width, p.height)
	}

	for cx := x + 1; cx < right; cx++ {
		p.cells[y][cx] = BoxHorizontal
		p.cells[bottom][cx] = BoxHorizontal
	}
	for cy := y + 1; cy < bottom; cy++ {
		p.cells[cy][x] = BoxVertical
		p.cells[cy][right] = BoxVertical
	}
	p.cells[y][x] = BoxCorner
	p.cells[y][right] = BoxCorner
	p.cells[bottom][x] = BoxCorner
	p.cells[bottom][right] = BoxCorner
	return nil
}

// Clear resets every cell to a space and homes the cursor.
func (p *Panel) Clear() {
	for _, row := range p.cells {
		for x := range row {
			row[x] = ' '
		}
	}
	p.cursorCol, p.cursorRow = 0, 0
}

// Cell returns the rune stored at (col,row).
func (p *Panel) Cell(col, row int) (rune, error) {
	if !p.inBounds(col, row) {
		return 0, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfBounds, col, row)
	}
	return p.cells[row][col], nil
}

// Row returns one row as a string.
func (p *Panel) Row(row int) (string, error) {
	if row < 0 || row >= p.height {
		return "", fmt.Errorf("%w: row %d", ErrOutOfBounds, row)
	}
	return string(p.cells[row]), nil
}

// Rows returns a copy of the whole buffer, one string per row.
func (p *Panel) Rows() []string {
	rows := make([]string, p.height)
	for y, row := range p.cells {
		rows[y] = string(row)
	}
	return rows
}

// Each calls fn for every cell in row-major order.
func (p *Panel) Each(fn func(col, row int, r rune)) {
	for y, row := range p.cells {
		for x, r := range row {
			fn(x, y, r)
		}
	}
}

func (p *Panel) String() string {
	return strings.Join(p.Rows(), "\n")
}

func displayable(r rune) rune {
	if r < ' ' || r > '~' {
		return Replacement
	}
	return r
}
