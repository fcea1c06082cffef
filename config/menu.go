package config

import "github.com/automoto/glyphterm/menu"

// Menu item IDs. Submenus use 1xx; leaves use the parent's digit times 100.
const (
	MenuRoot     = 0
	MenuSettings = 101
	MenuDemos    = 102
	MenuGames    = 103

	MenuFontColor       = 201
	MenuBackgroundColor = 202
	MenuOverscanColor   = 203
	MenuSoundVolume     = 204

	MenuMandelbrot   = 301
	MenuWordWrap     = 302
	MenuMatrixTetris = 303
	MenuPentominoes  = 304
	MenuPlinko       = 305

	MenuGuessANumber = 401
	MenuMancala      = 402
	MenuCheckers     = 403
	MenuChess        = 404
)

// MenuTree is the menu shown at startup
var MenuTree menu.Spec

func init() {
	MenuTree = menu.Spec{
		Name: "root", ID: MenuRoot, Rows: 4, Cols: 1,
		Children: []menu.Spec{
			{Name: "settings", ID: MenuSettings, Children: []menu.Spec{
				{Name: "font color", ID: MenuFontColor},
				{Name: "background color", ID: MenuBackgroundColor},
				{Name: "overscan color", ID: MenuOverscanColor},
				{Name: "sound volume", ID: MenuSoundVolume},
			}},
			{Name: "demos", ID: MenuDemos, Rows: 4, Cols: 1, Children: []menu.Spec{
				{Name: "mandelbrot", ID: MenuMandelbrot},
				{Name: "word wrap", ID: MenuWordWrap},
				{Name: "matrix tetris", ID: MenuMatrixTetris},
				{Name: "pentominoes", ID: MenuPentominoes},
				{Name: "plinko", ID: MenuPlinko},
			}},
			{Name: "games", ID: MenuGames, Children: []menu.Spec{
				{Name: "guess a number", ID: MenuGuessANumber},
				{Name: "mancala", ID: MenuMancala},
				{Name: "checkers", ID: MenuCheckers},
				{Name: "chess", ID: MenuChess},
			}},
		},
	}
}
