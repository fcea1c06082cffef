package components

import (
	"github.com/automoto/glyphterm/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuStackData holds the menu tree, the open menus and the slide-in
// animation of the newest one.
type MenuStackData struct {
	Tree  *menu.Tree
	Root  menu.Handle
	Stack *menu.Stack

	Slide       *gween.Tween // nil when no menu is animating
	SlideOffset float64      // unscaled pixels added to the top menu's x

	// HintMethod is the input device the status hint was written for.
	HintMethod InputMethod
	DrawError  error // from the most recent draw
}

var MenuStack = donburi.NewComponentType[MenuStackData]()
