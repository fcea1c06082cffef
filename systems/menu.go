package systems

import (
	"errors"
	"log"
	"strings"

	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// LeafHandler runs when a menu leaf is activated. It reports whether it
// handled the node.
type LeafHandler func(e *ecs.ECS, tree *menu.Tree, node menu.Handle) bool

// GetMenuStack returns the menu stack component, or nil before one is spawned
func GetMenuStack(e *ecs.ECS) *components.MenuStackData {
	entry, ok := components.MenuStack.First(e.World)
	if !ok {
		return nil
	}
	return components.MenuStack.Get(entry)
}

// NewUpdateMenu creates the system that feeds input to the menu stack.
// Leaf activations go to the handlers in order until one accepts.
func NewUpdateMenu(handlers ...LeafHandler) ecs.System {
	return func(e *ecs.ECS) {
		m := GetMenuStack(e)
		if m == nil {
			return
		}
		input := getOrCreateInput(e)

		updateSlide(m)

		if input.LastInputMethod != m.HintMethod {
			m.HintMethod = input.LastInputMethod
			SetStatus(e, "%s", InputHint(m.HintMethod))
		}

		if GetAction(input, cfg.ActionToggleMute).JustPressed {
			if ToggleMute(e) {
				SetStatus(e, "sound off")
			} else {
				SetStatus(e, "sound on")
				PlaySFX(e, cfg.SoundBeep)
			}
		}

		if GetAction(input, cfg.ActionReset).JustPressed && m.Stack.Len() > 1 {
			m.Stack.Reset()
			m.Slide = nil
			m.SlideOffset = 0
			PlaySFX(e, cfg.SoundMenuBack)
		}

		for _, a := range PendingMenuActions(input) {
			res, err := m.Stack.Dispatch(a)
			if err != nil {
				handleMenuError(e, a, err)
				continue
			}
			handleMenuResult(e, m, res, handlers)
		}
	}
}

func updateSlide(m *components.MenuStackData) {
	if m.Slide == nil {
		return
	}
	v, done := m.Slide.Update(1 / float32(ebiten.TPS()))
	m.SlideOffset = float64(v)
	if done {
		m.Slide = nil
		m.SlideOffset = 0
	}
}

func handleMenuError(e *ecs.ECS, a menu.Action, err error) {
	PlaySFX(e, cfg.SoundMenuError)
	switch {
	case errors.Is(err, menu.ErrRootLocked):
		// Cancelling at the root is expected; the beep is enough.
	case errors.Is(err, menu.ErrDisabled):
		SetStatus(e, "unavailable")
	default:
		log.Printf("Warning: menu %s failed: %v", a, err)
	}
}

func handleMenuResult(e *ecs.ECS, m *components.MenuStackData, res menu.Result, handlers []LeafHandler) {
	switch res.Kind {
	case menu.ResultMoved:
		PlaySFX(e, cfg.SoundMenuNavigate)
	case menu.ResultEnteredSubmenu:
		PlaySFX(e, cfg.SoundMenuSelect)
		m.Slide = gween.New(float32(cfg.Menu.SlideDistance), 0, float32(cfg.Menu.SlideFrames)/float32(ebiten.TPS()), ease.OutQuad)
		m.SlideOffset = cfg.Menu.SlideDistance
	case menu.ResultCloseRequested:
		PlaySFX(e, cfg.SoundMenuBack)
		m.Slide = nil
		m.SlideOffset = 0
	case menu.ResultActivatedLeaf:
		PlaySFX(e, cfg.SoundMenuSelect)
		for _, h := range handlers {
			if h(e, m.Tree, res.Node) {
				return
			}
		}
	}

	if cfg.Debug.ShowPath {
		if top, err := m.Stack.Top(); err == nil {
			SetStatus(e, "%s", breadcrumb(m.Tree, top))
		}
	}
}

// breadcrumb joins the names below the root, e.g. "demos > plinko".
func breadcrumb(t *menu.Tree, h menu.Handle) string {
	path, err := t.Path(h)
	if err != nil || len(path) < 2 {
		return ""
	}
	return strings.Join(path[1:], " > ")
}

// SettingsLeaf cycles the palette behind a settings item.
func SettingsLeaf(e *ecs.ECS, t *menu.Tree, h menu.Handle) bool {
	n, err := t.Get(h)
	if err != nil {
		return false
	}
	label, ok := CycleSetting(e, n.ID())
	if !ok {
		return false
	}
	SetStatus(e, "%s", label)
	return true
}

// PlaceholderLeaf reports leaves that have nothing behind them yet.
func PlaceholderLeaf(e *ecs.ECS, t *menu.Tree, h menu.Handle) bool {
	SetStatus(e, "%s: not installed", breadcrumb(t, h))
	return true
}
