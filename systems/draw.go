package systems

import (
	"log"
	"sort"

	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/fonts"
	"github.com/automoto/glyphterm/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDisplay returns the singleton Display component, building the
// canvas for the configured font on first use.
func GetOrCreateDisplay(e *ecs.ECS) *components.DisplayData {
	entry, ok := components.Display.First(e.World)
	if !ok {
		name := fonts.FontName(GetOrCreateSettings(e).Font)
		if !fonts.Loaded(name) {
			name = fonts.FontName(cfg.Settings.DefaultFont)
		}
		canvas := NewGlyphCanvas(name)
		entry = e.World.Entry(e.World.Create(components.Display))
		components.Display.SetValue(entry, components.DisplayData{
			Font:     name,
			Surface:  canvas,
			Renderer: render.NewRenderer(canvas, name.Get().Metrics(), cfg.C.Scale),
		})
	}
	return components.Display.Get(entry)
}

// DrawBackground fills the overscan border and the screen inside it.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateSettings(e)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	m := float32(cfg.Settings.OverscanMargin * cfg.C.Scale)

	vector.FillRect(screen, 0, 0, w, h, s.OverscanColor(), false)
	if w > 2*m && h > 2*m {
		vector.FillRect(screen, m, m, w-2*m, h-2*m, s.BackgroundColor(), false)
	}
}

// DrawPanels draws every panel, lower layers first.
func DrawPanels(e *ecs.ECS, screen *ebiten.Image) {
	d := GetOrCreateDisplay(e)
	d.Surface.Begin(screen)

	var panels []*components.PanelData
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		panels = append(panels, components.Panel.Get(entry))
	})
	sort.SliceStable(panels, func(i, j int) bool {
		return panels[i].Layer < panels[j].Layer
	})
	for _, p := range panels {
		d.Renderer.DrawPanel(p.Panel)
	}
}

// DrawMenuStack draws the open menus cascading from the configured origin.
func DrawMenuStack(e *ecs.ECS, screen *ebiten.Image) {
	m := GetMenuStack(e)
	if m == nil {
		return
	}
	d := GetOrCreateDisplay(e)
	d.Surface.Begin(screen)

	err := d.Renderer.DrawStack(
		m.Stack,
		cfg.Menu.OriginX, cfg.Menu.OriginY,
		render.Cascade{X: cfg.Menu.CascadeX, Y: cfg.Menu.CascadeY},
		menuStyle(),
		m.SlideOffset,
	)
	// Log a failing draw once rather than every frame
	if err != nil && (m.DrawError == nil || err.Error() != m.DrawError.Error()) {
		log.Printf("Warning: Could not draw menu: %v", err)
	}
	m.DrawError = err
}

func menuStyle() render.MenuStyle {
	return render.MenuStyle{
		Background: cfg.Menu.BackgroundColor,
		Border:     cfg.Menu.BorderColor,
		Text:       cfg.Menu.TextColor,
		Disabled:   cfg.Menu.DisabledColor,
		Inactive:   cfg.Menu.InactiveColor,
		Cursor:     cfg.Menu.CursorColor,
	}
}
