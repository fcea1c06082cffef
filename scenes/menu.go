package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/glyphterm/assets"
	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/systems"
	"github.com/automoto/glyphterm/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const scanlineStrength = 0.35

// MenuScene shows the glyph panels and the cascading menu
type MenuScene struct {
	ecs      *ecs.ECS
	settings components.SettingsData
	once     sync.Once

	offscreen *ebiten.Image
}

// NewMenuScene creates a new menu scene starting from saved settings
func NewMenuScene(settings components.SettingsData) *MenuScene {
	return &MenuScene{settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	if !cfg.Debug.CRT || assets.ScanlineShader == nil {
		ms.ecs.Draw(screen)
		return
	}

	b := screen.Bounds()
	if ms.offscreen == nil || ms.offscreen.Bounds() != b {
		ms.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	ms.offscreen.Clear()
	ms.ecs.Draw(ms.offscreen)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = ms.offscreen
	op.Uniforms = map[string]interface{}{"Strength": float32(scanlineStrength)}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.ScanlineShader, op)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSettings(ms.ecs, ms.settings)
	display := systems.GetOrCreateDisplay(ms.ecs)

	if _, err := factory.CreatePanel(ms.ecs, cfg.Panel); err != nil {
		log.Printf("Warning: Could not create panel: %v", err)
	}

	status := cfg.Status
	_, ch := display.Renderer.CellSize()
	status.X = cfg.Menu.OriginX
	status.Y = float64(cfg.C.Height) - float64(status.Height)*ch - 2*cfg.Settings.OverscanMargin*cfg.C.Scale
	if _, err := factory.CreateStatusPanel(ms.ecs, status); err != nil {
		log.Printf("Warning: Could not create status panel: %v", err)
	}
	systems.ApplyFontColor(ms.ecs)

	if _, err := factory.CreateMenuStack(ms.ecs, cfg.MenuTree); err != nil {
		log.Printf("Warning: Could not create menu: %v", err)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(systems.SettingsLeaf, systems.PlaceholderLeaf))

	// Renderers (menus draw on top of panels)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawPanels)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawMenuStack)

	systems.SetMuted(ms.ecs, ms.settings.Muted)
	systems.SetStatus(ms.ecs, "%s", systems.InputHint(components.InputKeyboard))
	systems.PlaySFX(ms.ecs, cfg.SoundBeep)
}
