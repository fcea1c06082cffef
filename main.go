package main

import (
	"flag"
	"log"

	"github.com/automoto/glyphterm/assets"
	"github.com/automoto/glyphterm/components"
	"github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/fonts"
	"github.com/automoto/glyphterm/scenes"
	"github.com/automoto/glyphterm/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(settings components.SettingsData) *Game {
	return &Game{
		scene: scenes.NewMenuScene(settings),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadFonts builds every configured atlas. Only a missing default is fatal.
func loadFonts() error {
	for _, f := range config.Settings.Fonts {
		if err := fonts.LoadMono(fonts.FontName(f.Name), f.CellWidth, f.CellHeight, f.Size); err != nil {
			if f.Name == config.Settings.DefaultFont {
				return err
			}
			log.Printf("Warning: Could not load font %s: %v", f.Name, err)
		}
	}
	return nil
}

func main() {
	flag.StringVar(&config.Debug.Font, "font", "", "glyph font: a2 or nes")
	flag.Float64Var(&config.C.Scale, "scale", config.C.Scale, "pixel scale for glyphs")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "start with sound effects off")
	flag.BoolVar(&config.Debug.ResetSettings, "reset-settings", false, "discard saved settings")
	flag.BoolVar(&config.Debug.ShowPath, "show-path", false, "show the menu path in the status panel")
	flag.BoolVar(&config.Debug.CRT, "crt", false, "draw with scanlines")
	flag.Parse()

	if config.Debug.Font != "" {
		if _, ok := config.FindFont(config.Debug.Font); !ok {
			log.Fatalf("unknown font %q", config.Debug.Font)
		}
	}

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if config.Debug.ResetSettings {
		_ = systems.ClearSettings()
	}
	var saved *systems.SavedSettings
	if !config.Debug.ResetSettings {
		saved, _ = systems.LoadSettings()
	}
	settings := systems.ApplySavedSettingsGlobal(saved)
	if config.Debug.Font != "" {
		settings.Font = config.Debug.Font
	}
	if config.Debug.Mute {
		settings.Muted = true
	}

	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
