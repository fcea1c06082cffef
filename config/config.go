package config

import "image/color"

// Config holds window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	Scale  float64 // Pixel scale applied to every glyph
}

// MenuConfig contains the cascading menu layout and colors
type MenuConfig struct {
	OriginX float64
	OriginY float64

	// Offset between stacked menus, in unscaled pixels
	CascadeX float64
	CascadeY float64

	// Submenus slide in from the left by SlideDistance over SlideFrames
	SlideDistance float64
	SlideFrames   int

	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA
	DisabledColor   color.RGBA
	InactiveColor   color.RGBA
	CursorColor     color.RGBA
}

// PanelConfig describes one glyph panel placement
type PanelConfig struct {
	X, Y          float64
	Width, Height int // cells
	FontColor     color.RGBA
	EraseColor    *color.RGBA
	Boxed         bool
	Greeting      string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Mute          bool   // Start with all sound effects silenced
	ResetSettings bool   // Ignore saved settings on startup
	Font          string // Font name override
	ShowPath      bool   // Print the menu breadcrumb in the status panel
	CRT           bool   // Draw through the scanline shader
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Panel PanelConfig
var Status PanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray  = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Amber     = color.RGBA{R: 255, G: 176, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 170, A: 255}
	Sage      = color.RGBA{R: 128, G: 179, B: 128, A: 255}
	Navy      = color.RGBA{R: 20, G: 24, B: 82, A: 255}
	Plum      = color.RGBA{R: 90, G: 40, B: 90, A: 255}
	Slate     = color.RGBA{R: 40, G: 48, B: 56, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 800,
		Title:  "glyphterm",
		Scale:  2,
	}

	Menu = MenuConfig{
		OriginX:       50,
		OriginY:       50,
		CascadeX:      12,
		CascadeY:      8,
		SlideDistance: -12,
		SlideFrames:   8,

		BackgroundColor: Black,
		BorderColor:     White,
		TextColor:       White,
		DisabledColor:   DarkGray,
		InactiveColor:   Gray,
		CursorColor:     Yellow,
	}

	erase := Black
	Panel = PanelConfig{
		X:          760,
		Y:          40,
		Width:      16,
		Height:     16,
		FontColor:  Green,
		EraseColor: &erase,
		Boxed:      true,
		Greeting:   "Hello, Panel!",
	}
	// Position is filled in from the window size once the font is known.
	Status = PanelConfig{
		Width:      48,
		Height:     3,
		FontColor:  Green,
		EraseColor: &erase,
		Boxed:      true,
	}
}
