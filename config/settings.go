package config

import "image/color"

// Palette is a named color the settings menu can cycle to
type Palette struct {
	Label string
	Color color.RGBA
}

// FontChoice is a glyph atlas the host can build at startup
type FontChoice struct {
	Name       string
	CellWidth  int
	CellHeight int
	Size       float64 // TrueType point size used to rasterize the atlas
}

// SettingsConfig contains the values the settings menu cycles through
type SettingsConfig struct {
	FontColors       []Palette
	BackgroundColors []Palette
	OverscanColors   []Palette
	OverscanMargin   float64 // unscaled pixels
	Volumes          []float64

	Fonts       []FontChoice
	DefaultFont string
	AppName     string // gdata storage namespace
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		FontColors: []Palette{
			{Label: "green", Color: Green},
			{Label: "amber", Color: Amber},
			{Label: "white", Color: White},
			{Label: "cyan", Color: Cyan},
			{Label: "light blue", Color: LightBlue},
		},
		BackgroundColors: []Palette{
			{Label: "sage", Color: Sage},
			{Label: "black", Color: Black},
			{Label: "blue", Color: Blue},
			{Label: "slate", Color: Slate},
		},
		OverscanColors: []Palette{
			{Label: "sage", Color: Sage},
			{Label: "navy", Color: Navy},
			{Label: "plum", Color: Plum},
			{Label: "black", Color: Black},
			{Label: "red", Color: Red},
		},
		OverscanMargin: 12,
		Volumes:        []float64{0.25, 0.5, 0.75, 1},

		Fonts: []FontChoice{
			{Name: "a2", CellWidth: 6, CellHeight: 8, Size: 8},
			{Name: "nes", CellWidth: 8, CellHeight: 8, Size: 9},
		},
		DefaultFont: "a2",
		AppName:     "glyphterm",
	}
}

// FindFont returns the font choice with the given name.
func FindFont(name string) (FontChoice, bool) {
	for _, f := range Settings.Fonts {
		if f.Name == name {
			return f, true
		}
	}
	return FontChoice{}, false
}
