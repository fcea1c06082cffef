package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	FontColorIndex       int     `json:"fontColorIndex"`
	BackgroundColorIndex int     `json:"backgroundColorIndex"`
	OverscanColorIndex   int     `json:"overscanColorIndex"`
	Font                 string  `json:"font"`
	SFXVolume            float64 `json:"sfxVolume"`
	Muted                bool    `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error means
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ClearSettings removes any saved settings
func ClearSettings() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	// An empty item reads back as "nothing saved"
	if err := gdataManager.SaveItem(settingsKey, nil); err != nil {
		log.Printf("Warning: Could not clear settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		FontColorIndex:       s.FontColorIndex,
		BackgroundColorIndex: s.BackgroundColorIndex,
		OverscanColorIndex:   s.OverscanColorIndex,
		Font:                 s.Font,
		SFXVolume:            globalSFXVolume,
		Muted:                s.Muted,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// and returns the initial Settings component value.
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) components.SettingsData {
	s := components.SettingsData{Font: cfg.Settings.DefaultFont}
	if saved == nil {
		return s
	}

	s.FontColorIndex = wrapIndex(saved.FontColorIndex, len(cfg.Settings.FontColors))
	s.BackgroundColorIndex = wrapIndex(saved.BackgroundColorIndex, len(cfg.Settings.BackgroundColors))
	s.OverscanColorIndex = wrapIndex(saved.OverscanColorIndex, len(cfg.Settings.OverscanColors))
	if _, ok := cfg.FindFont(saved.Font); ok {
		s.Font = saved.Font
	}
	s.Muted = saved.Muted

	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
	return s
}

// wrapIndex keeps i inside [0,n), falling back to 0.
func wrapIndex(i, n int) int {
	if n <= 0 || i < 0 || i >= n {
		return 0
	}
	return i
}
