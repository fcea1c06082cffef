package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBeep
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
	SoundMenuError
)

// Tone is a synthesized square wave with a linear fade out
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to the tones they play
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundBeep:         {Frequency: 880, Duration: 0.12, Volume: 0.6},
			SoundMenuNavigate: {Frequency: 660, Duration: 0.03, Volume: 0.4},
			SoundMenuSelect:   {Frequency: 990, Duration: 0.06, Volume: 0.5},
			SoundMenuBack:     {Frequency: 440, Duration: 0.06, Volume: 0.5},
			SoundMenuError:    {Frequency: 110, Duration: 0.15, Volume: 0.6},
		},
	}
}
