package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/glyphterm/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	pcm := SynthesizeTone(cfg.Tone{Frequency: 440, Duration: 0.5, Volume: 1}, 44100)
	if want := 22050 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeToneShape(t *testing.T) {
	// 100 Hz at 1000 samples/s: ten-frame period, first half positive.
	pcm := SynthesizeTone(cfg.Tone{Frequency: 100, Duration: 0.1, Volume: 1}, 1000)
	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*4:]))
	}
	right := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
	}

	if sample(0) <= 0 || sample(6) >= 0 {
		t.Errorf("samples 0 and 6 = %d, %d; want positive then negative", sample(0), sample(6))
	}
	for i := 0; i < 100; i++ {
		if sample(i) != right(i) {
			t.Fatalf("channels differ at frame %d", i)
		}
	}
	if abs(sample(90)) >= abs(sample(0)) {
		t.Errorf("tone does not fade: %d vs %d", sample(90), sample(0))
	}
}

func TestSynthesizeToneEmpty(t *testing.T) {
	if pcm := SynthesizeTone(cfg.Tone{Frequency: 0, Duration: 1}, 44100); pcm != nil {
		t.Errorf("zero frequency produced %d bytes", len(pcm))
	}
	if pcm := SynthesizeTone(cfg.Tone{Frequency: 440}, 44100); pcm != nil {
		t.Errorf("zero duration produced %d bytes", len(pcm))
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
