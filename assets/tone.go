package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/glyphterm/config"
)

const bytesPerFrame = 4 // 16-bit little endian, stereo

// SynthesizeTone renders a square wave with a linear fade out as PCM in the
// format ebiten audio players expect.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	frames := int(t.Duration * float64(sampleRate))
	if frames <= 0 || t.Frequency <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))
	period := float64(sampleRate) / t.Frequency

	buf := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		amp := vol * (1 - float64(i)/float64(frames))
		if math.Mod(float64(i), period) >= period/2 {
			amp = -amp
		}
		s := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], s)
	}
	return buf
}
