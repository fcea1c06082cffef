package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// scanlineSrc darkens every other screen row.
var scanlineSrc = []byte(`//kage:unit pixels

package main

var Strength float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	line := mod(floor(dst.y), 2)
	return vec4(c.rgb*(1-Strength*line), c.a)
}
`)

var (
	// ScanlineShader gives the framebuffer a CRT look
	ScanlineShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error
	ScanlineShader, err = ebiten.NewShader(scanlineSrc)
	if err != nil {
		return err
	}
	return nil
}
