package fonts

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestGlyphRect(t *testing.T) {
	tests := []struct {
		r    rune
		want image.Rectangle
	}{
		{' ', image.Rect(0, 0, 6, 8)},
		{'A', image.Rect(6, 16, 12, 24)},
		{'~', image.Rect(84, 40, 90, 48)},
		{'\n', image.Rect(90, 8, 96, 16)},
		{'é', image.Rect(90, 8, 96, 16)},
	}
	for _, tt := range tests {
		if got := GlyphRect(tt.r, 6, 8); got != tt.want {
			t.Errorf("GlyphRect(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func inked(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func TestBuildAtlas(t *testing.T) {
	img, err := BuildAtlas(gomono.TTF, 8, 8, 9)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16*8 || b.Dy() != 6*8 {
		t.Fatalf("atlas bounds = %v", b)
	}
	if inked(img, GlyphRect(' ', 8, 8)) {
		t.Error("space cell has ink")
	}
	for _, r := range "A#|?" {
		if !inked(img, GlyphRect(r, 8, 8)) {
			t.Errorf("cell for %q is blank", r)
		}
	}
}

func TestBuildAtlasErrors(t *testing.T) {
	if _, err := BuildAtlas([]byte("not a font"), 6, 8, 8); err == nil {
		t.Error("expected parse error")
	}
	if _, err := BuildAtlas(gomono.TTF, 0, 8, 8); err == nil {
		t.Error("expected cell size error")
	}
}

func TestRegistry(t *testing.T) {
	if err := LoadMono(A2, 6, 8, 8); err != nil {
		t.Fatal(err)
	}
	f := A2.Get()
	if m := f.Metrics(); m.CellWidth != 6 || m.CellHeight != 8 {
		t.Errorf("metrics = %+v", m)
	}
	if f.Glyph('A') != GlyphRect('A', 6, 8) {
		t.Error("Glyph disagrees with GlyphRect")
	}

	defer func() {
		if recover() == nil {
			t.Error("Get of unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
