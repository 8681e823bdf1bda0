package paint

import (
	"image"
	"testing"
)

func TestPalette_Hit(t *testing.T) {
	palette := DefaultPalette()

	tests := []struct {
		name      string
		pt        image.Point
		wantIndex int
		wantHit   bool
	}{
		{name: "red swatch", pt: image.Point{X: 100, Y: 50}, wantIndex: 0, wantHit: true},
		{name: "blue swatch", pt: image.Point{X: 400, Y: 50}, wantIndex: 1, wantHit: true},
		{name: "green swatch", pt: image.Point{X: 800, Y: 10}, wantIndex: 2, wantHit: true},
		{name: "eraser swatch", pt: image.Point{X: 1100, Y: 99}, wantIndex: 3, wantHit: true},
		{name: "below toolbar band", pt: image.Point{X: 100, Y: 100}, wantHit: false},
		{name: "between swatches", pt: image.Point{X: 300, Y: 50}, wantHit: false},
		{name: "left of first swatch", pt: image.Point{X: 20, Y: 50}, wantHit: false},
		{name: "on region boundary", pt: image.Point{X: 60, Y: 50}, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, ok := palette.Hit(tt.pt)
			if ok != tt.wantHit {
				t.Fatalf("Hit(%v) ok = %v, want %v", tt.pt, ok, tt.wantHit)
			}
			if ok && sw.HeaderIndex != tt.wantIndex {
				t.Errorf("Hit(%v) index = %d, want %d", tt.pt, sw.HeaderIndex, tt.wantIndex)
			}
		})
	}
}

func TestPalette_HitColors(t *testing.T) {
	palette := DefaultPalette()

	sw, ok := palette.Hit(image.Point{X: 100, Y: 50})
	if !ok {
		t.Fatal("expected hit on red swatch")
	}
	if sw.Color != Red {
		t.Errorf("swatch 0 color = %v, want %v", sw.Color, Red)
	}

	sw, ok = palette.Hit(image.Point{X: 1100, Y: 50})
	if !ok {
		t.Fatal("expected hit on eraser swatch")
	}
	if sw.Color != Black {
		t.Errorf("swatch 3 color = %v, want %v", sw.Color, Black)
	}
}

func TestPalette_ByIndex(t *testing.T) {
	palette := DefaultPalette()

	sw, err := palette.ByIndex(2)
	if err != nil {
		t.Fatalf("ByIndex(2) error = %v", err)
	}
	if sw.Color != Green {
		t.Errorf("swatch 2 color = %v, want %v", sw.Color, Green)
	}

	if _, err := palette.ByIndex(7); err == nil {
		t.Error("ByIndex(7) expected error for unknown index")
	}
}
