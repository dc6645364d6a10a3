package region

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFillOptionsMapsCorners(t *testing.T) {
	cfg := OverlayConfig{OffsetX: 10, OffsetY: 20, Scale: 2}.withDefaults()
	var op ebiten.DrawImageOptions
	fillOptions(&op, Rectangle{15, 25, 4, 3}, cfg)

	tests := []struct {
		name       string
		sx, sy     float64
		wantX, wantY float64
	}{
		{"top-left", 0, 0, 10, 10},
		{"bottom-right", 1, 1, 18, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := op.GeoM.Apply(tt.sx, tt.sy)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.sx, tt.sy, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFillOptionsColor(t *testing.T) {
	cfg := OverlayConfig{Color: color.NRGBA{R: 0xff, A: 0xff}}.withDefaults()
	var op ebiten.DrawImageOptions
	fillOptions(&op, Rectangle{0, 0, 1, 1}, cfg)
	if op.ColorScale.R() != 1 || op.ColorScale.G() != 0 || op.ColorScale.A() != 1 {
		t.Errorf("ColorScale = %v, want opaque red", op.ColorScale)
	}
}

func TestOverlayDefaults(t *testing.T) {
	cfg := OverlayConfig{}.withDefaults()
	if cfg.Scale != 1 || cfg.Thickness != 1 || cfg.Color != defaultOverlayColor {
		t.Errorf("withDefaults() = %+v", cfg)
	}
}

func TestOutlineEdges(t *testing.T) {
	edges := outlineEdges(Rectangle{0, 0, 10, 6}, OverlayConfig{Thickness: 2, Scale: 1})
	reg := NewRegion(edges)
	// 10x6 minus the 6x2 interior.
	if got := reg.Area(); got != 48 {
		t.Errorf("outline area = %d, want 48", got)
	}
	if reg.ContainsPoint(5, 3) {
		t.Error("outline covers the interior")
	}
}

func TestOutlineEdgesThinMember(t *testing.T) {
	edges := outlineEdges(Rectangle{0, 0, 1, 1}, OverlayConfig{Thickness: 4, Scale: 1})
	for _, e := range edges {
		if e != (Rectangle{0, 0, 1, 1}) {
			t.Errorf("edge %v exceeds a 1x1 member", e)
		}
	}
}

func TestRegionMask(t *testing.T) {
	reg := NewRegion(rects(Rectangle{0, 0, 4, 4}, Rectangle{2, 2, 4, 4}, Rectangle{100, 100, 1, 1}))
	mask := RegionMask(reg, Rectangle{1, 1, 6, 6})

	if b := mask.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("mask bounds = %v, want 6x6", b)
	}
	var covered int64
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			on := mask.AlphaAt(x, y).A == 0xff
			if on != reg.ContainsPoint(int32(x+1), int32(y+1)) {
				t.Errorf("mask(%d, %d) = %v, disagrees with ContainsPoint", x, y, on)
			}
			if on {
				covered++
			}
		}
	}
	clipped := reg.Clone()
	clipped.Intersect(Rectangle{1, 1, 6, 6})
	if covered != clipped.Area() {
		t.Errorf("mask covers %d pixels, want %d", covered, clipped.Area())
	}
}

func TestRegionMaskImageEmpty(t *testing.T) {
	if img := RegionMaskImage(&Region{}); img != nil {
		t.Error("RegionMaskImage of an empty region should be nil")
	}
}

func TestRegionMaskImageSize(t *testing.T) {
	reg := NewRegion(rects(Rectangle{-3, 2, 5, 5}, Rectangle{4, 4, 2, 9}))
	img := RegionMaskImage(reg)
	if b := img.Bounds(); b.Dx() != 9 || b.Dy() != 11 {
		t.Errorf("mask image bounds = %v, want 9x11", b)
	}
}

func TestDrawRegionNoPanic(t *testing.T) {
	dst := ebiten.NewImage(64, 64)
	reg := NewRegion(rects(Rectangle{0, 0, 10, 10}, Rectangle{5, 5, 10, 10}))
	DrawRegion(dst, reg, OverlayConfig{})
	DrawRegion(dst, reg, OverlayConfig{Outline: true, Thickness: 2, Scale: 0.5})
	DrawRegion(nil, reg, OverlayConfig{})
	DrawRegion(dst, nil, OverlayConfig{})
}
