package region

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled into each member rectangle.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// OverlayConfig controls how DrawRegion renders collision data on top of a
// map view.
type OverlayConfig struct {
	// Color of filled members. Default translucent red.
	Color color.Color

	// World-to-screen mapping: screen = (world - Offset) * Scale.
	// Scale defaults to 1.
	OffsetX, OffsetY float64
	Scale            float64

	// Outline draws each member's border with the given thickness in screen
	// pixels instead of filling it. Overlaps stay visible this way.
	Outline   bool
	Thickness float64
}

var defaultOverlayColor = color.NRGBA{R: 0xff, G: 0x20, B: 0x20, A: 0x80}

func (cfg OverlayConfig) withDefaults() OverlayConfig {
	if cfg.Color == nil {
		cfg.Color = defaultOverlayColor
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Thickness <= 0 {
		cfg.Thickness = 1
	}
	return cfg
}

// DrawRegion draws every member of reg onto dst as a debug overlay.
func DrawRegion(dst *ebiten.Image, reg *Region, cfg OverlayConfig) {
	if dst == nil || reg == nil {
		return
	}
	cfg = cfg.withDefaults()
	var op ebiten.DrawImageOptions
	for _, m := range reg.Data() {
		if !cfg.Outline {
			fillOptions(&op, m, cfg)
			dst.DrawImage(whitePixel, &op)
			continue
		}
		for _, edge := range outlineEdges(m, cfg) {
			fillOptions(&op, edge, cfg)
			dst.DrawImage(whitePixel, &op)
		}
	}
}

// fillOptions resets op to stretch the white pixel over r in screen space.
func fillOptions(op *ebiten.DrawImageOptions, r Rectangle, cfg OverlayConfig) {
	op.GeoM.Reset()
	op.GeoM.Scale(float64(r.Width), float64(r.Height))
	op.GeoM.Translate(float64(r.X)-cfg.OffsetX, float64(r.Y)-cfg.OffsetY)
	op.GeoM.Scale(cfg.Scale, cfg.Scale)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(cfg.Color)
}

// outlineEdges returns the four border strips of m in world space. The
// thickness is converted from screen pixels and clamped to the member size.
func outlineEdges(m Rectangle, cfg OverlayConfig) []Rectangle {
	t := int32(cfg.Thickness / cfg.Scale)
	if t < 1 {
		t = 1
	}
	tw := min(t, m.Width)
	th := min(t, m.Height)
	return []Rectangle{
		{X: m.X, Y: m.Y, Width: m.Width, Height: th},
		{X: m.X, Y: m.Y + m.Height - th, Width: m.Width, Height: th},
		{X: m.X, Y: m.Y, Width: tw, Height: m.Height},
		{X: m.X + m.Width - tw, Y: m.Y, Width: tw, Height: m.Height},
	}
}

// RegionMask rasterizes the part of reg inside bounds into an alpha mask.
// Covered pixels are opaque. The mask's origin is bounds' top-left corner.
func RegionMask(reg *Region, bounds Rectangle) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, int(max(bounds.Width, 0)), int(max(bounds.Height, 0))))
	if reg == nil {
		return mask
	}
	for _, m := range reg.Data() {
		o, ok := m.Intersects(bounds)
		if !ok {
			continue
		}
		for y := o.Y; y < o.Y+o.Height; y++ {
			row := mask.PixOffset(int(o.X-bounds.X), int(y-bounds.Y))
			for i := 0; i < int(o.Width); i++ {
				mask.Pix[row+i] = 0xff
			}
		}
	}
	return mask
}

// RegionMaskImage returns RegionMask(reg, reg.Bounds()) as an ebiten image,
// usable as a node mask or shader input.
func RegionMaskImage(reg *Region) *ebiten.Image {
	b := reg.Bounds()
	if !b.IsValid() {
		return nil
	}
	return ebiten.NewImageFromImage(RegionMask(reg, b))
}
