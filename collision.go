package region

import (
	"errors"
	"fmt"
)

// GID flag bits (same convention as Tiled TMX format). Flipped tiles collide
// like unflipped ones, so the bits are masked off before the solid test.
const (
	tileFlipH    uint32 = 1 << 31 // horizontal flip
	tileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	tileFlagMask uint32 = tileFlipH | tileFlipV | tileFlipD
)

var (
	// ErrGridSize is returned when tile data does not match the grid size.
	ErrGridSize = errors.New("tile data does not match grid size")
	// ErrTileSize is returned for non-positive tile dimensions.
	ErrTileSize = errors.New("tile size must be positive")
)

// LayerConfig configures a CollisionLayer.
type LayerConfig struct {
	// Tile dimensions in pixels, used by PaintTile and EraseTile.
	// Default 16x16.
	TileWidth  int32
	TileHeight int32
}

// CollisionLayer is a named pixel-precision collision layer. It owns a
// Region and maps editor actions onto it: painting adds, erasing subtracts
// and toggling xors.
type CollisionLayer struct {
	Name string

	// Enabled layers take part in CollisionMap queries. Default true.
	Enabled bool

	region     Region
	tileWidth  int32
	tileHeight int32
}

// NewCollisionLayer creates a layer from persisted rectangles. The list is
// taken as-is; loaders must drop degenerate rectangles beforehand.
func NewCollisionLayer(name string, rects []Rectangle, cfg LayerConfig) *CollisionLayer {
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = 16
	}
	if cfg.TileHeight <= 0 {
		cfg.TileHeight = 16
	}
	l := &CollisionLayer{
		Name:       name,
		Enabled:    true,
		tileWidth:  cfg.TileWidth,
		tileHeight: cfg.TileHeight,
	}
	l.region.rects = append(l.region.rects, rects...)
	return l
}

// Region returns the layer's region for direct queries and edits.
func (l *CollisionLayer) Region() *Region {
	return &l.region
}

// Rectangles returns the layer's rectangles for serialization.
func (l *CollisionLayer) Rectangles() []Rectangle {
	return l.region.Data()
}

// Paint marks r as solid.
func (l *CollisionLayer) Paint(r Rectangle) {
	if r.IsValid() {
		l.region.Add(r)
	}
}

// Erase clears r.
func (l *CollisionLayer) Erase(r Rectangle) {
	l.region.Subtract(r)
}

// Toggle flips r: solid pixels inside it become empty and the rest solid.
func (l *CollisionLayer) Toggle(r Rectangle) {
	if r.IsValid() {
		l.region.Xor(r)
	}
}

// PaintTile marks the tile at (col, row) as solid.
func (l *CollisionLayer) PaintTile(col, row int32) {
	l.Paint(l.tileRect(col, row))
}

// EraseTile clears the tile at (col, row).
func (l *CollisionLayer) EraseTile(col, row int32) {
	l.Erase(l.tileRect(col, row))
}

func (l *CollisionLayer) tileRect(col, row int32) Rectangle {
	return Rectangle{
		X:      col * l.tileWidth,
		Y:      row * l.tileHeight,
		Width:  l.tileWidth,
		Height: l.tileHeight,
	}
}

// HitTest reports whether the world point (x, y) is solid.
func (l *CollisionLayer) HitTest(x, y float64) bool {
	return HitRegion{Region: &l.region}.Contains(x, y)
}

// Overlaps reports whether any solid pixel lies inside r.
func (l *CollisionLayer) Overlaps(r Rectangle) bool {
	return l.region.Intersects(r)
}

// Blocks reports whether every pixel of r is solid.
func (l *CollisionLayer) Blocks(r Rectangle) bool {
	return l.region.Contains(r)
}

// SolidArea returns the number of solid pixels.
func (l *CollisionLayer) SolidArea() int64 {
	return l.region.Area()
}

// FromTileGrid converts a row-major grid of tile GIDs into collision
// rectangles. Any non-zero GID is solid. Horizontal runs of solid tiles
// become one rectangle, and identical runs on consecutive rows are merged
// downward, so the result is disjoint.
func FromTileGrid(data []uint32, w, h int, tileW, tileH int32) ([]Rectangle, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("from tile grid: %dx%d: %w", tileW, tileH, ErrTileSize)
	}
	if w < 0 || h < 0 || len(data) != w*h {
		return nil, fmt.Errorf("from tile grid: %d tiles for %dx%d: %w", len(data), w, h, ErrGridSize)
	}

	type span struct{ start, end int }
	var out []Rectangle
	open := make(map[span]int)
	for row := 0; row < h; row++ {
		next := make(map[span]int, len(open))
		rowOffset := row * w
		for col := 0; col < w; {
			if data[rowOffset+col]&^tileFlagMask == 0 {
				col++
				continue
			}
			start := col
			for col < w && data[rowOffset+col]&^tileFlagMask != 0 {
				col++
			}
			s := span{start, col}
			if idx, ok := open[s]; ok {
				out[idx].Height += tileH
				next[s] = idx
				continue
			}
			out = append(out, Rectangle{
				X:      int32(start) * tileW,
				Y:      int32(row) * tileH,
				Width:  int32(col-start) * tileW,
				Height: tileH,
			})
			next[s] = len(out) - 1
		}
		open = next
	}
	return out, nil
}

// CollisionMap is an ordered stack of collision layers. Later layers are on
// top for hit-testing.
type CollisionMap struct {
	layers []*CollisionLayer
	shapes []HitShape
}

// NewCollisionMap creates an empty collision map.
func NewCollisionMap() *CollisionMap {
	return &CollisionMap{}
}

// AddLayer creates a layer from persisted rectangles and pushes it on top.
func (m *CollisionMap) AddLayer(name string, rects []Rectangle, cfg LayerConfig) *CollisionLayer {
	l := NewCollisionLayer(name, rects, cfg)
	m.layers = append(m.layers, l)
	return l
}

// AddTileLayer builds a layer from tile data (see FromTileGrid) and pushes it
// on top.
func (m *CollisionMap) AddTileLayer(name string, data []uint32, w, h int, cfg LayerConfig) (*CollisionLayer, error) {
	l := NewCollisionLayer(name, nil, cfg)
	rects, err := FromTileGrid(data, w, h, l.tileWidth, l.tileHeight)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", name, err)
	}
	l.region.rects = rects
	m.layers = append(m.layers, l)
	return l, nil
}

// Layers returns the layers bottom to top.
func (m *CollisionMap) Layers() []*CollisionLayer {
	return m.layers
}

// Layer returns the first layer with the given name, or nil.
func (m *CollisionMap) Layer(name string) *CollisionLayer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// RemoveLayer removes the first layer with the given name and reports
// whether one was found.
func (m *CollisionMap) RemoveLayer(name string) bool {
	for i, l := range m.layers {
		if l.Name == name {
			copy(m.layers[i:], m.layers[i+1:])
			m.layers[len(m.layers)-1] = nil
			m.layers = m.layers[:len(m.layers)-1]
			return true
		}
	}
	return false
}

// HitTest returns the topmost enabled layer that is solid at (x, y), or nil.
func (m *CollisionMap) HitTest(x, y float64) *CollisionLayer {
	m.shapes = m.shapes[:0]
	for _, l := range m.layers {
		if !l.Enabled {
			m.shapes = append(m.shapes, nil)
			continue
		}
		m.shapes = append(m.shapes, HitRegion{Region: &l.region})
	}
	if i := hitTest(m.shapes, x, y); i >= 0 {
		return m.layers[i]
	}
	return nil
}

// Overlapping returns the enabled layers with solid pixels inside r, bottom
// to top.
func (m *CollisionMap) Overlapping(r Rectangle) []*CollisionLayer {
	var out []*CollisionLayer
	for _, l := range m.layers {
		if l.Enabled && l.Overlaps(r) {
			out = append(out, l)
		}
	}
	return out
}
