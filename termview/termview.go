// Package termview renders a region into a terminal cell grid, for quick
// inspection of collision data over SSH or in CI logs.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/region"
)

// Options controls the world-to-cell mapping and the glyphs used.
type Options struct {
	// World coordinates shown in cell (0, 0).
	OriginX, OriginY int32

	// World pixels per cell. Default 1x1.
	CellWidth, CellHeight int32

	// Glyphs for fully covered, partly covered and empty cells.
	// Defaults '█', '▒' and ' '.
	Full, Partial, Empty rune

	Style tcell.Style
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 1
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 1
	}
	if o.Full == 0 {
		o.Full = '█'
	}
	if o.Partial == 0 {
		o.Partial = '▒'
	}
	if o.Empty == 0 {
		o.Empty = ' '
	}
	return o
}

// Coverage classifies how much of a cell a region covers.
type Coverage uint8

const (
	CoverNone    Coverage = iota // no pixel of the cell is covered
	CoverPartial                 // some pixels are covered
	CoverFull                    // every pixel is covered
)

// CellCoverage returns the coverage of the cell at (col, row).
func CellCoverage(reg *region.Region, col, row int, opts Options) Coverage {
	opts = opts.withDefaults()
	cell := region.Rectangle{
		X:      opts.OriginX + int32(col)*opts.CellWidth,
		Y:      opts.OriginY + int32(row)*opts.CellHeight,
		Width:  opts.CellWidth,
		Height: opts.CellHeight,
	}
	if cell.Width == 1 && cell.Height == 1 {
		if reg.ContainsPoint(cell.X, cell.Y) {
			return CoverFull
		}
		return CoverNone
	}
	if !reg.Intersects(cell) {
		return CoverNone
	}
	if reg.Contains(cell) {
		return CoverFull
	}
	return CoverPartial
}

// Draw fills the whole screen with the cell view of reg. The caller calls
// screen.Show.
func Draw(screen tcell.Screen, reg *region.Region, opts Options) {
	if screen == nil || reg == nil {
		return
	}
	opts = opts.withDefaults()
	w, h := screen.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := opts.Empty
			switch CellCoverage(reg, col, row, opts) {
			case CoverFull:
				ch = opts.Full
			case CoverPartial:
				ch = opts.Partial
			}
			screen.SetContent(col, row, ch, nil, opts.Style)
		}
	}
}

// Fit returns options whose cell size scales reg's bounds into a w x h grid.
func Fit(reg *region.Region, w, h int) Options {
	b := reg.Bounds()
	opts := Options{OriginX: b.X, OriginY: b.Y}
	if w > 0 {
		opts.CellWidth = (b.Width + int32(w) - 1) / int32(w)
	}
	if h > 0 {
		opts.CellHeight = (b.Height + int32(h) - 1) / int32(h)
	}
	return opts.withDefaults()
}
