package region

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup slides a Region by an integer offset over time, for moving
// platforms and doors. Call Update(dt) each frame; the eased offset is
// rounded to whole pixels and applied with Region.Move, so the region only
// ever holds integer coordinates.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens  [2]*gween.Tween
	applied [2]int32
	target  *Region
	Done    bool
}

// Update advances both tweens by dt seconds and moves the region by the
// whole-pixel change since the previous call.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil {
		g.Done = true
		return
	}

	allDone := true
	var step [2]int32
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		off := int32(math.Round(float64(val)))
		step[i] = off - g.applied[i]
		g.applied[i] = off
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if step[0] != 0 || step[1] != 0 {
		g.target.Move(step[0], step[1])
	}
}

// Offset returns the total offset applied so far.
func (g *TweenGroup) Offset() (dx, dy int32) {
	return g.applied[0], g.applied[1]
}

// TweenOffset creates a TweenGroup that moves reg by (dx, dy) over the
// specified duration using the easing function.
func TweenOffset(reg *Region, dx, dy int32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: reg}
	g.tweens[0] = gween.New(0, float32(dx), duration, fn)
	g.tweens[1] = gween.New(0, float32(dy), duration, fn)
	return g
}

// TweenLayer is TweenOffset for a collision layer.
func TweenLayer(l *CollisionLayer, dx, dy int32, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenOffset(&l.region, dx, dy, duration, fn)
}
