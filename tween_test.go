package region

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOffsetReachesTarget(t *testing.T) {
	reg := NewRegion(rects(Rectangle{10, 20, 5, 5}, Rectangle{30, 20, 5, 5}))

	g := TweenOffset(reg, 90, -20, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	want := rects(Rectangle{100, 0, 5, 5}, Rectangle{120, 0, 5, 5})
	for i, m := range reg.Data() {
		if m != want[i] {
			t.Errorf("member %d = %v, want %v", i, m, want[i])
		}
	}
	if dx, dy := g.Offset(); dx != 90 || dy != -20 {
		t.Errorf("Offset() = (%d, %d), want (90, -20)", dx, dy)
	}
}

func TestTweenOffsetMovesWholePixels(t *testing.T) {
	reg := NewRegion(rects(Rectangle{0, 0, 1, 1}))
	g := TweenOffset(reg, 10, 0, 1.0, ease.Linear)

	g.Update(0.25)
	if got := reg.Data()[0].X; got != 3 {
		t.Errorf("X = %d at quarter time, want 3 (2.5 rounded)", got)
	}
	g.Update(0.25)
	if got := reg.Data()[0].X; got != 5 {
		t.Errorf("X = %d at half time, want 5", got)
	}
	if g.Done {
		t.Fatal("should not be Done at half time")
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	reg := NewRegion(rects(Rectangle{0, 0, 4, 4}))
	g := TweenOffset(reg, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	// Complete.
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
	if got := reg.Data()[0]; got != (Rectangle{50, 50, 4, 4}) {
		t.Errorf("member = %v after overshooting update, want (50,50 4x4)", got)
	}
}

func TestTweenGroupNilRegion(t *testing.T) {
	g := TweenOffset(nil, 10, 10, 1.0, ease.Linear)
	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done for a nil region")
	}
}

func TestTweenLayerMovesCollision(t *testing.T) {
	l := NewCollisionLayer("door", rects(Rectangle{0, 0, 16, 32}), LayerConfig{})
	g := TweenLayer(l, 0, -32, 0.5, ease.InOutQuad)
	g.Update(0.25)
	g.Update(0.25)

	if l.HitTest(8, 8) {
		t.Error("door still solid at its closed position")
	}
	if !l.HitTest(8, -8) {
		t.Error("door not solid at its open position")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	regL := NewRegion(rects(Rectangle{0, 0, 1, 1}))
	regC := NewRegion(rects(Rectangle{0, 0, 1, 1}))

	gL := TweenOffset(regL, 100, 0, 1.0, ease.Linear)
	gC := TweenOffset(regC, 100, 0, 1.0, ease.OutCubic)

	// Advance to midpoint.
	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if regC.Data()[0].X <= regL.Data()[0].X {
		t.Errorf("easing curves should differ at midpoint: linear=%d cubic=%d",
			regL.Data()[0].X, regC.Data()[0].X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	reg := NewRegion(rects(Rectangle{0, 0, 1, 1}))
	g := TweenOffset(reg, 100, 100, 1.0, ease.Linear)

	// Warm up; the first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
