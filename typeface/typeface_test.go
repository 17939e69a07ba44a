package typeface

import (
	"image"
	"image/color"
	"testing"
)

func TestVMetricsLineHeight(t *testing.T) {
	vm := VMetrics{Ascent: 10, Descent: -3, LineGap: 2}
	if got := vm.LineHeight(); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
}

func TestNewGlyphWithoutMask(t *testing.T) {
	g := NewGlyph(nil, 5.5, VMetrics{Ascent: 8, Descent: -2})

	if !g.Empty() {
		t.Error("expected glyph without mask to be empty")
	}
	if g.Advance != 5.5 {
		t.Errorf("advance: expected 5.5, got %v", g.Advance)
	}
	if !g.Bounds.Empty() {
		t.Errorf("expected empty bounds, got %v", g.Bounds)
	}
	if got := g.CoverageAt(0, 0); got != 0 {
		t.Errorf("expected zero coverage, got %v", got)
	}

	count := 0
	for range g.Coverage() {
		count++
	}
	if count != 0 {
		t.Errorf("expected no coverage samples, got %d", count)
	}
}

func TestNewGlyphEmptyMask(t *testing.T) {
	mask := image.NewAlpha(image.Rect(3, 3, 3, 3))
	g := NewGlyph(mask, 4, VMetrics{})

	if !g.Empty() {
		t.Error("expected glyph with empty mask rect to be empty")
	}
}

func TestGlyphCoverageAt(t *testing.T) {
	// 3x3 mask away from the origin: coverage coordinates are local.
	mask := image.NewAlpha(image.Rect(2, 3, 5, 6))
	mask.SetAlpha(2, 3, color.Alpha{A: 255})
	mask.SetAlpha(4, 5, color.Alpha{A: 128})

	g := NewGlyph(mask, 4, VMetrics{Ascent: 6, Descent: -2})

	if g.Empty() {
		t.Fatal("expected non-empty glyph")
	}
	if g.Bounds != image.Rect(2, 3, 5, 6) {
		t.Fatalf("bounds: expected (2,3)-(5,6), got %v", g.Bounds)
	}

	if got := g.CoverageAt(0, 0); got != 1 {
		t.Errorf("full sample: expected 1, got %v", got)
	}
	if got := g.CoverageAt(2, 2); got != float32(128)/255 {
		t.Errorf("partial sample: expected %v, got %v", float32(128)/255, got)
	}
	if got := g.CoverageAt(1, 1); got != 0 {
		t.Errorf("clear sample: expected 0, got %v", got)
	}

	// Samples outside the mask read as zero.
	if got := g.CoverageAt(-1, 0); got != 0 {
		t.Errorf("left of mask: expected 0, got %v", got)
	}
	if got := g.CoverageAt(3, 0); got != 0 {
		t.Errorf("right of mask: expected 0, got %v", got)
	}
}

func TestGlyphCoverageIterates(t *testing.T) {
	mask := image.NewAlpha(image.Rect(2, 3, 5, 6))
	mask.SetAlpha(2, 3, color.Alpha{A: 255})
	mask.SetAlpha(4, 5, color.Alpha{A: 128})

	g := NewGlyph(mask, 4, VMetrics{})

	t.Run("visits every sample once", func(t *testing.T) {
		seen := make(map[image.Point]float32)
		for pt, cov := range g.Coverage() {
			if _, dup := seen[pt]; dup {
				t.Fatalf("sample %v visited twice", pt)
			}
			seen[pt] = cov
		}

		if len(seen) != 9 {
			t.Fatalf("expected 9 samples, got %d", len(seen))
		}
		if seen[image.Pt(0, 0)] != 1 {
			t.Errorf("sample (0,0): expected 1, got %v", seen[image.Pt(0, 0)])
		}
		if seen[image.Pt(2, 2)] != float32(128)/255 {
			t.Errorf("sample (2,2): expected %v, got %v", float32(128)/255, seen[image.Pt(2, 2)])
		}
		if seen[image.Pt(1, 1)] != 0 {
			t.Errorf("sample (1,1): expected 0, got %v", seen[image.Pt(1, 1)])
		}
	})

	t.Run("matches CoverageAt", func(t *testing.T) {
		for pt, cov := range g.Coverage() {
			if at := g.CoverageAt(pt.X, pt.Y); at != cov {
				t.Fatalf("sample %v: Coverage yields %v, CoverageAt returns %v", pt, cov, at)
			}
		}
	})

	t.Run("stops on break", func(t *testing.T) {
		count := 0
		for range g.Coverage() {
			count++
			break
		}
		if count != 1 {
			t.Errorf("expected a single visit, got %d", count)
		}
	})
}
