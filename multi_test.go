package glyphdraw

import (
	"image"
	"image/color"
	"testing"
)

func TestMultiRunSize(t *testing.T) {
	// Single-glyph runs with advances 8, 13 and 10 measure 10, 15
	// and 12 wide.
	a := NewRun("a", &fakeFont{advance: 8, ascent: 10, descent: -2, side: 4}, 12)
	b := NewRun("b", &fakeFont{advance: 13, ascent: 10, descent: -2, side: 4}, 12)
	c := NewRun("c", &fakeFont{advance: 10, ascent: 12, descent: -3, side: 4}, 12)

	m := NewMultiRun(a, b, c)

	if got := m.Width(); got != 37 {
		t.Errorf("width: expected 37, got %d", got)
	}

	// Heights are (10+2)*1.1 = 13 for a and b, (12+3)*1.1 = 16 for c.
	if got := m.Height(); got != 16 {
		t.Errorf("height: expected 16, got %d", got)
	}

	t.Run("empty multi run", func(t *testing.T) {
		m := NewMultiRun()
		if w := m.Width(); w != 0 {
			t.Errorf("width: expected 0, got %d", w)
		}
		if h := m.Height(); h != 0 {
			t.Errorf("height: expected 0, got %d", h)
		}
	})
}

func TestMultiRunDrawAnchored(t *testing.T) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}

	newRuns := func() []*Run {
		return []*Run{
			NewRun("a", &fakeFont{advance: 8, ascent: 10, descent: -2, side: 4}, 12),
			NewRun("b", &fakeFont{advance: 13, ascent: 10, descent: -2, side: 4}, 12),
			NewRun("c", &fakeFont{advance: 10, ascent: 10, descent: -2, side: 4}, 12),
		}
	}

	t.Run("runs advance by their widths", func(t *testing.T) {
		pm := NewPixmap(60, 20)
		pm.Clear(white)

		// Widths 10, 15, 12 from x = 5: runs start at 5, 15 and 30.
		// Each run's ink is a 4px square starting at its corner,
		// 6 rows down.
		rect := image.Rect(5, 0, 60, 20)
		m := NewMultiRun(newRuns()...)
		m.DrawAnchored(pm, Any(EdgeLeft, EdgeTop), rect, []color.Color{red, green, blue})

		if got := pm.GetPixel(5, 6); got != red {
			t.Errorf("first run: expected %v, got %v", red, got)
		}
		if got := pm.GetPixel(15, 6); got != green {
			t.Errorf("second run: expected %v, got %v", green, got)
		}
		if got := pm.GetPixel(30, 6); got != blue {
			t.Errorf("third run: expected %v, got %v", blue, got)
		}
		if got := pm.GetPixel(12, 6); got != white {
			t.Errorf("between runs: expected %v, got %v", white, got)
		}
	})

	t.Run("fewer colors than runs stops drawing", func(t *testing.T) {
		pm := NewPixmap(60, 20)
		pm.Clear(white)

		rect := image.Rect(5, 0, 60, 20)
		m := NewMultiRun(newRuns()...)
		m.DrawAnchored(pm, Any(EdgeLeft, EdgeTop), rect, []color.Color{red, green})

		if got := pm.GetPixel(15, 6); got != green {
			t.Errorf("second run: expected %v, got %v", green, got)
		}
		if got := pm.GetPixel(30, 6); got != white {
			t.Errorf("unpaired run: expected %v, got %v", white, got)
		}
	})

	t.Run("extra colors are ignored", func(t *testing.T) {
		pm := NewPixmap(60, 20)
		pm.Clear(white)

		rect := image.Rect(5, 0, 60, 20)
		m := NewMultiRun(newRuns()[0])
		m.DrawAnchored(pm, Any(EdgeLeft, EdgeTop), rect, []color.Color{red, green, blue})

		if got := pm.GetPixel(5, 6); got != red {
			t.Errorf("first run: expected %v, got %v", red, got)
		}
	})

	t.Run("copy variant leaves the original", func(t *testing.T) {
		pm := NewPixmap(60, 20)
		pm.Clear(white)

		rect := image.Rect(5, 0, 60, 20)
		m := NewMultiRun(newRuns()...)
		out := m.DrawAnchoredCopy(pm, Any(EdgeLeft, EdgeTop), rect, []color.Color{red, green, blue})

		if got := pm.GetPixel(5, 6); got != white {
			t.Errorf("original: expected %v, got %v", white, got)
		}
		if got := out.GetPixel(5, 6); got != red {
			t.Errorf("copy: expected %v, got %v", red, got)
		}
	})
}

func TestMultiRunCenteredUsesJointSize(t *testing.T) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}

	pm := NewPixmap(50, 20)
	pm.Clear(white)

	// Joint width 10+15 = 25 in 50px centers at x = 12; the first
	// run's ink starts there.
	a := NewRun("a", &fakeFont{advance: 8, ascent: 10, descent: -2, side: 4}, 12)
	b := NewRun("b", &fakeFont{advance: 13, ascent: 10, descent: -2, side: 4}, 12)

	m := NewMultiRun(a, b)
	m.DrawAnchored(pm, HorizontalTop(EdgeCenter), pm.Bounds(), []color.Color{red, green})

	if got := pm.GetPixel(12, 6); got != red {
		t.Errorf("first run: expected %v, got %v", red, got)
	}
	if got := pm.GetPixel(22, 6); got != green {
		t.Errorf("second run: expected %v, got %v", green, got)
	}
}
