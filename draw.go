package glyphdraw

import (
	"image/color"

	"github.com/gogpu/glyphdraw/typeface"
)

// TextSize measures the tight pixel bounds of text rendered at the
// given scale: the maximum x and y any glyph's ink reaches from the
// top-left of the line box. Whitespace carries no ink, so trailing
// spaces do not widen the result. Text with no ink at all measures
// (0, 0).
//
// This is the ink extent, not the advance width a layout engine would
// reserve; a glyph can overhang its advance and trailing bearings are
// not counted.
func TextSize(text string, f typeface.Font, scale float64) (w, h int) {
	vm := f.VMetrics(scale)
	for g := range f.Glyphs(text, scale, typeface.Point{X: 0, Y: vm.Ascent}) {
		if g.Empty() {
			continue
		}
		if g.Bounds.Max.X > w {
			w = g.Bounds.Max.X
		}
		if g.Bounds.Max.Y > h {
			h = g.Bounds.Max.Y
		}
	}
	return w, h
}

// DrawText shapes text and composites it onto dst with the top-left of
// the line box at (x, y). Pixels that fall outside dst are clipped;
// coordinates may be negative.
//
// DrawText shapes on every call. To draw the same text repeatedly,
// shape once with NewRun and reuse it.
func DrawText(dst Surface, text string, f typeface.Font, scale float64, x, y int, c color.Color) {
	vm := f.VMetrics(scale)
	for g := range f.Glyphs(text, scale, typeface.Point{X: 0, Y: vm.Ascent}) {
		drawGlyph(dst, &g, x, y, c)
	}
}

// DrawTextCopy draws text onto a copy of dst and returns the copy,
// leaving dst untouched.
func DrawTextCopy(dst Surface, text string, f typeface.Font, scale float64, x, y int, c color.Color) Surface {
	out := dst.Clone()
	DrawText(out, text, f, scale, x, y, c)
	return out
}
