package glyphdraw

import (
	"image"
	"image/color"

	"github.com/gogpu/glyphdraw/typeface"
)

// Run is a shaped line of text. Glyphs are laid out once at
// construction with the baseline at y = ascent, so the run's box has
// its top-left corner at the origin; draw calls only translate and
// blend the prepared masks. A Run can be drawn any number of times.
type Run struct {
	glyphs []typeface.Glyph
}

// NewRun shapes text with the font at the given pixel scale.
func NewRun(text string, f typeface.Font, scale float64) *Run {
	vm := f.VMetrics(scale)
	origin := typeface.Point{X: 0, Y: vm.Ascent}
	return &Run{glyphs: f.AppendGlyphs(nil, text, scale, origin)}
}

// Width returns the pixel width of the run: the advance sum, truncated,
// plus a two pixel margin. An empty run has width 0.
func (r *Run) Width() int {
	if len(r.glyphs) == 0 {
		return 0
	}
	var sum float32
	for i := range r.glyphs {
		sum += r.glyphs[i].Advance
	}
	return 2 + int(sum)
}

// Height returns the pixel height of the run: the ascent to descent
// span with 10% leading, truncated. An empty run has height 0.
func (r *Run) Height() int {
	if len(r.glyphs) == 0 {
		return 0
	}
	vm := r.glyphs[0].Metrics
	return int((vm.Ascent - vm.Descent) * 1.1)
}

// Draw composites the run onto dst with the top-left corner of its box
// at (x, y). Pixels that fall outside dst are clipped; coordinates may
// be negative.
func (r *Run) Draw(dst Surface, x, y int, c color.Color) {
	for i := range r.glyphs {
		drawGlyph(dst, &r.glyphs[i], x, y, c)
	}
}

// DrawCopy draws the run onto a copy of dst and returns the copy,
// leaving dst untouched.
func (r *Run) DrawCopy(dst Surface, x, y int, c color.Color) Surface {
	out := dst.Clone()
	r.Draw(out, x, y, c)
	return out
}

// DrawAnchored places the run inside rect according to pos and draws it
// onto dst.
func (r *Run) DrawAnchored(dst Surface, pos Position, rect image.Rectangle, c color.Color) {
	x, y := pos.Locate(rect, r.Width(), r.Height())
	r.Draw(dst, x, y, c)
}

// DrawAnchoredCopy places and draws the run like DrawAnchored, but onto
// a copy of dst, and returns the copy.
func (r *Run) DrawAnchoredCopy(dst Surface, pos Position, rect image.Rectangle, c color.Color) Surface {
	out := dst.Clone()
	r.DrawAnchored(out, pos, rect, c)
	return out
}

// drawGlyph blends one glyph's coverage into dst, translated by
// (dx, dy). Pixels outside dst are skipped, as are zero coverage
// samples inside the glyph's bounding box.
func drawGlyph(dst Surface, g *typeface.Glyph, dx, dy int, c color.Color) {
	if g.Empty() {
		return
	}
	w, h := dst.Width(), dst.Height()
	min := g.Bounds.Min
	for pt, cov := range g.Coverage() {
		if cov == 0 {
			continue
		}
		x := pt.X + min.X + dx
		y := pt.Y + min.Y + dy
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		dst.SetPixel(x, y, Blend(dst.GetPixel(x, y), c, cov))
	}
}
