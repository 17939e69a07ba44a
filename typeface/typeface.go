// Package typeface turns strings into positioned, rasterized glyphs.
//
// It is the shaping/rasterization boundary consumed by glyphdraw: a Font
// lays one line of text out along a baseline and yields Glyph values that
// carry a pixel bounding box, an advance width, vertical metrics, and an
// alpha coverage mask. Two backends are provided: OpenTypeFont
// (golang.org/x/image/font/opentype) and GoTextFont (HarfBuzz shaping via
// go-text/typesetting).
package typeface

import (
	"image"
	"iter"
)

// Point is a 2D position in pixel coordinates.
type Point struct {
	X, Y float32
}

// VMetrics holds a font's vertical metrics at a specific scale.
type VMetrics struct {
	// Ascent is the distance from the baseline to the top of the font,
	// in pixels (positive, above the baseline).
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the
	// font (typically negative, below the baseline).
	Descent float32

	// LineGap is the recommended additional gap between lines.
	LineGap float32
}

// LineHeight returns the total line height (ascent - descent + line gap).
func (m VMetrics) LineHeight() float32 {
	return m.Ascent - m.Descent + m.LineGap
}

// Font produces positioned glyphs for single-line text at a given scale.
// Scale is the font size in pixels per em. Line-break characters are not
// interpreted; they pass through to the shaper like any other rune.
//
// Implementations must be safe for concurrent use.
type Font interface {
	// Glyphs returns an iterator over the positioned glyphs for text,
	// laid out left to right starting at origin.
	Glyphs(text string, scale float64, origin Point) iter.Seq[Glyph]

	// AppendGlyphs appends the positioned glyphs for text to dst and
	// returns the extended slice.
	AppendGlyphs(dst []Glyph, text string, scale float64, origin Point) []Glyph

	// VMetrics returns the font's vertical metrics at scale.
	VMetrics(scale float64) VMetrics
}

// Glyph is one positioned, rasterized glyph.
//
// Bounds is the glyph's pixel bounding box in run coordinates (the
// coordinate space the layout origin lives in); it is empty for glyphs
// with no visible shape, such as whitespace, which still contribute
// their advance width. Coverage is sampled in local coordinates
// [0,Bounds.Dx()) x [0,Bounds.Dy()).
type Glyph struct {
	// Bounds is the pixel bounding box in run coordinates.
	// Empty when the glyph has no coverage.
	Bounds image.Rectangle

	// Advance is the horizontal advance width in pixels.
	Advance float32

	// Metrics is the font's vertical metrics at the glyph's scale.
	Metrics VMetrics

	// mask holds 8-bit coverage over Bounds; nil when the glyph has no
	// visible shape.
	mask *image.Alpha
}

// NewGlyph assembles a Glyph from an alpha coverage mask. The mask's
// rectangle becomes the glyph's bounding box; a nil or empty mask yields
// a glyph with no coverage (whitespace). The mask is retained, not
// copied, and must not be mutated afterwards.
func NewGlyph(mask *image.Alpha, advance float32, metrics VMetrics) Glyph {
	g := Glyph{Advance: advance, Metrics: metrics}
	if mask != nil && !mask.Rect.Empty() {
		g.Bounds = mask.Rect
		g.mask = mask
	}
	return g
}

// Empty reports whether the glyph has no visible coverage.
func (g *Glyph) Empty() bool {
	return g.mask == nil || g.Bounds.Empty()
}

// CoverageAt returns the coverage weight in [0,1] at the local
// coordinates (x, y). Coordinates outside the bounding box report 0.
func (g *Glyph) CoverageAt(x, y int) float32 {
	if g.mask == nil {
		return 0
	}
	a := g.mask.AlphaAt(g.Bounds.Min.X+x, g.Bounds.Min.Y+y).A
	return float32(a) / 255
}

// Coverage returns an iterator over the glyph's local coordinates and
// their coverage weights. Every point of the bounding box is visited
// exactly once in unspecified order; the iterator is restartable.
func (g *Glyph) Coverage() iter.Seq2[image.Point, float32] {
	return func(yield func(image.Point, float32) bool) {
		if g.mask == nil {
			return
		}
		b := g.Bounds
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				a := g.mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A
				if !yield(image.Pt(x, y), float32(a)/255) {
					return
				}
			}
		}
	}
}
