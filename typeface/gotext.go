package typeface

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"iter"
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/vector"
)

// GoTextFont shapes text with go-text/typesetting's HarfBuzz port and
// rasterizes the resulting outlines with golang.org/x/image/vector.
// Unlike OpenTypeFont it applies full OpenType shaping: ligature
// substitution, kerning pairs, contextual alternates and mark
// positioning.
//
// GoTextFont is safe for concurrent use. The parsed font.Font is
// read-only; every layout call wraps it in a fresh font.Face, and
// HarfbuzzShaper instances are pooled since neither is safe for
// concurrent use.
type GoTextFont struct {
	font *font.Font
	lang language.Language

	// shapers pools HarfbuzzShaper instances. The shaper keeps an
	// internal buffer, so each concurrent layout needs its own.
	shapers sync.Pool

	// mu guards vmetrics.
	mu       sync.Mutex
	vmetrics map[float64]VMetrics
}

// ParseGoText parses TTF or OTF font data into a GoTextFont.
// The data slice is retained by the underlying parser and must not be
// mutated afterwards.
func ParseGoText(data []byte, opts ...Option) (*GoTextFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	Logger().Info("parsed font", "shaper", "harfbuzz", "upem", face.Upem())

	return &GoTextFont{
		font: face.Font,
		lang: language.NewLanguage(cfg.language),
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		vmetrics: make(map[float64]VMetrics),
	}, nil
}

// Glyphs implements Font.Glyphs.
func (f *GoTextFont) Glyphs(text string, scale float64, origin Point) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for _, g := range f.AppendGlyphs(nil, text, scale, origin) {
			if !yield(g) {
				return
			}
		}
	}
}

// AppendGlyphs implements Font.AppendGlyphs.
func (f *GoTextFont) AppendGlyphs(dst []Glyph, text string, scale float64, origin Point) []Glyph {
	if text == "" {
		return dst
	}

	// font.Face is not safe for concurrent use; wrap the shared
	// read-only Font in a fresh Face for this call.
	face := font.NewFace(f.font)
	out := f.shape(face, []rune(text), scale)

	vm := boundsVMetrics(out.LineBounds)
	f.storeVMetrics(scale, vm)

	// Outline coordinates are font units; unit converts them to pixels.
	unit := float32(scale) / float32(face.Upem())

	var r vector.Rasterizer
	x, y := origin.X, origin.Y
	for i := range out.Glyphs {
		g := &out.Glyphs[i]
		dotX := x + fixedToFloat(g.XOffset)
		dotY := y - fixedToFloat(g.YOffset)
		mask := rasterizeGlyph(&r, face, g.GlyphID, unit, dotX, dotY)
		dst = append(dst, NewGlyph(mask, fixedToFloat(g.XAdvance), vm))
		x += fixedToFloat(g.XAdvance)
	}
	return dst
}

// VMetrics implements Font.VMetrics. HarfBuzz only reports line bounds
// alongside shaped output, so an uncached scale shapes a single space
// to obtain them.
func (f *GoTextFont) VMetrics(scale float64) VMetrics {
	f.mu.Lock()
	vm, ok := f.vmetrics[scale]
	f.mu.Unlock()
	if ok {
		return vm
	}

	out := f.shape(font.NewFace(f.font), []rune{' '}, scale)
	vm = boundsVMetrics(out.LineBounds)
	f.storeVMetrics(scale, vm)
	return vm
}

// shape runs HarfBuzz shaping over runes at the given pixel size.
func (f *GoTextFont) shape(face *font.Face, runes []rune, scale float64) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(float32(scale)),
		Script:    detectScript(runes),
		Language:  f.lang,
	}

	shaper := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	f.shapers.Put(shaper)
	return out
}

func (f *GoTextFont) storeVMetrics(scale float64, vm VMetrics) {
	f.mu.Lock()
	f.vmetrics[scale] = vm
	f.mu.Unlock()
}

// rasterizeGlyph renders one glyph outline into an alpha mask placed at
// the given dot. Glyphs without an outline (whitespace, bitmap-only
// fonts) yield nil.
func rasterizeGlyph(r *vector.Rasterizer, face *font.Face, gid font.GID, unit, dotX, dotY float32) *image.Alpha {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return nil
	}

	// Control box of the transformed outline. Font units have Y
	// increasing up, device space has Y increasing down.
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, seg := range outline.Segments {
		for _, p := range seg.ArgsSlice() {
			px := dotX + p.X*unit
			py := dotY - p.Y*unit
			minX = math32.Min(minX, px)
			minY = math32.Min(minY, py)
			maxX = math32.Max(maxX, px)
			maxY = math32.Max(maxY, py)
		}
	}

	x0 := math32.Floor(minX)
	y0 := math32.Floor(minY)
	w := int(math32.Ceil(maxX) - x0)
	h := int(math32.Ceil(maxY) - y0)
	if w <= 0 || h <= 0 {
		return nil
	}

	r.Reset(w, h)
	r.DrawOp = draw.Src

	pt := func(p opentype.SegmentPoint) (float32, float32) {
		return dotX + p.X*unit - x0, dotY - p.Y*unit - y0
	}

	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			started = true
			x, y := pt(seg.Args[0])
			r.MoveTo(x, y)
		case opentype.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			r.LineTo(x, y)
		case opentype.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			r.QuadTo(cx, cy, x, y)
		case opentype.SegmentOpCubeTo:
			cax, cay := pt(seg.Args[0])
			cbx, cby := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			r.CubeTo(cax, cay, cbx, cby, x, y)
		}
	}
	if started {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	// The source is uniform, so the sample point does not matter.
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Pt(int(x0), int(y0)))

	Logger().Debug("rasterized glyph", "gid", uint32(gid), "bounds", mask.Rect)
	return mask
}

// boundsVMetrics converts HarfBuzz line bounds to VMetrics. Both report
// Descent as a negative offset below the baseline.
func boundsVMetrics(b shaping.Bounds) VMetrics {
	return VMetrics{
		Ascent:  fixedToFloat(b.Ascent),
		Descent: fixedToFloat(b.Descent),
		LineGap: fixedToFloat(b.Gap),
	}
}

// detectScript returns the script of the first non-space rune, falling
// back to Latin. Mixed-script text should be split into runs by the
// caller before layout.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
