package typeface

import (
	"fmt"
	"image"
	"image/draw"
	"iter"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeFont shapes and rasterizes text using
// golang.org/x/image/font/opentype. Layout is rune by rune with pair
// kerning applied between adjacent glyphs, the same stepping
// golang.org/x/image/font.Drawer performs.
//
// OpenTypeFont is safe for concurrent use. font.Face instances are not,
// so faces are cached per scale and all face access is serialized by an
// internal mutex.
type OpenTypeFont struct {
	font    *opentype.Font
	name    string
	hinting font.Hinting

	// mu guards faces and every call into a cached font.Face.
	mu    sync.Mutex
	faces map[float64]font.Face
}

// Parse parses TTF or OTF font data into an OpenTypeFont.
// The data slice is retained by the underlying parser and must not be
// mutated afterwards.
func Parse(data []byte, opts ...Option) (*OpenTypeFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	name := ""
	if s, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		name = s
	}

	Logger().Info("parsed font", "name", name, "glyphs", f.NumGlyphs())

	return &OpenTypeFont{
		font:    f,
		name:    name,
		hinting: mapHinting(cfg.hinting),
		faces:   make(map[float64]font.Face),
	}, nil
}

// ParseFile loads and parses a font file.
func ParseFile(path string, opts ...Option) (*OpenTypeFont, error) {
	// #nosec G304 -- the font file path is provided by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to read font file: %w", err)
	}
	return Parse(data, opts...)
}

// Name returns the font family name, or "" if the font does not carry one.
func (f *OpenTypeFont) Name() string {
	return f.name
}

// Glyphs implements Font.Glyphs.
func (f *OpenTypeFont) Glyphs(text string, scale float64, origin Point) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for _, g := range f.AppendGlyphs(nil, text, scale, origin) {
			if !yield(g) {
				return
			}
		}
	}
}

// AppendGlyphs implements Font.AppendGlyphs.
//
// Each glyph's mask is copied out of the face immediately: the mask
// returned by font.Face.Glyph is only valid until the next Glyph call.
func (f *OpenTypeFont) AppendGlyphs(dst []Glyph, text string, scale float64, origin Point) []Glyph {
	if text == "" {
		return dst
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(scale)
	if err != nil {
		return dst
	}
	vm := faceVMetrics(face)

	dot := fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)}
	prev := rune(-1)

	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		prev = r

		dr, src, srcp, advance, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}

		var mask *image.Alpha
		if !dr.Empty() {
			mask = image.NewAlpha(dr)
			draw.Draw(mask, dr, src, srcp, draw.Src)
		}

		dst = append(dst, NewGlyph(mask, fixedToFloat(advance), vm))
		dot.X += advance
	}

	return dst
}

// VMetrics implements Font.VMetrics.
func (f *OpenTypeFont) VMetrics(scale float64) VMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(scale)
	if err != nil {
		return VMetrics{}
	}
	return faceVMetrics(face)
}

// Close releases the cached faces. The font must not be used after Close.
func (f *OpenTypeFont) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var first error
	for scale, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.faces, scale)
	}
	return first
}

// face returns the cached font.Face for scale, creating it on first use.
// Callers must hold f.mu.
func (f *OpenTypeFont) face(scale float64) (font.Face, error) {
	if fc, ok := f.faces[scale]; ok {
		return fc, nil
	}

	fc, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72, // at 72 DPI, Size is exactly pixels per em
		Hinting: f.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to create face: %w", err)
	}

	f.faces[scale] = fc
	Logger().Debug("created face", "font", f.name, "scale", scale)
	return fc, nil
}

// faceVMetrics converts x/image face metrics to VMetrics.
// font.Metrics reports Descent as a positive distance below the
// baseline; VMetrics carries it negative.
func faceVMetrics(face font.Face) VMetrics {
	m := face.Metrics()
	return VMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: -fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height - m.Ascent - m.Descent),
	}
}

// mapHinting converts typeface.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// floatToFixed converts pixels to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts fixed.Int26_6 to pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
