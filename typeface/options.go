package typeface

// Option configures font parsing.
type Option func(*config)

// config holds configuration shared by the font backends.
type config struct {
	hinting  Hinting
	language string
}

// defaultConfig returns the default parsing configuration.
func defaultConfig() config {
	return config{
		hinting:  HintingNone,
		language: "en",
	}
}

// WithHinting sets the hinting mode used when rasterizing glyphs.
// The default is HintingNone, which matches unhinted outline rendering.
//
// Hinting is honored by OpenTypeFont; GoTextFont always rasterizes
// unhinted outlines.
func WithHinting(h Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithLanguage sets the BCP 47 language tag used during shaping
// (e.g. "en", "ja", "ar"). Only GoTextFont consults it; the script is
// detected separately from the text itself.
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = lang
	}
}

// Hinting specifies the glyph outline fitting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}
