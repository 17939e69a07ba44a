package typeface

import "errors"

// Sentinel errors for the typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")
)
