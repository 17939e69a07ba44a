// Package glyphdraw draws text onto images and pixel buffers.
//
// # Overview
//
// glyphdraw renders single lines of text with alpha-blended glyph
// coverage. Text can be placed at explicit pixel coordinates or
// anchored inside a rectangle (centered, flush to an edge, or at an
// arbitrary percentage along one). Every draw operation comes in an
// in-place variant and a copying variant that leaves the destination
// untouched.
//
// # Quick Start
//
//	import (
//	    "image/color"
//
//	    "github.com/gogpu/glyphdraw"
//	    "github.com/gogpu/glyphdraw/typeface"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	face, _ := typeface.Parse(goregular.TTF)
//
//	pm := glyphdraw.NewPixmap(320, 120)
//	pm.Clear(color.White)
//
//	run := glyphdraw.NewRun("hello, world", face, 24)
//	run.DrawAnchored(pm, glyphdraw.HorizontalCenter(glyphdraw.EdgeCenter),
//	    pm.Bounds(), color.Black)
//
//	pm.SavePNG("hello.png")
//
// # Font Backends
//
// Two interchangeable backends implement typeface.Font:
//   - typeface.Parse uses golang.org/x/image/font/opentype: rune-by-rune
//     layout with pair kerning, hinting support.
//   - typeface.ParseGoText uses go-text/typesetting: full HarfBuzz
//     shaping with ligatures and contextual alternates.
//
// # Drawing Targets
//
// Drawing goes through the Surface interface. Pixmap is the built-in
// implementation; WrapImage adapts any draw.Image from the standard
// library, preserving its pixel format.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates may be negative or exceed the destination; pixels that
// fall outside the surface are silently clipped.
package glyphdraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
