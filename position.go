package glyphdraw

import (
	"fmt"
	"image"
)

// EdgePosition selects a point along one axis of a rectangle as a
// percentage of the available play: 0 is flush with the left or top
// edge, 50 centered, 100 flush with the right or bottom edge. Values
// outside [0, 100] extrapolate past the edges.
type EdgePosition float32

// Edge positions for the common alignments.
const (
	EdgeLeft   EdgePosition = 0
	EdgeTop    EdgePosition = 0
	EdgeCenter EdgePosition = 50
	EdgeRight  EdgePosition = 100
	EdgeBottom EdgePosition = 100
)

type positionKind uint8

const (
	positionAny positionKind = iota
	positionHorizontalTop
	positionHorizontalCenter
	positionHorizontalBottom
	positionVerticalLeft
	positionVerticalCenter
	positionVerticalRight
)

// Position describes where content of a known size is placed inside a
// rectangle. One axis (or both, for Any) is free and set by an
// EdgePosition; the other is fixed to an edge or the center.
//
// The zero value places content at the top-left corner.
type Position struct {
	kind positionKind
	h, v EdgePosition
}

// HorizontalTop slides content along the top edge.
func HorizontalTop(h EdgePosition) Position {
	return Position{kind: positionHorizontalTop, h: h, v: EdgeTop}
}

// HorizontalCenter slides content along the horizontal center line.
func HorizontalCenter(h EdgePosition) Position {
	return Position{kind: positionHorizontalCenter, h: h, v: EdgeCenter}
}

// HorizontalBottom slides content along the bottom edge.
func HorizontalBottom(h EdgePosition) Position {
	return Position{kind: positionHorizontalBottom, h: h, v: EdgeBottom}
}

// VerticalLeft slides content along the left edge.
func VerticalLeft(v EdgePosition) Position {
	return Position{kind: positionVerticalLeft, h: EdgeLeft, v: v}
}

// VerticalCenter slides content along the vertical center line.
func VerticalCenter(v EdgePosition) Position {
	return Position{kind: positionVerticalCenter, h: EdgeCenter, v: v}
}

// VerticalRight slides content along the right edge.
func VerticalRight(v EdgePosition) Position {
	return Position{kind: positionVerticalRight, h: EdgeRight, v: v}
}

// Any places content at independent horizontal and vertical edge
// positions.
func Any(h, v EdgePosition) Position {
	return Position{kind: positionAny, h: h, v: v}
}

// Locate returns the top-left corner for content of size w by h placed
// in rect according to the position. Content larger than the rectangle
// slides past its edges and can yield coordinates outside rect; drawing
// clips those to the destination surface.
func (p Position) Locate(rect image.Rectangle, w, h int) (x, y int) {
	x = rect.Min.X + slide(rect.Dx(), w, p.h)
	y = rect.Min.Y + slide(rect.Dy(), h, p.v)
	return x, y
}

// slide places a span of length content inside a span of length total,
// at pos percent of the leftover room. The result is truncated toward
// zero and is negative when content exceeds total at pos > 0.
func slide(total, content int, pos EdgePosition) int {
	return int(float32(total-content) * float32(pos) / 100)
}

// String returns the constructor-style name of the position.
func (p Position) String() string {
	switch p.kind {
	case positionHorizontalTop:
		return fmt.Sprintf("HorizontalTop(%g)", float32(p.h))
	case positionHorizontalCenter:
		return fmt.Sprintf("HorizontalCenter(%g)", float32(p.h))
	case positionHorizontalBottom:
		return fmt.Sprintf("HorizontalBottom(%g)", float32(p.h))
	case positionVerticalLeft:
		return fmt.Sprintf("VerticalLeft(%g)", float32(p.v))
	case positionVerticalCenter:
		return fmt.Sprintf("VerticalCenter(%g)", float32(p.v))
	case positionVerticalRight:
		return fmt.Sprintf("VerticalRight(%g)", float32(p.v))
	default:
		return fmt.Sprintf("Any(%g, %g)", float32(p.h), float32(p.v))
	}
}
