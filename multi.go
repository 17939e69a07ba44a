package glyphdraw

import (
	"image"
	"image/color"
)

// MultiRun lays out several runs side by side, each starting where the
// previous one's width ends. Runs keep their own baselines, so mixing
// scales aligns the runs' top edges rather than their baselines.
//
// The typical use is one line of text in several colors: shape each
// fragment as its own Run and draw the MultiRun with one color per
// fragment.
type MultiRun struct {
	runs []*Run
}

// NewMultiRun groups runs for side by side drawing, in order.
func NewMultiRun(runs ...*Run) *MultiRun {
	return &MultiRun{runs: runs}
}

// Width returns the sum of the runs' widths.
func (m *MultiRun) Width() int {
	total := 0
	for _, r := range m.runs {
		total += r.Width()
	}
	return total
}

// Height returns the tallest run's height.
func (m *MultiRun) Height() int {
	tallest := 0
	for _, r := range m.runs {
		if h := r.Height(); h > tallest {
			tallest = h
		}
	}
	return tallest
}

// DrawAnchored places the joined runs inside rect according to pos and
// draws each run with its paired color. Runs and colors are paired by
// index; whichever list is shorter limits how many runs are drawn.
func (m *MultiRun) DrawAnchored(dst Surface, pos Position, rect image.Rectangle, colors []color.Color) {
	x, y := pos.Locate(rect, m.Width(), m.Height())
	for i, r := range m.runs {
		if i >= len(colors) {
			break
		}
		r.Draw(dst, x, y, colors[i])
		x += r.Width()
	}
}

// DrawAnchoredCopy draws like DrawAnchored, but onto a copy of dst, and
// returns the copy.
func (m *MultiRun) DrawAnchoredCopy(dst Surface, pos Position, rect image.Rectangle, colors []color.Color) Surface {
	out := dst.Clone()
	m.DrawAnchored(out, pos, rect, colors)
	return out
}
