package glyphdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored as
// non-premultiplied RGBA, 4 bytes per pixel.
//
// Pixmap implements both Surface and image.Image, so it can be drawn
// onto directly and handed to the standard image codecs.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage creates a pixmap with a copy of the image's pixels.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Pixels outside the pixmap
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel as color.NRGBA.
// Pixels outside the pixmap read as transparent black.
func (p *Pixmap) GetPixel(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() Surface {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("glyphdraw: failed to create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
