package glyphdraw

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a mutable pixel buffer that text can be drawn onto.
//
// Coordinates are zero-based with (0, 0) at the top-left corner,
// regardless of the underlying image's bounds offset. Accessors outside
// the surface are safe: GetPixel reports a zero color and SetPixel is
// ignored, so drawing code can clip per pixel without precomputing
// intersections.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// GetPixel returns the color at (x, y) in the surface's native
	// color model.
	GetPixel(x, y int) color.Color

	// SetPixel writes the color at (x, y), converting it to the
	// surface's native color model.
	SetPixel(x, y int, c color.Color)

	// Clone returns an independent copy of the surface. Changes to
	// the copy do not affect the original.
	Clone() Surface
}

// WrapImage adapts any draw.Image into a Surface. Surface coordinates
// are relative to the image's bounds minimum, so wrapping a subimage
// draws within the subimage's region of the parent.
//
// Clone preserves the concrete pixel format for the standard raster
// types; other implementations are copied into an image.NRGBA64.
func WrapImage(img draw.Image) Surface {
	return &imageSurface{img: img}
}

type imageSurface struct {
	img draw.Image
}

func (s *imageSurface) Width() int  { return s.img.Bounds().Dx() }
func (s *imageSurface) Height() int { return s.img.Bounds().Dy() }

func (s *imageSurface) GetPixel(x, y int) color.Color {
	min := s.img.Bounds().Min
	return s.img.At(min.X+x, min.Y+y)
}

func (s *imageSurface) SetPixel(x, y int, c color.Color) {
	min := s.img.Bounds().Min
	s.img.Set(min.X+x, min.Y+y, c)
}

func (s *imageSurface) Clone() Surface {
	return &imageSurface{img: cloneImage(s.img)}
}

// cloneImage copies a draw.Image. The standard raster types are copied
// byte for byte so that pixel data survives exactly, including color
// channels of fully transparent pixels that a color model round trip
// would discard.
func cloneImage(img draw.Image) draw.Image {
	switch src := img.(type) {
	case *image.RGBA:
		dst := image.NewRGBA(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.NRGBA:
		dst := image.NewNRGBA(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.RGBA64:
		dst := image.NewRGBA64(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA64(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.Alpha:
		dst := image.NewAlpha(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.Alpha16:
		dst := image.NewAlpha16(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.Gray:
		dst := image.NewGray(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	case *image.Gray16:
		dst := image.NewGray16(src.Rect)
		copyPix(dst.Pix, src.Pix, dst.Stride, src.Stride, src.Rect.Dy())
		return dst
	default:
		dst := image.NewNRGBA64(img.Bounds())
		draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Src)
		return dst
	}
}

// copyPix copies rows of pixel data between buffers that may have
// different strides (the source can be a subimage of a larger buffer).
// A freshly allocated destination has no row padding, so each row is
// dstStride bytes wide.
func copyPix(dst, src []uint8, dstStride, srcStride, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:(y+1)*dstStride], src[y*srcStride:])
	}
}
