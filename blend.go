package glyphdraw

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Blend mixes overlay into existing in proportion to coverage, where
// coverage 0 returns existing unchanged and coverage 1 returns overlay.
// Each channel is interpolated as
//
//	existing*(1-coverage) + overlay*coverage
//
// in float32, clamped to the channel range and truncated. The blend
// happens in the existing color's model: overlay is converted first, so
// blending onto a premultiplied pixel interpolates premultiplied
// channels and blending onto a grayscale pixel interpolates luma.
func Blend(existing, overlay color.Color, coverage float32) color.Color {
	switch e := existing.(type) {
	case color.NRGBA:
		o := color.NRGBAModel.Convert(overlay).(color.NRGBA)
		return color.NRGBA{
			R: blend8(e.R, o.R, coverage),
			G: blend8(e.G, o.G, coverage),
			B: blend8(e.B, o.B, coverage),
			A: blend8(e.A, o.A, coverage),
		}
	case color.RGBA:
		o := color.RGBAModel.Convert(overlay).(color.RGBA)
		return color.RGBA{
			R: blend8(e.R, o.R, coverage),
			G: blend8(e.G, o.G, coverage),
			B: blend8(e.B, o.B, coverage),
			A: blend8(e.A, o.A, coverage),
		}
	case color.NRGBA64:
		o := color.NRGBA64Model.Convert(overlay).(color.NRGBA64)
		return color.NRGBA64{
			R: blend16(e.R, o.R, coverage),
			G: blend16(e.G, o.G, coverage),
			B: blend16(e.B, o.B, coverage),
			A: blend16(e.A, o.A, coverage),
		}
	case color.RGBA64:
		o := color.RGBA64Model.Convert(overlay).(color.RGBA64)
		return color.RGBA64{
			R: blend16(e.R, o.R, coverage),
			G: blend16(e.G, o.G, coverage),
			B: blend16(e.B, o.B, coverage),
			A: blend16(e.A, o.A, coverage),
		}
	case color.Gray:
		o := color.GrayModel.Convert(overlay).(color.Gray)
		return color.Gray{Y: blend8(e.Y, o.Y, coverage)}
	case color.Gray16:
		o := color.Gray16Model.Convert(overlay).(color.Gray16)
		return color.Gray16{Y: blend16(e.Y, o.Y, coverage)}
	case color.Alpha:
		o := color.AlphaModel.Convert(overlay).(color.Alpha)
		return color.Alpha{A: blend8(e.A, o.A, coverage)}
	case color.Alpha16:
		o := color.Alpha16Model.Convert(overlay).(color.Alpha16)
		return color.Alpha16{A: blend16(e.A, o.A, coverage)}
	default:
		e16 := color.NRGBA64Model.Convert(existing).(color.NRGBA64)
		o16 := color.NRGBA64Model.Convert(overlay).(color.NRGBA64)
		return color.NRGBA64{
			R: blend16(e16.R, o16.R, coverage),
			G: blend16(e16.G, o16.G, coverage),
			B: blend16(e16.B, o16.B, coverage),
			A: blend16(e16.A, o16.A, coverage),
		}
	}
}

func blend8(e, o uint8, cov float32) uint8 {
	v := mix(float32(e), float32(o), cov)
	return uint8(math32.Min(math32.Max(v, 0), 255))
}

func blend16(e, o uint16, cov float32) uint16 {
	v := mix(float32(e), float32(o), cov)
	return uint16(math32.Min(math32.Max(v, 0), 65535))
}

// mix interpolates one channel. Exact at coverage 0 and 1: the dropped
// term multiplies to zero and the kept channel value round-trips
// through float32 without loss.
func mix(existing, overlay, cov float32) float32 {
	return existing*(1-cov) + overlay*cov
}
