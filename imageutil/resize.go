package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor sampling: one source
	// pixel per destination pixel, no smoothing.
	InterpolationNearest Interpolation = iota

	// InterpolationApproxLinear uses x/image's fast approximate bilinear
	// filter, a cheap box-like average.
	InterpolationApproxLinear

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea
)

// String returns the flag name of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationApproxLinear:
		return "approx"
	case InterpolationLinear:
		return "linear"
	case InterpolationArea:
		return "area"
	}
	return "unknown"
}

// ParseInterpolation maps a flag name back to an Interpolation.
func ParseInterpolation(name string) (Interpolation, bool) {
	for _, i := range []Interpolation{
		InterpolationNearest, InterpolationApproxLinear,
		InterpolationLinear, InterpolationArea,
	} {
		if i.String() == name {
			return i, true
		}
	}
	return InterpolationNearest, false
}

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationApproxLinear:
		return draw.ApproxBiLinear
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize scales img to width x height. Alpha is carried through untouched
// (draw.Src), so transparent regions stay transparent. A non-positive
// dimension yields an empty image.
func Resize(img image.Image, width, height int, interp Interpolation) *NRGBAImage {
	if width <= 0 || height <= 0 || img.Bounds().Empty() {
		return NewNRGBAImage(0, 0)
	}
	dst := NewNRGBAImage(width, height)
	interp.scaler().Scale(dst.NRGBA, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// CropSquare returns the largest centered square region of img.
func CropSquare(img image.Image) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	sub := NewNRGBAImage(side, side)
	draw.Draw(sub.NRGBA, sub.Bounds(), img, image.Pt(x0, y0), draw.Src)
	return sub.NRGBA
}
