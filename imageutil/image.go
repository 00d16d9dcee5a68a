// Package imageutil provides the pure Go image plumbing used by the mosaic
// renderer: non-premultiplied image wrappers, resampling, convolution and
// image file IO.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NRGBAImage wraps image.NRGBA with convenience methods for pixel access.
// Channels are stored without alpha premultiplication so a transparent
// pixel keeps its color.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new, fully transparent NRGBAImage.
func NewNRGBAImage(width, height int) *NRGBAImage {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *NRGBAImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *NRGBAImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}

// Fill sets every pixel to c.
func (img *NRGBAImage) Fill(c color.Color) {
	draw.Draw(img.NRGBA, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Clone creates a deep copy of the image.
func (img *NRGBAImage) Clone() *NRGBAImage {
	clone := NewNRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
