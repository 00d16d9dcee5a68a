package knitmosaic

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB-encoded color with float channels in [0, 1].
type Color = colorful.Color

const (
	// ColorTolerance is the per-channel slack used when comparing quantized
	// colors against the background or the prominent color.
	ColorTolerance = 0.01

	// ditherScale is the largest offset, as a fraction of full scale, that
	// ApplyDither adds at amount 1.
	ditherScale = 0.05
)

// bayer4 is the 4x4 ordered dither matrix, indexed [y][x].
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Luminance returns the Rec. 709 weighted sum of the channels. The result
// is not clamped.
func Luminance(c Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// SRGBToLinear decodes a single sRGB channel value to linear light.
func SRGBToLinear(v float64) float64 {
	r, _, _ := colorful.Color{R: v}.LinearRgb()
	return r
}

// linearDistanceSq returns the squared Euclidean distance between two
// colors in linear RGB.
func linearDistanceSq(a, b Color) float64 {
	ar, ag, ab := a.LinearRgb()
	br, bg, bb := b.LinearRgb()
	dr, dg, db := ar-br, ag-bg, ab-bb
	return dr*dr + dg*dg + db*db
}

// NearestPaletteColor returns the palette member closest to c in linear
// RGB. Ties go to the earliest entry. It panics if the palette is empty.
func NearestPaletteColor(c Color, palette []Color) Color {
	if len(palette) == 0 {
		panic("knitmosaic: nearest color requested from an empty palette")
	}
	best := palette[0]
	bestDist := linearDistanceSq(c, best)
	for _, p := range palette[1:] {
		if d := linearDistanceSq(c, p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// ApplyContrast scales each channel about 0.5 by k.
func ApplyContrast(c Color, k float64) Color {
	if k == 1 {
		return clampColor(c)
	}
	return Color{
		R: clamp01((c.R-0.5)*k + 0.5),
		G: clamp01((c.G-0.5)*k + 0.5),
		B: clamp01((c.B-0.5)*k + 0.5),
	}
}

// ApplySaturation moves each channel away from (s > 1) or towards (s < 1)
// the color's luminance. Channels are clamped independently, so strongly
// amplified colors can lose hue near the boundaries.
func ApplySaturation(c Color, s float64) Color {
	if s == 1 {
		return clampColor(c)
	}
	l := Luminance(c)
	return Color{
		R: clamp01(l + (c.R-l)*s),
		G: clamp01(l + (c.G-l)*s),
		B: clamp01(l + (c.B-l)*s),
	}
}

// Bayer returns the normalized 4x4 ordered-dither threshold at (x, y).
// Negative coordinates wrap like positive ones.
func Bayer(x, y int) float64 {
	return bayer4[mod4(y)][mod4(x)] / 16
}

// ApplyDither adds the Bayer offset for (x, y), scaled by amount, to all
// three channels.
func ApplyDither(c Color, amount float64, x, y int) Color {
	if amount <= 0 || math.IsNaN(amount) {
		return clampColor(c)
	}
	off := (Bayer(x, y) - 0.5) * 2 * ditherScale * amount
	return Color{
		R: clamp01(c.R + off),
		G: clamp01(c.G + off),
		B: clamp01(c.B + off),
	}
}

// ApplyPaletteMix quantizes c against palette. The mix fraction is
// accepted for configuration compatibility but the result is always the
// strictly quantized color.
func ApplyPaletteMix(c Color, mix float64, palette []Color) Color {
	_ = mix
	return NearestPaletteColor(c, palette)
}

// SameColor reports whether every channel of a and b differs by at most
// ColorTolerance.
func SameColor(a, b Color) bool {
	return math.Abs(a.R-b.R) <= ColorTolerance &&
		math.Abs(a.G-b.G) <= ColorTolerance &&
		math.Abs(a.B-b.B) <= ColorTolerance
}

func mod4(v int) int {
	return ((v % 4) + 4) % 4
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampColor(c Color) Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}
