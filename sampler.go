package knitmosaic

import (
	"image"

	"github.com/stitchwork/knitmosaic/imageutil"
)

// TransparentAlpha is the alpha below which a sampled cell is treated as
// background.
const TransparentAlpha = 0.05

// Sample is one downsampled grid cell.
type Sample struct {
	Color Color
	Alpha float64
}

// Transparent reports whether the sample should be drawn as background.
func (s Sample) Transparent() bool {
	return s.Alpha < TransparentAlpha
}

// SampleGrid is a cols x rows buffer of samples in row-major order.
type SampleGrid struct {
	Cols, Rows int
	Samples    []Sample
}

// At returns the sample at (x, y).
func (g *SampleGrid) At(x, y int) Sample {
	return g.Samples[y*g.Cols+x]
}

// Len returns the number of cells.
func (g *SampleGrid) Len() int {
	return len(g.Samples)
}

// SampleImage downsamples img to a cols x rows grid, one sample per cell,
// using nearest-neighbor resampling. A non-positive dimension gives an
// empty grid.
func SampleImage(img image.Image, cols, rows int) *SampleGrid {
	return SampleImageWith(img, cols, rows, imageutil.InterpolationNearest)
}

// SampleImageWith is SampleImage with an explicit resampling filter.
func SampleImageWith(img image.Image, cols, rows int, interp imageutil.Interpolation) *SampleGrid {
	if img == nil || cols <= 0 || rows <= 0 {
		return &SampleGrid{}
	}
	small := imageutil.Resize(img, cols, rows, interp)
	if small.Width() != cols || small.Height() != rows {
		return &SampleGrid{}
	}

	g := &SampleGrid{
		Cols:    cols,
		Rows:    rows,
		Samples: make([]Sample, 0, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := small.NRGBAAt(x, y)
			g.Samples = append(g.Samples, Sample{
				Color: Color{
					R: float64(c.R) / 255,
					G: float64(c.G) / 255,
					B: float64(c.B) / 255,
				},
				Alpha: float64(c.A) / 255,
			})
		}
	}
	return g
}
