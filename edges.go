package knitmosaic

import (
	"github.com/stitchwork/knitmosaic/imageutil"
)

// EdgeThreshold is the Sobel magnitude, in luminance units, above which a
// cell is an edge.
const EdgeThreshold = 0.15

// EdgeMap holds one edge flag per grid cell in row-major order.
type EdgeMap struct {
	Cols, Rows int
	Flags      []bool
}

// At reports whether (x, y) is an edge. Out-of-range cells are not.
func (m *EdgeMap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Cols || y >= m.Rows {
		return false
	}
	return m.Flags[y*m.Cols+x]
}

// Count returns the number of edge cells.
func (m *EdgeMap) Count() int {
	n := 0
	for _, f := range m.Flags {
		if f {
			n++
		}
	}
	return n
}

// LuminanceField returns the luminance of every sample as a rows x cols
// field.
func LuminanceField(g *SampleGrid) [][]float64 {
	field := imageutil.NewField(g.Cols, g.Rows)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			field[y][x] = Luminance(g.At(x, y).Color)
		}
	}
	return field
}

// DetectEdges runs a 3x3 Sobel operator over the luminance of the sampled
// grid and flags cells whose gradient magnitude exceeds EdgeThreshold.
// Gradients are measured between grid cells, not source pixels.
func DetectEdges(g *SampleGrid) *EdgeMap {
	m := &EdgeMap{Cols: g.Cols, Rows: g.Rows, Flags: make([]bool, g.Cols*g.Rows)}
	if g.Cols == 0 || g.Rows == 0 {
		return m
	}
	mag := imageutil.SobelMagnitude(LuminanceField(g))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			m.Flags[y*g.Cols+x] = mag[y][x] > EdgeThreshold
		}
	}
	return m
}
