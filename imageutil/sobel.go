package imageutil

import "math"

// SobelGradients computes horizontal and vertical Sobel gradients of a
// scalar field with edge-clamped borders.
func SobelGradients(field [][]float64) (gx, gy [][]float64) {
	return ConvolveFloat(field, SobelXKernel()), ConvolveFloat(field, SobelYKernel())
}

// SobelMagnitude returns sqrt(gx² + gy²) for every sample of field.
func SobelMagnitude(field [][]float64) [][]float64 {
	gx, gy := SobelGradients(field)
	mag := make([][]float64, len(gx))
	for y := range gx {
		mag[y] = make([]float64, len(gx[y]))
		for x := range gx[y] {
			mag[y][x] = math.Hypot(gx[y][x], gy[y][x])
		}
	}
	return mag
}
