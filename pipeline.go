package knitmosaic

// Cell is one grid position for a single render pass.
type Cell struct {
	X, Y int
	// Color is the quantized palette color.
	Color Color
	// Tone is the luminance of the adjusted color before quantization.
	Tone float64
	Edge bool
	// Background is set when the cell matches the background color or was
	// transparent in the source; such cells get no glyph.
	Background bool
	Glyph      Glyph
}

// Adjust applies contrast, saturation and dither to c, in that order.
func Adjust(c Color, p KnitParams, x, y int) Color {
	c = ApplyContrast(c, p.Contrast)
	c = ApplySaturation(c, p.Saturation)
	return ApplyDither(c, p.Dither, x, y)
}

// TransformCell runs the full per-cell chain and returns both the
// adjusted color and its quantized palette color. Quantization is last so
// the dither offset can tip borderline colors into another bucket.
func TransformCell(c Color, p KnitParams, palette []Color, x, y int) (adjusted, quantized Color) {
	adjusted = Adjust(c, p, x, y)
	return adjusted, ApplyPaletteMix(adjusted, p.PaletteMix, palette)
}

// BuildCells runs the cell pipeline over every sample. Transparent samples
// become background cells without going through the color chain.
func BuildCells(g *SampleGrid, edges *EdgeMap, p KnitParams, pal *Palette) []Cell {
	colors := pal.Colors()
	cells := make([]Cell, 0, g.Len())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			s := g.At(x, y)
			cell := Cell{X: x, Y: y, Edge: edges.At(x, y)}
			if s.Transparent() {
				cell.Color = pal.Background()
				cell.Tone = Luminance(cell.Color)
				cell.Background = true
			} else {
				adjusted, quantized := TransformCell(s.Color, p, colors, x, y)
				cell.Color = quantized
				cell.Tone = Luminance(adjusted)
				cell.Background = pal.IsBackground(quantized)
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
