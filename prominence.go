package knitmosaic

// ColorCounts tallies quantized colors in first-seen order, skipping any
// color that matches background within ColorTolerance.
func ColorCounts(colors []Color, background Color) *OrderedMap[Color, int] {
	counts := NewOrderedMap[Color, int]()
	for _, c := range colors {
		if SameColor(c, background) {
			continue
		}
		n, _ := counts.Get(c)
		counts.Set(c, n+1)
	}
	return counts
}

// ProminentColor returns the most frequent non-background color. On a tie
// the color seen first wins. ok is false when every color is background.
func ProminentColor(colors []Color, background Color) (prominent Color, ok bool) {
	best := 0
	ColorCounts(colors, background).Iterate(func(c Color, n int) {
		if n > best {
			prominent, best = c, n
		}
	})
	return prominent, best > 0
}

// cellColors extracts the quantized colors of cells in grid order.
func cellColors(cells []Cell) []Color {
	colors := make([]Color, len(cells))
	for i, c := range cells {
		colors[i] = c.Color
	}
	return colors
}
