package knitmosaic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	MinStitchSize = 4
	MaxStitchSize = 100
)

var ErrInvalidParams = errors.New("invalid knit params")

// KnitParams is the per-render configuration snapshot. The renderer never
// mutates it.
type KnitParams struct {
	// StitchSize is the edge length of one cell in pixels.
	StitchSize int `json:"stitch_size"`
	// PaletteMix is kept for configuration compatibility; quantization is
	// always strict.
	PaletteMix float64 `json:"palette_mix"`
	// Dither scales the ordered-dither offset, 0..1.
	Dither float64 `json:"dither"`
	// Contrast multiplier about mid-gray, 0.5..1.5.
	Contrast float64 `json:"contrast"`
	// Saturation multiplier, 0..2.
	Saturation float64 `json:"saturation"`
	// EdgeCrispness biases edge cells towards diamonds, 0..1.
	EdgeCrispness float64 `json:"edge_crispness"`
	ShowGridlines bool    `json:"show_gridlines"`
	// Seed selects the edge-bias pattern.
	Seed uint64 `json:"seed"`
}

// DefaultParams returns the stock settings.
func DefaultParams() KnitParams {
	return KnitParams{
		StitchSize:    12,
		PaletteMix:    1,
		Dither:        0.25,
		Contrast:      1,
		Saturation:    1,
		EdgeCrispness: 0.5,
	}
}

type paramRange struct {
	name   string
	v      float64
	lo, hi float64
}

func (p KnitParams) ranges() []paramRange {
	return []paramRange{
		{"palette_mix", p.PaletteMix, 0, 1},
		{"dither", p.Dither, 0, 1},
		{"contrast", p.Contrast, 0.5, 1.5},
		{"saturation", p.Saturation, 0, 2},
		{"edge_crispness", p.EdgeCrispness, 0, 1},
	}
}

// Validate reports the first out-of-range field.
func (p KnitParams) Validate() error {
	if p.StitchSize <= 0 {
		return fmt.Errorf("%w: stitch_size %d must be positive", ErrInvalidParams, p.StitchSize)
	}
	for _, r := range p.ranges() {
		if math.IsNaN(r.v) || r.v < r.lo || r.v > r.hi {
			return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidParams, r.name, r.v, r.lo, r.hi)
		}
	}
	return nil
}

// Normalized returns a copy with every field forced into range. The
// renderer works on normalized params, so out-of-range input degrades
// instead of failing.
func (p KnitParams) Normalized() KnitParams {
	p.StitchSize = min(max(p.StitchSize, MinStitchSize), MaxStitchSize)
	p.PaletteMix = clampRange(p.PaletteMix, 0, 1, 1)
	p.Dither = clampRange(p.Dither, 0, 1, 0)
	p.Contrast = clampRange(p.Contrast, 0.5, 1.5, 1)
	p.Saturation = clampRange(p.Saturation, 0, 2, 1)
	p.EdgeCrispness = clampRange(p.EdgeCrispness, 0, 1, 0)
	return p
}

// GridSize returns the number of cells per side for a canvas of the given
// size.
func (p KnitParams) GridSize(canvasSize int) int {
	if canvasSize <= 0 {
		return 0
	}
	return canvasSize / p.Normalized().StitchSize
}

// LoadParams reads a JSON params file. Fields missing from the file keep
// their DefaultParams value.
func LoadParams(path string) (KnitParams, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("error reading params: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("error unmarshalling params: %w", err)
	}
	return p, p.Validate()
}

// clampRange clamps v to [lo, hi]; NaN becomes def.
func clampRange(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return math.Min(math.Max(v, lo), hi)
}
