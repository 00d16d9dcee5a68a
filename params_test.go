package knitmosaic

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultParams invalid: %v", err)
	}
	if p.StitchSize != 12 || p.Dither != 0.25 || p.EdgeCrispness != 0.5 {
		t.Errorf("Unexpected defaults: %+v", p)
	}
	if p.Normalized() != p {
		t.Error("Normalizing defaults should be a no-op")
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*KnitParams)
	}{
		{"zero stitch", func(p *KnitParams) { p.StitchSize = 0 }},
		{"negative dither", func(p *KnitParams) { p.Dither = -0.1 }},
		{"contrast too low", func(p *KnitParams) { p.Contrast = 0.4 }},
		{"contrast too high", func(p *KnitParams) { p.Contrast = 1.6 }},
		{"saturation too high", func(p *KnitParams) { p.Saturation = 2.5 }},
		{"crispness NaN", func(p *KnitParams) { p.EdgeCrispness = math.NaN() }},
		{"mix above one", func(p *KnitParams) { p.PaletteMix = 1.2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
		})
	}

	// Stitch sizes outside 4..100 are clamped, not rejected.
	p := DefaultParams()
	p.StitchSize = 200
	if err := p.Validate(); err != nil {
		t.Errorf("Large stitch size should validate: %v", err)
	}
}

func TestParamsNormalized(t *testing.T) {
	t.Parallel()

	p := KnitParams{
		StitchSize:    1,
		PaletteMix:    math.NaN(),
		Dither:        3,
		Contrast:      0.1,
		Saturation:    -1,
		EdgeCrispness: math.NaN(),
		Seed:          7,
	}
	n := p.Normalized()
	want := KnitParams{
		StitchSize:    MinStitchSize,
		PaletteMix:    1,
		Dither:        1,
		Contrast:      0.5,
		Saturation:    0,
		EdgeCrispness: 0,
		Seed:          7,
	}
	if n != want {
		t.Errorf("Normalized() = %+v, want %+v", n, want)
	}
	if err := n.Validate(); err != nil {
		t.Errorf("Normalized params should validate: %v", err)
	}

	p.StitchSize = 500
	if got := p.Normalized().StitchSize; got != MaxStitchSize {
		t.Errorf("Expected stitch clamped to %d, got %d", MaxStitchSize, got)
	}
}

func TestGridSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stitch, size, want int
	}{
		{20, 40, 2},
		{12, 540, 45},
		{80, 50, 0},
		{1, 40, 10},
		{500, 1000, 10},
		{12, 0, 0},
		{12, -5, 0},
		{7, 50, 7},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.StitchSize = tt.stitch
		if got := p.GridSize(tt.size); got != tt.want {
			t.Errorf("GridSize(stitch=%d, size=%d) = %d, want %d", tt.stitch, tt.size, got, tt.want)
		}
	}
}

func TestLoadParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")
	doc := `{"stitch_size": 20, "dither": 0.5, "show_gridlines": true, "seed": 99}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	want := DefaultParams()
	want.StitchSize = 20
	want.Dither = 0.5
	want.ShowGridlines = true
	want.Seed = 99
	if p != want {
		t.Errorf("LoadParams = %+v, want %+v", p, want)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"contrast": 9}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(bad); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Expected ErrInvalidParams, got %v", err)
	}
	if _, err := LoadParams(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
