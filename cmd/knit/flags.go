package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/stitchwork/knitmosaic"
	"github.com/stitchwork/knitmosaic/imageutil"
)

// KnitFlags are the render settings shared by every rendering command.
type KnitFlags struct {
	Input string `arg:"" help:"Source image." type:"existingfile"`

	Size          int     `help:"Canvas size in pixels." default:"540"`
	StitchSize    int     `help:"Cell edge in pixels (clamped to 4-100)." default:"${stitch_size}"`
	PaletteMix    float64 `help:"Palette mix (kept for compatibility, quantization is always strict)." default:"${palette_mix}"`
	Dither        float64 `help:"Ordered dither amount, 0-1." default:"${dither}"`
	Contrast      float64 `help:"Contrast multiplier, 0.5-1.5." default:"${contrast}"`
	Saturation    float64 `help:"Saturation multiplier, 0-2." default:"${saturation}"`
	EdgeCrispness float64 `help:"Bias towards diamonds along edges, 0-1." default:"${edge_crispness}"`
	ShowGridlines bool    `help:"Draw gridlines between cells."`
	Seed          uint64  `help:"Seed for the edge-bias pattern."`

	Palette string `help:"Embedded palette name or palette JSON file." default:"sweater"`
	Policy  string `help:"Glyph policy." enum:"prominence,luminance" default:"prominence"`
	Interp  string `help:"Downsampling filter." enum:"nearest,approx,linear,area" default:"nearest"`
	Crop    bool   `help:"Crop the source to a centered square first." default:"true" negatable:""`
}

// Validate checks the numeric ranges before any file is touched.
func (f *KnitFlags) Validate() error {
	if f.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", f.Size)
	}
	return f.Params().Validate()
}

// Params returns the flags as a KnitParams snapshot.
func (f *KnitFlags) Params() knitmosaic.KnitParams {
	return knitmosaic.KnitParams{
		StitchSize:    f.StitchSize,
		PaletteMix:    f.PaletteMix,
		Dither:        f.Dither,
		Contrast:      f.Contrast,
		Saturation:    f.Saturation,
		EdgeCrispness: f.EdgeCrispness,
		ShowGridlines: f.ShowGridlines,
		Seed:          f.Seed,
	}
}

// Renderer builds a renderer from the palette, policy and filter flags.
func (f *KnitFlags) Renderer(logger *slog.Logger) (*knitmosaic.Renderer, error) {
	pal, err := knitmosaic.LoadPalette(f.Palette)
	if err != nil {
		return nil, err
	}
	policy, err := knitmosaic.PolicyByName(f.Policy)
	if err != nil {
		return nil, err
	}
	interp, ok := imageutil.ParseInterpolation(f.Interp)
	if !ok {
		return nil, fmt.Errorf("unknown interpolation %q", f.Interp)
	}
	return knitmosaic.NewRenderer(
		knitmosaic.WithPalette(pal),
		knitmosaic.WithPolicy(policy),
		knitmosaic.WithInterpolation(interp),
		knitmosaic.WithLogger(logger),
	), nil
}

// Source loads the input image, square-cropped when requested.
func (f *KnitFlags) Source() (image.Image, error) {
	img, err := imageutil.LoadImage(f.Input)
	if err != nil {
		return nil, err
	}
	return f.prepare(img), nil
}

func (f *KnitFlags) prepare(img image.Image) image.Image {
	if f.Crop {
		return imageutil.CropSquare(img)
	}
	return img
}
