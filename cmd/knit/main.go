// Command knit turns images into knitted mosaics.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/stitchwork/knitmosaic"
)

type CLI struct {
	Verbose bool            `help:"Enable debug logging." short:"v"`
	Config  kong.ConfigFlag `help:"JSON file of knit params; keys are flag names in snake_case." placeholder:"FILE"`

	Render   RenderCmd   `cmd:"" help:"Render an image to a PNG/BMP/GIF mosaic."`
	Animate  AnimateCmd  `cmd:"" help:"Render every frame of an animated GIF."`
	ANSI     ANSICmd     `cmd:"" name:"ansi" help:"Print the mosaic as ANSI truecolor text."`
	Preview  PreviewCmd  `cmd:"" help:"Show the mosaic in the terminal until a key is pressed."`
	Palettes PalettesCmd `cmd:"" help:"List the embedded palettes."`
}

// defaultVars exposes DefaultParams to the flag defaults.
func defaultVars() kong.Vars {
	d := knitmosaic.DefaultParams()
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return kong.Vars{
		"stitch_size":    strconv.Itoa(d.StitchSize),
		"palette_mix":    f(d.PaletteMix),
		"dither":         f(d.Dither),
		"contrast":       f(d.Contrast),
		"saturation":     f(d.Saturation),
		"edge_crispness": f(d.EdgeCrispness),
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("knit"),
		kong.Description("Turn images into three-color knitted mosaics."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON),
		defaultVars(),
	)

	logger := newLogger(cli.Verbose)
	if err := kctx.Run(logger); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
