package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/stitchwork/knitmosaic"
	"github.com/stitchwork/knitmosaic/canvas"
	"github.com/stitchwork/knitmosaic/imageutil"
	"github.com/stitchwork/knitmosaic/internal/parallel"
	"github.com/stitchwork/knitmosaic/termview"
)

type RenderCmd struct {
	KnitFlags `embed:""`

	Output  string `help:"Output file (.png, .bmp or .gif)." short:"o" default:"knit.png"`
	Caption string `help:"Text stamped in the bottom-left corner."`
	Smooth  bool   `help:"Anti-alias glyph edges."`
}

func (c *RenderCmd) Run(logger *slog.Logger) error {
	start := time.Now()
	r, err := c.Renderer(logger)
	if err != nil {
		return err
	}
	src, err := c.Source()
	if err != nil {
		return err
	}

	cv := canvas.New(c.Size, c.Size)
	frame, err := r.RenderFrame(smoothing{cv, c.Smooth}, src, c.Params(), c.Size)
	if err != nil {
		return fmt.Errorf("render %s: %w", c.Input, err)
	}
	if err := cv.DrawCaption(c.Caption, float64(max(c.Size/30, 10)), r.Palette().Colors()[0]); err != nil {
		return err
	}
	if err := cv.Save(c.Output); err != nil {
		return err
	}

	logger.Info("rendered",
		"input", c.Input,
		"output", c.Output,
		"grid", fmt.Sprintf("%dx%d", frame.Cols, frame.Rows),
		"elapsed", time.Since(start))
	return nil
}

// smoothing keeps a canvas in the anti-aliasing mode chosen on the
// command line, whatever the renderer requests.
type smoothing struct {
	*canvas.Canvas
	on bool
}

func (s smoothing) SetSmoothing(bool) {
	s.Canvas.SetSmoothing(s.on)
}

type AnimateCmd struct {
	KnitFlags `embed:""`

	Output  string `help:"Output GIF." short:"o" default:"knit.gif"`
	Workers int    `help:"Frames rendered at once; 0 means one per CPU." default:"0"`
}

func (c *AnimateCmd) Run(logger *slog.Logger) error {
	start := time.Now()
	r, err := c.Renderer(logger)
	if err != nil {
		return err
	}
	src, err := imageutil.LoadGIF(c.Input)
	if err != nil {
		return err
	}
	frames := flattenGIF(src)
	if len(frames) == 0 {
		return fmt.Errorf("%s has no frames", c.Input)
	}

	gifPalette := color.Palette{}
	for _, pc := range r.Palette().Colors() {
		gifPalette = append(gifPalette, pc)
	}

	params := c.Params()
	out := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     src.Delay,
		LoopCount: src.LoopCount,
	}
	// Every frame gets its own canvas, so frames never share a surface.
	err = parallel.Each(len(frames), c.Workers, func(i int) error {
		cv := canvas.New(c.Size, c.Size)
		if _, err := r.RenderFrame(cv, c.prepare(frames[i]), params, c.Size); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		pm := image.NewPaletted(cv.Bounds(), gifPalette)
		draw.Draw(pm, pm.Bounds(), cv.Image(), image.Point{}, draw.Src)
		out.Image[i] = pm
		return nil
	})
	if err != nil {
		return err
	}
	if err := imageutil.SaveGIF(out, c.Output); err != nil {
		return err
	}

	logger.Info("animated",
		"input", c.Input,
		"output", c.Output,
		"frames", len(frames),
		"elapsed", time.Since(start))
	return nil
}

// flattenGIF composites each GIF frame over the previous ones so every
// returned image is a full picture anchored at the origin.
func flattenGIF(g *gif.GIF) []image.Image {
	if len(g.Image) == 0 {
		return nil
	}
	w, h := g.Config.Width, g.Config.Height
	if w <= 0 || h <= 0 {
		w, h = g.Image[0].Bounds().Max.X, g.Image[0].Bounds().Max.Y
	}
	acc := imageutil.NewNRGBAImage(w, h)
	frames := make([]image.Image, 0, len(g.Image))
	for i, pm := range g.Image {
		var restore *imageutil.NRGBAImage
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			restore = acc.Clone()
		}
		draw.Draw(acc.NRGBA, pm.Bounds(), pm, pm.Bounds().Min, draw.Over)
		frames = append(frames, acc.Clone().NRGBA)

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(acc.NRGBA, pm.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				acc = restore
			}
		}
	}
	return frames
}

type ANSICmd struct {
	KnitFlags `embed:""`

	Output string `help:"Write to this file instead of stdout." short:"o"`
}

func (c *ANSICmd) Run(logger *slog.Logger) error {
	r, err := c.Renderer(logger)
	if err != nil {
		return err
	}
	src, err := c.Source()
	if err != nil {
		return err
	}
	frame, err := r.Compute(src, c.Params(), c.Size)
	if err != nil {
		return err
	}
	text := frame.ANSI()
	if c.Output == "" {
		_, err = fmt.Print(text)
		return err
	}
	if err := os.WriteFile(c.Output, []byte(text), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", c.Output, err)
	}
	logger.Info("ansi written", "output", c.Output, "bytes", len(text))
	return nil
}

type PreviewCmd struct {
	KnitFlags `embed:""`
}

func (c *PreviewCmd) Run(logger *slog.Logger) error {
	r, err := c.Renderer(logger)
	if err != nil {
		return err
	}
	src, err := c.Source()
	if err != nil {
		return err
	}
	frame, err := r.Compute(src, c.Params(), c.Size)
	if err != nil {
		return err
	}
	return termview.Run(frame)
}

type PalettesCmd struct{}

func (c *PalettesCmd) Run(logger *slog.Logger) error {
	enc := json.NewEncoder(os.Stdout)
	for _, name := range knitmosaic.PaletteNames() {
		p, err := knitmosaic.LoadPalette(name)
		if err != nil {
			logger.Error("bad embedded palette", "name", name, "error", err)
			continue
		}
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}
