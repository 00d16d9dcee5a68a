// Package canvas is a raster knitmosaic.Surface backed by an *image.RGBA.
// Polygons, circles and lines go through the freetype rasterizer; with
// smoothing off, partial coverage is thresholded so edges stay crisp.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/stitchwork/knitmosaic"
	"github.com/stitchwork/knitmosaic/imageutil"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is a drawing surface over an RGBA image.
type Canvas struct {
	img    *image.RGBA
	rast   *raster.Rasterizer
	smooth bool
}

// New creates a transparent width x height canvas with smoothing on.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:   raster.NewRasterizer(width, height),
		smooth: true,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Smoothing reports whether anti-aliasing is on.
func (c *Canvas) Smoothing() bool { return c.smooth }

// Save writes the canvas to path in the format its extension names.
func (c *Canvas) Save(path string) error {
	return imageutil.SaveImage(c.img, path)
}

func (c *Canvas) SetSmoothing(on bool) {
	c.smooth = on
}

// FillRect fills the pixel rectangle covering [x, x+w) x [y, y+h), with
// edges rounded to whole pixels.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	k := r * kappa
	c.rast.Clear()
	c.rast.Start(pt(cx+r, cy))
	c.rast.Add3(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r))
	c.rast.Add3(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy))
	c.rast.Add3(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r))
	c.rast.Add3(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
	c.rast.Rasterize(c.painter(col))
}

func (c *Canvas) FillPolygon(pts []knitmosaic.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.rast.Clear()
	c.rast.Start(pt(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		c.rast.Add1(pt(p.X, p.Y))
	}
	c.rast.Add1(pt(pts[0].X, pts[0].Y))
	c.rast.Rasterize(c.painter(col))
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	var path raster.Path
	path.Start(pt(x0, y0))
	path.Add1(pt(x1, y1))
	c.rast.Clear()
	c.rast.AddStroke(path, fix(width), raster.ButtCapper, raster.BevelJoiner)
	c.rast.Rasterize(c.painter(col))
}

// painter returns the painter for the current smoothing mode.
func (c *Canvas) painter(col color.Color) raster.Painter {
	p := raster.NewRGBAPainter(c.img)
	p.SetColor(col)
	if c.smooth {
		return p
	}
	return crispPainter{inner: p}
}

// crispPainter drops spans with less than half coverage and paints the
// rest at full coverage.
type crispPainter struct {
	inner raster.Painter
}

func (cp crispPainter) Paint(ss []raster.Span, done bool) {
	kept := ss[:0:0]
	for _, s := range ss {
		if s.Alpha < 0x8000 {
			continue
		}
		s.Alpha = 0xffff
		kept = append(kept, s)
	}
	cp.inner.Paint(kept, done)
}

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x), Y: fix(y)}
}
