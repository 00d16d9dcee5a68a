// Package knitmosaic renders images as three-color knitted mosaics.
package knitmosaic

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"

	"github.com/stitchwork/knitmosaic/imageutil"
)

const (
	// GlyphScale is the glyph size as a fraction of the cell size.
	GlyphScale = 0.8

	// GridlineWidth is the stroke width of gridlines in pixels.
	GridlineWidth = 1.0
)

var (
	ErrNoSurface = errors.New("no drawing surface")
	ErrNoImage   = errors.New("no source image")
)

// DefaultGridColor is a translucent black.
var DefaultGridColor = color.NRGBA{A: 0x40}

// Renderer turns source images into knitted mosaics. A Renderer holds only
// immutable configuration, so one value may serve any number of frames
// and goroutines; every render builds its grids from scratch.
type Renderer struct {
	palette   *Palette
	policy    GlyphPolicy
	interp    imageutil.Interpolation
	gridColor color.NRGBA
	logger    *slog.Logger
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer. Defaults: DefaultPalette,
// ProminencePolicy, nearest-neighbor sampling, DefaultGridColor and a
// logger that discards everything.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		palette:   DefaultPalette(),
		policy:    ProminencePolicy{},
		interp:    imageutil.InterpolationNearest,
		gridColor: DefaultGridColor,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithPalette sets the active palette. Palettes come from NewPalette or
// LoadPalette; a nil or zero-value palette is ignored.
func WithPalette(p *Palette) RendererOption {
	return func(r *Renderer) {
		if p != nil && len(p.colors) == PaletteSize {
			r.palette = p
		}
	}
}

// WithPolicy sets the glyph policy. A nil policy is ignored.
func WithPolicy(policy GlyphPolicy) RendererOption {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithInterpolation sets the filter used to downsample the source.
func WithInterpolation(interp imageutil.Interpolation) RendererOption {
	return func(r *Renderer) {
		r.interp = interp
	}
}

// WithGridColor sets the gridline color.
func WithGridColor(c color.Color) RendererOption {
	return func(r *Renderer) {
		r.gridColor = toNRGBA(c)
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Palette returns the active palette.
func (r *Renderer) Palette() *Palette { return r.palette }

// Policy returns the glyph policy.
func (r *Renderer) Policy() GlyphPolicy { return r.policy }

// Frame is the result of one render pass.
type Frame struct {
	Size       int
	Cols, Rows int
	// CellSize is the cell edge in pixels; Size/Cols.
	CellSize     float64
	Cells        []Cell
	Edges        *EdgeMap
	Prominent    Color
	HasProminent bool
	Palette      *Palette
}

// At returns the cell at (x, y).
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Cols+x]
}

// Empty reports whether the frame has no cells.
func (f *Frame) Empty() bool {
	return f.Cols == 0 || f.Rows == 0
}

// GlyphCounts tallies the glyphs assigned in the frame.
func (f *Frame) GlyphCounts() map[Glyph]int {
	counts := make(map[Glyph]int)
	for _, c := range f.Cells {
		counts[c.Glyph]++
	}
	return counts
}

// Compute runs sampling, edge detection, the cell pipeline, prominence
// analysis and glyph selection for a size x size canvas without drawing.
func (r *Renderer) Compute(img image.Image, params KnitParams, size int) (*Frame, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	p := params.Normalized()
	n := p.GridSize(size)
	frame := &Frame{
		Size:    max(size, 0),
		Cols:    n,
		Rows:    n,
		Edges:   &EdgeMap{},
		Palette: r.palette,
	}
	if n == 0 {
		return frame, nil
	}
	frame.CellSize = float64(size) / float64(n)

	samples := SampleImageWith(img, n, n, r.interp)
	if samples.Len() == 0 {
		// Nothing to sample: background only.
		frame.Cols, frame.Rows, frame.CellSize = 0, 0, 0
		return frame, nil
	}
	frame.Edges = DetectEdges(samples)
	frame.Cells = BuildCells(samples, frame.Edges, p, r.palette)
	frame.Prominent, frame.HasProminent = ProminentColor(cellColors(frame.Cells), r.palette.Background())

	fc := FrameContext{
		Prominent:    frame.Prominent,
		HasProminent: frame.HasProminent,
		Params:       p,
	}
	for i := range frame.Cells {
		frame.Cells[i].Glyph = SelectGlyph(r.policy, frame.Cells[i], fc)
	}
	return frame, nil
}

// RenderFrame fills s with the background, then draws optional gridlines
// and one glyph per non-background cell. A nil surface fails before
// anything is computed.
func (r *Renderer) RenderFrame(s Surface, img image.Image, params KnitParams, size int) (*Frame, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if img == nil {
		return nil, ErrNoImage
	}
	s.SetSmoothing(false)
	s.FillRect(0, 0, float64(max(size, 0)), float64(max(size, 0)), r.palette.Background())

	frame, err := r.Compute(img, params, size)
	if err != nil {
		return nil, err
	}
	if frame.Empty() {
		r.logger.Debug("empty grid, background only",
			"size", size, "stitch", params.Normalized().StitchSize)
		return frame, nil
	}

	if params.ShowGridlines {
		r.drawGridlines(s, frame)
	}
	drawn := 0
	for _, cell := range frame.Cells {
		if cell.Glyph == GlyphNone {
			continue
		}
		drawGlyph(s, frame.CellSize, cell)
		drawn++
	}

	r.logger.Debug("frame rendered",
		"cols", frame.Cols,
		"rows", frame.Rows,
		"edges", frame.Edges.Count(),
		"prominent", prominentLabel(frame),
		"glyphs", drawn,
		"policy", r.policy.Name())
	return frame, nil
}

func prominentLabel(f *Frame) string {
	if !f.HasProminent {
		return "none"
	}
	return f.Prominent.Hex()
}

// drawGridlines strokes one line per interior row and column boundary.
func (r *Renderer) drawGridlines(s Surface, f *Frame) {
	size := float64(f.Size)
	for i := 1; i < f.Cols; i++ {
		x := math.Round(float64(i)*f.CellSize) + 0.5
		s.StrokeLine(x, 0, x, size, GridlineWidth, r.gridColor)
	}
	for i := 1; i < f.Rows; i++ {
		y := math.Round(float64(i)*f.CellSize) + 0.5
		s.StrokeLine(0, y, size, y, GridlineWidth, r.gridColor)
	}
}

// drawGlyph draws cell's glyph centered in its cell. Squares and diamonds
// sit on integer pixel centers, circles on half-pixel centers.
func drawGlyph(s Surface, cellSize float64, cell Cell) {
	g := cellSize * GlyphScale
	half := g / 2
	cx := (float64(cell.X) + 0.5) * cellSize
	cy := (float64(cell.Y) + 0.5) * cellSize

	switch cell.Glyph {
	case GlyphSquare:
		cx, cy = math.Round(cx), math.Round(cy)
		s.FillRect(cx-half, cy-half, g, g, cell.Color)
	case GlyphDiamond:
		cx, cy = math.Round(cx), math.Round(cy)
		s.FillPolygon([]Point{
			{cx, cy - half},
			{cx + half, cy},
			{cx, cy + half},
			{cx - half, cy},
		}, cell.Color)
	case GlyphCircle:
		cx, cy = math.Floor(cx)+0.5, math.Floor(cy)+0.5
		s.FillCircle(cx, cy, half, cell.Color)
	}
}
