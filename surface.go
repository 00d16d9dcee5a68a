package knitmosaic

import (
	"fmt"
	"image/color"
)

// Point is a position in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Surface is the 2D drawing target a frame is rendered onto. Coordinates
// are in pixels with the origin at the top left.
type Surface interface {
	// SetSmoothing turns anti-aliasing on or off for later draws.
	SetSmoothing(on bool)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillPolygon(pts []Point, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpSmoothing OpKind = iota
	OpRect
	OpCircle
	OpPolygon
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpSmoothing:
		return "smoothing"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpPolygon:
		return "polygon"
	case OpLine:
		return "line"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// DrawOp is one recorded draw call. Which fields are meaningful depends
// on Kind: rects use X, Y, W, H; circles X, Y, R; polygons Points; lines
// X, Y, X1, Y1 and Width; smoothing toggles Smooth.
type DrawOp struct {
	Kind   OpKind
	X, Y   float64
	W, H   float64
	R      float64
	X1, Y1 float64
	Width  float64
	Points []Point
	Color  color.NRGBA
	Smooth bool
}

// Recorder is a Surface that keeps the ordered list of draw calls made on
// it.
type Recorder struct {
	Ops []DrawOp
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) SetSmoothing(on bool) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpSmoothing, Smooth: on})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: toNRGBA(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: toNRGBA(c)})
}

func (r *Recorder) FillPolygon(pts []Point, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{
		Kind:   OpPolygon,
		Points: append([]Point(nil), pts...),
		Color:  toNRGBA(c),
	})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{
		Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: toNRGBA(c),
	})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Replay issues the recorded ops, in order, against dst.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpSmoothing:
			dst.SetSmoothing(op.Smooth)
		case OpRect:
			dst.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case OpCircle:
			dst.FillCircle(op.X, op.Y, op.R, op.Color)
		case OpPolygon:
			dst.FillPolygon(op.Points, op.Color)
		case OpLine:
			dst.StrokeLine(op.X, op.Y, op.X1, op.Y1, op.Width, op.Color)
		}
	}
}
