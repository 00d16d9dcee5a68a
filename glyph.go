package knitmosaic

import "fmt"

// Glyph is one of the fixed stitch shapes.
type Glyph int

const (
	// GlyphNone marks a background cell; nothing is drawn.
	GlyphNone Glyph = iota
	GlyphDiamond
	GlyphSquare
	GlyphCircle
)

const (
	// EdgeBiasWeight scales EdgeCrispness into the probability that an
	// edge cell is forced to a diamond.
	EdgeBiasWeight = 0.3

	// EdgeDarkening is the largest fraction by which LuminancePolicy
	// darkens the tone of an edge cell.
	EdgeDarkening = 0.3

	DefaultDarkCut = 0.20
	DefaultMidCut  = 0.50
)

func (g Glyph) String() string {
	switch g {
	case GlyphNone:
		return "none"
	case GlyphDiamond:
		return "diamond"
	case GlyphSquare:
		return "square"
	case GlyphCircle:
		return "circle"
	}
	return fmt.Sprintf("Glyph(%d)", int(g))
}

// Rune returns the character used for the glyph in text output.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphDiamond:
		return '◆'
	case GlyphSquare:
		return '■'
	case GlyphCircle:
		return '●'
	}
	return ' '
}

// FrameContext carries the frame-wide facts a GlyphPolicy may consult.
type FrameContext struct {
	Prominent    Color
	HasProminent bool
	Params       KnitParams
}

// GlyphPolicy decides the shape of a non-background cell.
type GlyphPolicy interface {
	Name() string
	Pick(cell Cell, fc FrameContext) Glyph
}

// SelectGlyph applies policy to cell, returning GlyphNone for background
// cells without consulting the policy.
func SelectGlyph(policy GlyphPolicy, cell Cell, fc FrameContext) Glyph {
	if cell.Background {
		return GlyphNone
	}
	return policy.Pick(cell, fc)
}

// EdgeBiasRoll returns a value in [0, 1) that depends only on the cell
// position and seed.
func EdgeBiasRoll(x, y int, seed uint64) float64 {
	z := seed ^ (uint64(uint32(x)) << 32) ^ uint64(uint32(y))
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}

// edgeOverride reports whether an edge cell should be forced to a diamond.
func edgeOverride(cell Cell, p KnitParams) bool {
	if !cell.Edge || p.EdgeCrispness <= 0 {
		return false
	}
	return EdgeBiasRoll(cell.X, cell.Y, p.Seed) < p.EdgeCrispness*EdgeBiasWeight
}

// ProminencePolicy checkerboards circles and squares over the prominent
// color and uses diamonds for everything else. Edge cells may be forced
// to diamonds.
type ProminencePolicy struct{}

func (ProminencePolicy) Name() string { return "prominence" }

func (ProminencePolicy) Pick(cell Cell, fc FrameContext) Glyph {
	g := GlyphDiamond
	if fc.HasProminent && SameColor(cell.Color, fc.Prominent) {
		if (cell.X+cell.Y)%2 == 0 {
			g = GlyphCircle
		} else {
			g = GlyphSquare
		}
	}
	if edgeOverride(cell, fc.Params) {
		g = GlyphDiamond
	}
	return g
}

// LuminancePolicy picks the glyph from the cell's tone: diamonds below
// DarkCut, squares below MidCut, circles above. Edge cells are darkened by
// up to EdgeDarkening before the comparison.
type LuminancePolicy struct {
	DarkCut float64
	MidCut  float64
}

// NewLuminancePolicy returns a LuminancePolicy with the default cut points.
func NewLuminancePolicy() LuminancePolicy {
	return LuminancePolicy{DarkCut: DefaultDarkCut, MidCut: DefaultMidCut}
}

func (LuminancePolicy) Name() string { return "luminance" }

func (lp LuminancePolicy) Pick(cell Cell, fc FrameContext) Glyph {
	tone := cell.Tone
	if cell.Edge && fc.Params.EdgeCrispness > 0 {
		tone *= 1 - EdgeDarkening*fc.Params.EdgeCrispness
	}
	switch {
	case tone < lp.DarkCut:
		return GlyphDiamond
	case tone < lp.MidCut:
		return GlyphSquare
	default:
		return GlyphCircle
	}
}

// PolicyByName returns the named glyph policy.
func PolicyByName(name string) (GlyphPolicy, error) {
	switch name {
	case "", "prominence":
		return ProminencePolicy{}, nil
	case "luminance":
		return NewLuminancePolicy(), nil
	}
	return nil, fmt.Errorf("unknown glyph policy %q", name)
}
