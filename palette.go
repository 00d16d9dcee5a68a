package knitmosaic

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colors every palette holds.
const PaletteSize = 3

//go:embed palettedata/*.json
var paletteFS embed.FS

var (
	ErrEmptyPalette           = errors.New("palette has no colors")
	ErrPaletteSize            = fmt.Errorf("palette must have exactly %d colors", PaletteSize)
	ErrBackgroundNotInPalette = errors.New("background is not a palette member")
)

// Palette is an ordered, fixed set of three colors, one of which is the
// background. Quantization always yields a member of the set.
type Palette struct {
	name       string
	colors     []Color
	background int
}

// paletteFile is the JSON layout of a palette document.
type paletteFile struct {
	Name       string   `json:"name"`
	Colors     []string `json:"colors"`
	Background int      `json:"background"`
}

// NewPalette validates colors and returns a Palette whose background is
// colors[background].
func NewPalette(name string, colors []Color, background int) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if len(colors) != PaletteSize {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteSize, len(colors))
	}
	if background < 0 || background >= len(colors) {
		return nil, fmt.Errorf("%w: index %d", ErrBackgroundNotInPalette, background)
	}
	p := &Palette{
		name:       name,
		colors:     make([]Color, len(colors)),
		background: background,
	}
	for i, c := range colors {
		p.colors[i] = clampColor(c)
	}
	return p, nil
}

// DefaultPalette returns the navy/gold/ecru palette with ecru as the
// background.
func DefaultPalette() *Palette {
	p, err := NewPalette("sweater", []Color{
		hexColor("#00367F"),
		hexColor("#FFC72C"),
		hexColor("#F2EBDD"),
	}, 2)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the palette's name.
func (p *Palette) Name() string { return p.name }

// Colors returns a copy of the palette entries in order.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Background returns the background entry.
func (p *Palette) Background() Color { return p.colors[p.background] }

// BackgroundIndex returns the position of the background entry.
func (p *Palette) BackgroundIndex() int { return p.background }

// Nearest quantizes c to the closest palette entry.
func (p *Palette) Nearest(c Color) Color {
	return NearestPaletteColor(c, p.colors)
}

// IsBackground reports whether c matches the background within
// ColorTolerance.
func (p *Palette) IsBackground(c Color) bool {
	return SameColor(c, p.Background())
}

// Index returns the position of c in the palette, or -1.
func (p *Palette) Index(c Color) int {
	for i, pc := range p.colors {
		if SameColor(c, pc) {
			return i
		}
	}
	return -1
}

// LoadPalette loads a palette by embedded name (see PaletteNames) or from
// a JSON file on disk.
func LoadPalette(name string) (*Palette, error) {
	data, vfsErr := paletteFS.ReadFile(fmt.Sprintf("palettedata/%s.json", name))
	if vfsErr != nil {
		var fsErr error
		data, fsErr = os.ReadFile(name)
		if fsErr != nil {
			return nil, fmt.Errorf("error reading palette %q: %w", name, fsErr)
		}
	}
	return ParsePalette(data)
}

// ParsePalette decodes a JSON palette document.
func ParsePalette(data []byte) (*Palette, error) {
	var pf paletteFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("error unmarshalling palette: %w", err)
	}
	colors := make([]Color, 0, len(pf.Colors))
	for _, h := range pf.Colors {
		c, err := colorful.Hex(normalizeHex(h))
		if err != nil {
			return nil, fmt.Errorf("error parsing color %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return NewPalette(pf.Name, colors, pf.Background)
}

// MarshalJSON encodes the palette in the same layout ParsePalette reads.
func (p *Palette) MarshalJSON() ([]byte, error) {
	pf := paletteFile{Name: p.name, Background: p.background}
	for _, c := range p.colors {
		pf.Colors = append(pf.Colors, strings.ToUpper(c.Hex()))
	}
	return json.Marshal(pf)
}

// PaletteNames lists the embedded palettes.
func PaletteNames() []string {
	entries, err := paletteFS.ReadDir("palettedata")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

func normalizeHex(h string) string {
	h = strings.TrimSpace(h)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	return strings.ToLower(h)
}

func hexColor(h string) Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}
