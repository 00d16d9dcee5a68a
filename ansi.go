package knitmosaic

import (
	"fmt"
	"strings"
)

const (
	ESC = "\u001b"
)

// ansiStyle is the truecolor foreground/background pair of one terminal
// cell.
type ansiStyle struct {
	fg, bg string
}

// ansiColor formats c as a truecolor SGR parameter. base is 38 for
// foreground and 48 for background.
func ansiColor(base int, c Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%d;2;%d;%d;%d", base, r, g, b)
}

// ANSI renders the frame as one line of text per row, using the glyph
// runes on the palette background. Adjacent cells that share a style are
// written under a single escape sequence.
func (f *Frame) ANSI() string {
	if f.Empty() {
		return ""
	}
	bg := ansiColor(48, f.Palette.Background())
	var sb strings.Builder
	for y := 0; y < f.Rows; y++ {
		var current ansiStyle
		var run strings.Builder
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(formatANSICode(current, run.String()))
			run.Reset()
		}
		for x := 0; x < f.Cols; x++ {
			cell := f.At(x, y)
			style := ansiStyle{bg: bg}
			if cell.Glyph != GlyphNone {
				style.fg = ansiColor(38, cell.Color)
			}
			if style != current {
				flush()
				current = style
			}
			run.WriteRune(cell.Glyph.Rune())
		}
		flush()
		sb.WriteString(ESC + "[0m\n")
	}
	return sb.String()
}

// formatANSICode wraps text in the escape sequence for style.
func formatANSICode(style ansiStyle, text string) string {
	var code strings.Builder
	code.WriteString(ESC)
	code.WriteByte('[')
	if style.fg != "" {
		code.WriteString(style.fg)
		if style.bg != "" {
			code.WriteByte(';')
		}
	}
	code.WriteString(style.bg)
	code.WriteByte('m')
	code.WriteString(text)
	return code.String()
}

// Text renders the frame with glyph runes only, no color.
func (f *Frame) Text() string {
	var sb strings.Builder
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			sb.WriteRune(f.At(x, y).Glyph.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
