// Package termview shows a rendered frame in the terminal, one terminal
// cell per grid cell.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/stitchwork/knitmosaic"
)

// tcellColor converts a palette color to a tcell truecolor.
func tcellColor(c knitmosaic.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw paints frame at the top-left of screen, clipped to the screen size,
// and shows it. It returns the number of grid cells drawn.
func Draw(screen tcell.Screen, frame *knitmosaic.Frame) int {
	screen.Clear()
	if frame == nil || frame.Empty() {
		screen.Show()
		return 0
	}
	w, h := screen.Size()
	bg := tcellColor(frame.Palette.Background())
	base := tcell.StyleDefault.Background(bg)

	drawn := 0
	for y := 0; y < frame.Rows && y < h; y++ {
		for x := 0; x < frame.Cols && x < w; x++ {
			cell := frame.At(x, y)
			style := base
			if cell.Glyph != knitmosaic.GlyphNone {
				style = style.Foreground(tcellColor(cell.Color))
			}
			screen.SetContent(x, y, cell.Glyph.Rune(), nil, style)
			drawn++
		}
	}
	screen.Show()
	return drawn
}

// Run opens the terminal, shows frame and waits for a key press. Resizes
// repaint the frame.
func Run(frame *knitmosaic.Frame) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	Draw(screen, frame)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, frame)
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
