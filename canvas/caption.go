package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DrawCaption writes text along the bottom-left corner of the canvas in Go
// Regular at the given point size.
func (c *Canvas) DrawCaption(text string, size float64, col color.Color) error {
	if text == "" {
		return nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse caption font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	descent := face.Metrics().Descent.Ceil()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(c.img.Bounds())
	ctx.SetDst(c.img)
	ctx.SetSrc(image.NewUniform(col))
	ctx.SetHinting(font.HintingFull)

	margin := int(size / 2)
	baseline := c.img.Bounds().Dy() - margin - descent
	if _, err := ctx.DrawString(text, freetype.Pt(margin, baseline)); err != nil {
		return fmt.Errorf("failed to draw caption: %w", err)
	}
	return nil
}
