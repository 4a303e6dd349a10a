package synth

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/writeright/core/glyph"
)

// placeholder draws an empty box, the customary symbol for a character
// without a glyph ("tofu").
func placeholder() *image.Gray {
	const stroke = 5
	canvas := image.NewGray(image.Rect(0, 0, glyph.Width, glyph.Height))
	outer := image.Rect(glyph.Width/5, glyph.Height/8, glyph.Width*4/5, glyph.Height*7/8)
	inner := outer.Inset(stroke)
	ink := image.NewUniform(color.Gray{Y: glyph.Ink})
	draw.Draw(canvas, outer, ink, image.Point{}, draw.Src)
	draw.Draw(canvas, inner, image.Black, image.Point{}, draw.Src)
	return canvas
}
