package synth

import (
	"image"
	"math/rand"

	"github.com/npillmayer/writeright/core/glyph"
)

// jitterRows shifts every row horizontally by an offset drawn independently
// from [-maxShift, maxShift]. Pixels shifted past an edge are dropped,
// vacated pixels become paper. There is no wrap-around.
func jitterRows(img *image.Gray, rnd *rand.Rand, maxShift int) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	if maxShift < 0 {
		maxShift = 0
	}
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		shift := rnd.Intn(2*maxShift+1) - maxShift
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for x := 0; x < w; x++ {
			if sx := x - shift; sx >= 0 && sx < w {
				dst[x] = src[sx]
			}
		}
	}
	return out
}

// sprinkle flips each pixel between ink and paper with probability rate.
func sprinkle(img *image.Gray, rnd *rand.Rand, rate float64) {
	if rate <= 0 {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Min.X, y)+b.Dx()]
		for x, v := range row {
			if rnd.Float64() < rate {
				row[x] = glyph.Ink - v
			}
		}
	}
}
