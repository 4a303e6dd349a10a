package glyph

import "image"

// open2x2 performs a morphological opening with a 2×2 structuring element:
// an erosion followed by a dilation with the reflected element. Specks
// smaller than the element vanish, larger strokes keep their shape.
// Neighbours outside the image are ignored.
func open2x2(img *image.Gray) *image.Gray {
	return dilate(erode(img, 1), -1)
}

// erode sets a pixel to ink only if all its in-bounds neighbours in the
// 2×2 window spanned towards direction d are ink.
func erode(img *image.Gray, d int) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := Ink
			forWindow(b, x, y, d, func(px, py int) {
				if img.GrayAt(px, py).Y == Paper {
					v = Paper
				}
			})
			out.Pix[out.PixOffset(x, y)] = v
		}
	}
	return out
}

// dilate sets a pixel to ink if any of its in-bounds neighbours in the
// 2×2 window spanned towards direction d is ink.
func dilate(img *image.Gray, d int) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := Paper
			forWindow(b, x, y, d, func(px, py int) {
				if img.GrayAt(px, py).Y != Paper {
					v = Ink
				}
			})
			out.Pix[out.PixOffset(x, y)] = v
		}
	}
	return out
}

func forWindow(b image.Rectangle, x, y, d int, f func(int, int)) {
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			p := image.Pt(x+dx*d, y+dy*d)
			if p.In(b) {
				f(p.X, p.Y)
			}
		}
	}
}
