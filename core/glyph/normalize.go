package glyph

import (
	"image"
	"image/color"
	"io"

	// image formats accepted for uploads
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ernyoke/imger/grayscale"
	"github.com/ernyoke/imger/threshold"
	"github.com/npillmayer/writeright/core"
	"golang.org/x/image/draw"
)

// Normalize decodes a raw image and converts it into a canonical glyph.
// If the bytes cannot be interpreted as an image, an EDECODE error is returned.
func Normalize(r io.Reader) (*Glyph, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, core.WrapError(err, core.EDECODE, "cannot decode image data")
	}
	tracer().Debugf("normalizing %s image of size %v", format, img.Bounds().Size())
	return NormalizeImage(img), nil
}

// NormalizeImage converts an arbitrary image into a canonical glyph.
// It never fails: an image without ink, including an empty one, results
// in a blank glyph.
func NormalizeImage(img image.Image) *Glyph {
	if img.Bounds().Empty() {
		tracer().Infof("image has no pixels, returning blank glyph")
		return Blank()
	}
	bin := binarize(toGray(img))
	bin = open2x2(bin)
	box, found := inkBounds(bin)
	if !found {
		tracer().Debugf("no ink found, resizing the whole frame")
		box = bin.Bounds()
	}
	canvas := resample(bin.SubImage(box).(*image.Gray))
	g, err := FromCanvas(canvas)
	if err != nil { // cannot happen, resample produces canonical size
		panic(err)
	}
	return g
}

// toGray returns a grayscale copy of img with its origin at (0,0).
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		img = rgba
	}
	return grayscale.Grayscale(img)
}

// binarize applies Otsu's method so that dark strokes become ink. The
// thresholded classes are assigned by their mean input intensity: the darker
// class is ink. An image of uniform intensity has no separable foreground and
// is treated as blank paper. If Otsu's method fails to separate two classes,
// the image is split at the midpoint of its intensity range.
func binarize(gray *image.Gray) *image.Gray {
	lo, hi := intensityRange(gray)
	if lo == hi {
		return image.NewGray(gray.Bounds())
	}
	bin, err := threshold.OtsuThreshold(gray, threshold.ThreshBinary)
	if err != nil {
		tracer().Errorf("Otsu threshold failed: %v", err)
		return splitAt(gray, uint8((int(lo)+int(hi))/2))
	}
	ink, ok := darkerClass(gray, bin)
	if !ok {
		tracer().Debugf("Otsu threshold did not separate ink from paper, splitting at midpoint")
		return splitAt(gray, uint8((int(lo)+int(hi))/2))
	}
	out := image.NewGray(gray.Bounds())
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (bin.GrayAt(x, y).Y != 0) == ink {
				out.SetGray(x, y, color.Gray{Y: Ink})
			}
		}
	}
	return out
}

// darkerClass reports which class of a two-valued image covers the darker
// pixels of gray: true for the non-zero class, false for the zero class.
// ok is false if one of the classes is empty.
func darkerClass(gray, bin *image.Gray) (nonZero bool, ok bool) {
	var sum, cnt [2]int
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := 0
			if bin.GrayAt(x, y).Y != 0 {
				c = 1
			}
			sum[c] += int(gray.GrayAt(x, y).Y)
			cnt[c]++
		}
	}
	if cnt[0] == 0 || cnt[1] == 0 {
		return false, false
	}
	return sum[1]*cnt[0] < sum[0]*cnt[1], true
}

// splitAt marks every pixel at or below level as ink.
func splitAt(gray *image.Gray, level uint8) *image.Gray {
	out := image.NewGray(gray.Bounds())
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if gray.GrayAt(x, y).Y <= level {
				out.SetGray(x, y, color.Gray{Y: Ink})
			}
		}
	}
	return out
}

func intensityRange(gray *image.Gray) (lo, hi uint8) {
	lo, hi = 255, 0
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := gray.GrayAt(x, y).Y
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return
}

// inkBounds returns the bounding box of all non-zero pixels.
func inkBounds(img *image.Gray) (image.Rectangle, bool) {
	b := img.Bounds()
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y == 0 {
				continue
			}
			found = true
			if x < box.Min.X {
				box.Min.X = x
			}
			if y < box.Min.Y {
				box.Min.Y = y
			}
			if x+1 > box.Max.X {
				box.Max.X = x + 1
			}
			if y+1 > box.Max.Y {
				box.Max.Y = y + 1
			}
		}
	}
	return box, found
}

// areaKernel is a box filter. x/image/draw widens a kernel's support by the
// scale factor when shrinking, so every destination pixel averages the
// source area it covers. When enlarging, the support stays at half a pixel
// and leaves gaps between source samples; areaKernel is used for shrinking
// only.
var areaKernel = &draw.Kernel{
	Support: 0.5,
	At:      func(t float64) float64 { return 1 },
}

// resample scales src to canonical size. Axes shorter than the canvas are
// first enlarged bilinearly, then remaining longer axes are shrunk by area
// averaging.
func resample(src *image.Gray) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw < Width || sh < Height {
		up := image.NewGray(image.Rect(0, 0, max(sw, Width), max(sh, Height)))
		draw.BiLinear.Scale(up, up.Bounds(), src, src.Bounds(), draw.Src, nil)
		if up.Bounds().Dx() == Width && up.Bounds().Dy() == Height {
			return up
		}
		src = up
	}
	dst := image.NewGray(image.Rect(0, 0, Width, Height))
	areaKernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
