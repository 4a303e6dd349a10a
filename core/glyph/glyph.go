package glyph

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/npillmayer/writeright/core"
)

// Dimensions of a canonical glyph, in pixels.
const (
	Width  = 100
	Height = 100
)

// Pixel values of a canonical glyph.
const (
	Paper uint8 = 0
	Ink   uint8 = 255
)

// Label identifies the character a glyph represents. It is a single Unicode
// code point.
type Label rune

func (l Label) String() string {
	return string(rune(l))
}

// FileStem returns the label's code point as a zero-padded decimal number
// with at least four digits. It never contains characters unsafe for file names.
func (l Label) FileStem() string {
	return fmt.Sprintf("%04d", int32(l))
}

// Glyph is a canonical glyph raster. Glyphs are immutable; accessors
// which return image data return copies.
type Glyph struct {
	pix []uint8 // Width × Height, row-major
}

// Set maps labels to glyphs. There is at most one glyph per label.
type Set map[Label]*Glyph

// FromCanvas creates a canonical glyph from a canvas of exactly Width × Height
// pixels. Pixels at mid-grey or brighter become ink, all others background.
// Canvases of any other size are rejected with an EINVALID error.
func FromCanvas(canvas *image.Gray) (*Glyph, error) {
	b := canvas.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, core.Error(core.EINVALID, "glyph canvas must be %d×%d, is %d×%d",
			Width, Height, b.Dx(), b.Dy())
	}
	g := &Glyph{pix: make([]uint8, Width*Height)}
	for y := 0; y < Height; y++ {
		row := canvas.Pix[canvas.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < Width; x++ {
			if row[x] >= 128 {
				g.pix[y*Width+x] = Ink
			}
		}
	}
	return g, nil
}

// Blank returns a glyph without any ink.
func Blank() *Glyph {
	return &Glyph{pix: make([]uint8, Width*Height)}
}

// Threshold binarizes img in place: pixels >= level become Ink, all others Paper.
func Threshold(img *image.Gray, level uint8) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Min.X, y)+b.Dx()]
		for x, v := range row {
			if v >= level {
				row[x] = Ink
			} else {
				row[x] = Paper
			}
		}
	}
}

// At returns the pixel value at (x, y). Coordinates outside the raster
// return Paper.
func (g *Glyph) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return Paper
	}
	return g.pix[y*Width+x]
}

// InkCount returns the number of ink pixels.
func (g *Glyph) InkCount() int {
	n := 0
	for _, v := range g.pix {
		if v == Ink {
			n++
		}
	}
	return n
}

// Image returns a copy of the raster as a grayscale image.
func (g *Glyph) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	copy(img.Pix, g.pix)
	return img
}

// Bytes returns a copy of the raw pixel data, row by row.
func (g *Glyph) Bytes() []byte {
	return append([]byte(nil), g.pix...)
}

// Equal reports whether two glyphs have identical pixels.
func (g *Glyph) Equal(other *Glyph) bool {
	if g == nil || other == nil {
		return g == other
	}
	return bytes.Equal(g.pix, other.pix)
}

// EncodePNG writes the glyph as an 8-bit grayscale PNG.
func (g *Glyph) EncodePNG(w io.Writer) error {
	return png.Encode(w, g.Image())
}

// Decode reads back a glyph file, as written by EncodePNG. The image must
// have canonical dimensions and binary pixels, otherwise an EINVALID error
// is returned. Undecodable data results in an EDECODE error.
func Decode(r io.Reader) (*Glyph, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, core.WrapError(err, core.EDECODE, "cannot decode glyph image")
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(img.Bounds())
		draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if v := gray.GrayAt(x, y).Y; v != Ink && v != Paper {
				return nil, core.Error(core.EINVALID, "glyph image is not binary: pixel (%d,%d) = %d", x, y, v)
			}
		}
	}
	return FromCanvas(gray)
}
