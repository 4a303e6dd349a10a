/*
Package font is for typeface and font handling.

Glyph synthesis renders characters from a reference typeface. We stick to
the following definitions:

* A "scalable font" is a font program loaded from a file, e.g.
"DejaVu Sans". Its outlines may be rendered at any size.

* A "typecase" is a scalable font prepared for a certain pixel size. The name
is reminiscent of the wooden boxes of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Font collections (*.ttc) are not supported and fail to parse.

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/writeright/core"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'writeright.fonts'
func tracer() tracing.Trace {
	return tracing.Select("writeright.fonts")
}

// ScalableFont is a font program, parsed but not yet prepared for a size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font prepared for a pixel size.
// Faces are not safe for concurrent use.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont loads and parses a TrueType or OpenType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data. The font's name is taken from the
// name table, if present.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Covers reports whether the font has a glyph for rune r.
func (sf *ScalableFont) Covers(r rune) bool {
	var buf sfnt.Buffer
	inx, err := sf.SFNT.GlyphIndex(&buf, r)
	return err == nil && inx != 0
}

// PrepareCase creates a typecase for a size given in pixels.
func (sf *ScalableFont) PrepareCase(pxsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if pxsize < 4.0 || pxsize > 1000.0 {
		tracer().Errorf("font size must be 4px < size < 1000px, is %g (set to 12px)", pxsize)
		pxsize = 12.0
	}
	options := &opentype.FaceOptions{
		Size:    pxsize,
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.size = pxsize
	}
	return typecase, err
}

// ScalableFontParent returns the font the typecase has been prepared from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the typecase as a Go font face, usable for drawing.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PxSize returns the size of the typecase in pixels.
func (tc *TypeCase) PxSize() float64 {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// ---------------------------------------------------------------------------

// NormalizeFontname creates a registry key from a font name or font file name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		switch strings.ToLower(fname[dot:]) {
		case ".ttf", ".otf", ".ttc":
			fname = fname[:dot]
		}
	}
	fname = strings.ToLower(fname)
	return fname
}
