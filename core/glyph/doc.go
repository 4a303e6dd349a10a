/*
Package glyph holds canonical glyph rasters and the normalizer which creates
them from photos or scans of handwritten characters.

A canonical glyph is a fixed-size, single-channel raster of Width × Height
pixels. Pixels are binary: ink is 255, background is 0. Normalization runs
through the following steps:

   grayscale → Otsu threshold (inverted) → 2×2 opening → crop to ink → resample

A blank input (no ink at all) is not an error; it yields an empty glyph.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.glyph'
func tracer() tracing.Trace {
	return tracing.Select("writeright.glyph")
}
