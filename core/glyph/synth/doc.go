/*
Package synth synthesizes substitute glyphs for characters a user did not
supply.

A synthesized glyph is rendered from a system typeface and then perturbed
to look vaguely handwritten: every pixel row is shifted by a small random
offset and a few pixels are flipped, simulating scan noise.

Synthesis is randomized on purpose. Two calls for the same label return
different rasters. The random source is injected, so tests seed it and
assert structural properties.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synth

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.synth'
func tracer() tracing.Trace {
	return tracing.Select("writeright.synth")
}
