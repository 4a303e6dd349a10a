/*
Package fontmaker creates handwriting font packages from uploaded glyph images.

A font is made in three stages: uploads are taken in and normalized
(package intake), the resulting glyphs are completed to the requested
character set, synthesizing the missing ones (package fontdata), and the
completed set is written to disk (package fontpack).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontmaker

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'writeright.fontmaker'.
func tracer() tracing.Trace {
	return tracing.Select("writeright.fontmaker")
}
