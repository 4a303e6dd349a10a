/*
Package fontdata completes a set of user glyphs to a full character set.

Every character of the requested character set ends up with a glyph: the
user's own one if present, a synthesized one otherwise. The provenance of
each glyph is recorded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontdata

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.fontdata'
func tracer() tracing.Trace {
	return tracing.Select("writeright.fontdata")
}
