/*
Package fontregistry manages a registry for loaded fonts.

A registry holds scalable fonts under normalized names and caches typecases
prepared from them, one per pixel size. Requests for unknown fonts are
answered with the fallback font.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.fonts'
func tracer() tracing.Trace {
	return tracing.Select("writeright.fonts")
}
