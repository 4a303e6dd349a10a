/*
Package fontpack writes and reads font packages.

A font package is a folder of glyph images plus a manifest:

   <output>/<name>_characters/<code point>.png
   <output>/<name>_info.json

Glyph files are named by the decimal code point of their character,
zero-padded to four digits. The manifest is a JSON object with fields
name, character_count, created_date and generator.

Assembling a package twice with the same name overwrites the previous
files; nothing is merged or versioned. Files of a failed assembly are
left in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontpack

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.fontpack'
func tracer() tracing.Trace {
	return tracing.Select("writeright.fontpack")
}
