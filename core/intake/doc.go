/*
Package intake turns uploaded image files into labeled canonical glyphs.

The stem of each file name is the label of the glyph, e.g. "A.png" holds
the glyph for 'A'. Intake works with partial success: files which cannot
be used are skipped and reported, and only a batch without any usable
glyph is an error.

If two files carry the same label ("A.jpg" and "A.png"), files are taken
in lexical order of their names and the later one wins. The replacement
is recorded in the report.
*/
package intake

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'writeright.intake'
func tracer() tracing.Trace {
	return tracing.Select("writeright.intake")
}
