package fontdata

import (
	"github.com/npillmayer/writeright/core/glyph"
)

// Provenance tells where a glyph of a font came from.
type Provenance int

const (
	Provided    Provenance = iota // supplied by the user
	Synthesized                   // rendered as a substitute
)

func (p Provenance) String() string {
	switch p {
	case Provided:
		return "provided"
	case Synthesized:
		return "synthesized"
	}
	return "unknown"
}

// Entry is a glyph of a font, together with its provenance.
type Entry struct {
	Label      glyph.Label
	Glyph      *glyph.Glyph
	Provenance Provenance
}

// Synthesizer creates substitute glyphs for labels without a user glyph.
// Implementations must not fail.
type Synthesizer interface {
	Synthesize(glyph.Label) *glyph.Glyph
}

// FontData is the complete glyph data of a font, ordered like the character
// set it has been built for.
type FontData struct {
	entries []Entry
}

// Build completes the user's glyphs to the target character set.
//
// For every label of target, in order, the user glyph is taken as is if
// present; otherwise synth creates one. User glyphs for labels outside of
// target are not part of the result. Build always succeeds.
func Build(user glyph.Set, target CharacterSet, synth Synthesizer) *FontData {
	fd := &FontData{entries: make([]Entry, 0, len(target))}
	for label := range user {
		if !target.Contains(label) {
			tracer().Infof("glyph for %q is not in the character set, dropped", label.String())
		}
	}
	for _, label := range target {
		if g, ok := user[label]; ok && g != nil {
			fd.entries = append(fd.entries, Entry{label, g, Provided})
			continue
		}
		tracer().Debugf("synthesizing glyph for %q", label.String())
		fd.entries = append(fd.entries, Entry{label, synth.Synthesize(label), Synthesized})
	}
	tracer().Infof("font data: %d provided, %d synthesized",
		fd.Count(Provided), fd.Count(Synthesized))
	return fd
}

// Entries returns the entries in character set order.
func (fd *FontData) Entries() []Entry {
	return append([]Entry(nil), fd.entries...)
}

// Len returns the number of glyphs.
func (fd *FontData) Len() int {
	return len(fd.entries)
}

// Count returns the number of glyphs with a given provenance.
func (fd *FontData) Count(p Provenance) int {
	n := 0
	for _, e := range fd.entries {
		if e.Provenance == p {
			n++
		}
	}
	return n
}

// Glyphs returns the glyphs as a labeled set.
func (fd *FontData) Glyphs() glyph.Set {
	set := make(glyph.Set, len(fd.entries))
	for _, e := range fd.entries {
		set[e.Label] = e.Glyph
	}
	return set
}
