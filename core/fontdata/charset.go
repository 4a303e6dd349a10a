package fontdata

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/writeright/core/glyph"
	"golang.org/x/text/unicode/norm"
)

// DefaultCharacters is used if a client does not request a character set.
const DefaultCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CharacterSet is an ordered sequence of distinct labels.
type CharacterSet []glyph.Label

// ParseCharacterSet creates a character set from user input. An empty input
// (or one consisting of whitespace only) selects DefaultCharacters.
// Invalid UTF-8 sequences are dropped.
//
// Whitespace is removed; there are no glyphs for blanks. The input is
// normalized to NFC and split into grapheme clusters. A cluster which still
// consists of more than one code point cannot be labeled by a single
// character and is skipped. Duplicates keep their first position.
func ParseCharacterSet(s string) CharacterSet {
	if valid := strings.ToValidUTF8(s, ""); valid != s {
		tracer().Infof("dropping invalid UTF-8 from character set")
		s = valid
	}
	if strings.TrimSpace(s) == "" {
		return defaultCharacterSet()
	}
	set := linkedhashset.New()
	grapheme.SetupGraphemeClasses()
	gstr := grapheme.StringFromString(norm.NFC.String(s))
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		if strings.TrimSpace(cluster) == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(cluster)
		if size != len(cluster) {
			tracer().Infof("skipping character %q: not a single code point", cluster)
			continue
		}
		set.Add(glyph.Label(r))
	}
	if set.Empty() {
		tracer().Infof("character set %q has no usable characters, using default", s)
		return defaultCharacterSet()
	}
	cs := make(CharacterSet, 0, set.Size())
	for _, v := range set.Values() {
		cs = append(cs, v.(glyph.Label))
	}
	return cs
}

func defaultCharacterSet() CharacterSet {
	cs := make(CharacterSet, 0, len(DefaultCharacters))
	for _, r := range DefaultCharacters {
		cs = append(cs, glyph.Label(r))
	}
	return cs
}

// String returns the characters of the set, in order.
func (cs CharacterSet) String() string {
	runes := make([]rune, len(cs))
	for i, l := range cs {
		runes[i] = rune(l)
	}
	return string(runes)
}

// Contains reports whether label l is part of the set.
func (cs CharacterSet) Contains(l glyph.Label) bool {
	for _, x := range cs {
		if x == l {
			return true
		}
	}
	return false
}
