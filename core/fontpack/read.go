package fontpack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/glyph"
)

// ReadManifest reads the manifest of a package.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read manifest %s", path)
	}
	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "manifest %s is malformed", path)
	}
	return m, nil
}

// ReadGlyph reads the glyph for label l from a package.
func ReadGlyph(outputDir, fontName string, l glyph.Label) (*glyph.Glyph, error) {
	path := GlyphPath(outputDir, fontName, l)
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "no glyph file for %q", l.String())
	}
	defer f.Close()
	return glyph.Decode(f)
}

// Labels lists the labels a package has glyph files for, in code point order.
// Files not named by a code point are ignored.
func Labels(outputDir, fontName string) ([]glyph.Label, error) {
	dir := CharactersDir(outputDir, fontName)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot list package folder %s", dir)
	}
	var labels []glyph.Label
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".png" {
			continue
		}
		cp, err := strconv.ParseInt(strings.TrimSuffix(f.Name(), ".png"), 10, 32)
		if err != nil || !utf8.ValidRune(rune(cp)) {
			tracer().Debugf("ignoring file %s in package", f.Name())
			continue
		}
		labels = append(labels, glyph.Label(cp))
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels, nil
}
