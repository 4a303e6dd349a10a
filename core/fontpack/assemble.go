package fontpack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/glyph"
)

// Defaults for package metadata.
const (
	DefaultFontName  = "WriteRight"
	DefaultGenerator = "WriteRight"
	DateLayout       = "2006-01-02"
)

// Manifest is the descriptive record of a font package.
type Manifest struct {
	Name           string `json:"name"`
	CharacterCount int    `json:"character_count"`
	CreatedDate    string `json:"created_date"`
	Generator      string `json:"generator"`
}

// Assembler writes font packages. The zero value is not usable, use
// NewAssembler.
type Assembler struct {
	Generator string           // generator tag for the manifest
	Now       func() time.Time // clock for the creation date
}

// NewAssembler creates an assembler with the default generator tag and
// the system clock.
func NewAssembler() *Assembler {
	return &Assembler{
		Generator: DefaultGenerator,
		Now:       time.Now,
	}
}

// Assemble writes a package with the default assembler.
func Assemble(glyphs glyph.Set, fontName, outputDir string) (string, error) {
	return NewAssembler().Assemble(glyphs, fontName, outputDir)
}

// Assemble writes one PNG file per glyph and the manifest into outputDir
// and returns the path of the manifest.
//
// An invalid font name results in an EINVALID error, any failure to write
// into outputDir in an EIO error.
func (a *Assembler) Assemble(glyphs glyph.Set, fontName, outputDir string) (string, error) {
	name, err := SafeFontName(fontName)
	if err != nil {
		return "", err
	}
	charsDir := CharactersDir(outputDir, name)
	if err := os.MkdirAll(charsDir, 0755); err != nil {
		return "", core.WrapError(err, core.EIO, "cannot create package folder %s", charsDir)
	}
	labels := make([]glyph.Label, 0, len(glyphs))
	for l := range glyphs {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, l := range labels {
		if err := writeGlyph(GlyphPath(outputDir, name, l), glyphs[l]); err != nil {
			return "", err
		}
	}
	m := Manifest{
		Name:           name,
		CharacterCount: len(labels),
		CreatedDate:    a.Now().Format(DateLayout),
		Generator:      a.Generator,
	}
	info, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot encode manifest")
	}
	mpath := ManifestPath(outputDir, name)
	if err := os.WriteFile(mpath, info, 0644); err != nil {
		return "", core.WrapError(err, core.EIO, "cannot write manifest %s", mpath)
	}
	tracer().Infof("font package '%s' created with %d characters", name, m.CharacterCount)
	return mpath, nil
}

func writeGlyph(path string, g *glyph.Glyph) (err error) {
	if g == nil {
		return core.Error(core.EINVALID, "no glyph for %s", filepath.Base(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create glyph file %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(cerr, core.EIO, "cannot write glyph file %s", path)
		}
	}()
	if err = g.EncodePNG(f); err != nil {
		return core.WrapError(err, core.EIO, "cannot write glyph file %s", path)
	}
	return nil
}

// SafeFontName validates a font name for use in file names. Surrounding
// whitespace is trimmed, an empty name is replaced by DefaultFontName.
// Names containing path separators or control characters are rejected.
func SafeFontName(fontName string) (string, error) {
	name := strings.TrimSpace(fontName)
	if name == "" {
		return DefaultFontName, nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return "", core.Error(core.EINVALID, "font name %q cannot be used as a file name", fontName)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return "", core.Error(core.EINVALID, "font name %q contains control characters", fontName)
		}
	}
	return name, nil
}

// CharactersDir returns the folder holding a package's glyph files.
func CharactersDir(outputDir, fontName string) string {
	return filepath.Join(outputDir, fontName+"_characters")
}

// ManifestPath returns the path of a package's manifest.
func ManifestPath(outputDir, fontName string) string {
	return filepath.Join(outputDir, fontName+"_info.json")
}

// GlyphPath returns the path of the glyph file for label l.
func GlyphPath(outputDir, fontName string, l glyph.Label) string {
	return filepath.Join(CharactersDir(outputDir, fontName), l.FileStem()+".png")
}
