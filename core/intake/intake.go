package intake

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/glyph"
	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions are the file extensions accepted as glyph images.
var AllowedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true,
}

// File is an uploaded image file.
type File struct {
	Name string // file name, the stem of which is the label
	Data []byte
}

// Skip records a file which did not make it into the glyph set.
type Skip struct {
	Name string
	Err  error
}

// Report summarizes an intake.
type Report struct {
	Accepted []string // files which became glyphs
	Replaced []string // files overridden by a later file with the same label
	Skipped  []Skip
}

// LabelFromFilename derives a label from the stem of a file name. The stem
// is normalized to NFC and must then consist of exactly one printable,
// non-space code point.
func LabelFromFilename(name string) (glyph.Label, error) {
	base := filepath.Base(name)
	stem := norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
	if utf8.RuneCountInString(stem) != 1 {
		return 0, core.Error(core.EINVALID, "file name %q does not name a single character", name)
	}
	r, _ := utf8.DecodeRuneInString(stem)
	if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return 0, core.Error(core.EINVALID, "file name %q does not name a printable character", name)
	}
	return glyph.Label(r), nil
}

// Collect normalizes a batch of files into a glyph set. Files are processed
// in lexical order of their names. Unsupported, unlabeled or undecodable
// files are skipped; if no glyph remains, an EEMPTY error is returned
// together with the report.
func Collect(files []File) (glyph.Set, *Report, error) {
	sorted := append([]File(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	set := make(glyph.Set)
	origin := make(map[glyph.Label]string)
	report := &Report{}
	for _, f := range sorted {
		if !AllowedExtensions[strings.ToLower(filepath.Ext(f.Name))] {
			report.skip(f.Name, core.Error(core.EINVALID, "unsupported file type: %s", f.Name))
			continue
		}
		label, err := LabelFromFilename(f.Name)
		if err != nil {
			report.skip(f.Name, err)
			continue
		}
		g, err := glyph.Normalize(bytes.NewReader(f.Data))
		if err != nil {
			report.skip(f.Name, err)
			continue
		}
		if prev, ok := origin[label]; ok {
			tracer().Infof("%s replaces %s as glyph for %q", f.Name, prev, label.String())
			report.Replaced = append(report.Replaced, prev)
			report.Accepted = remove(report.Accepted, prev)
		}
		set[label] = g
		origin[label] = f.Name
		report.Accepted = append(report.Accepted, f.Name)
	}
	tracer().Infof("intake: %d glyphs from %d files, %d skipped", len(set), len(files), len(report.Skipped))
	if len(set) == 0 {
		return nil, report, core.Error(core.EEMPTY, "none of %d files could be used as a glyph", len(files))
	}
	return set, report, nil
}

// LoadDirectory reads all files with allowed extensions from a folder and
// collects them. Sub-folders are ignored.
func LoadDirectory(dir string) (glyph.Set, *Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "cannot read upload folder %s", dir)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() || !AllowedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, nil, core.WrapError(err, core.EIO, "cannot read upload %s", e.Name())
		}
		files = append(files, File{Name: e.Name(), Data: data})
	}
	return Collect(files)
}

func (r *Report) skip(name string, err error) {
	tracer().Infof("skipping %s: %v", name, err)
	r.Skipped = append(r.Skipped, Skip{Name: name, Err: err})
}

func remove(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
