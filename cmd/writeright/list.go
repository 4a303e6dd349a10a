package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/fontpack"
	"github.com/npillmayer/writeright/core/glyph"
	"github.com/pterm/pterm"
)

func list(outputDir, fontName string) error {
	m, data, err := packageTable(outputDir, fontName)
	if err != nil {
		return err
	}
	pterm.Info.Printf("%s: %d characters, created %s by %s\n",
		m.Name, m.CharacterCount, m.CreatedDate, m.Generator)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// packageTable reads a package and tabulates its glyphs, one row per
// character, with the share of ink pixels.
func packageTable(outputDir, fontName string) (*fontpack.Manifest, pterm.TableData, error) {
	name, err := fontpack.SafeFontName(fontName)
	if err != nil {
		return nil, nil, err
	}
	m, err := fontpack.ReadManifest(fontpack.ManifestPath(outputDir, name))
	if err != nil {
		return nil, nil, err
	}
	labels, err := fontpack.Labels(outputDir, name)
	if err != nil {
		return nil, nil, err
	}
	if len(labels) != m.CharacterCount {
		tracer().Errorf("manifest announces %d characters, package has %d", m.CharacterCount, len(labels))
	}
	data := pterm.TableData{{"Char", "Code Point", "File", "Ink"}}
	for _, l := range labels {
		g, err := fontpack.ReadGlyph(outputDir, name, l)
		if err != nil {
			return nil, nil, core.WrapError(err, core.Code(err), "package %s is damaged", name)
		}
		ink := float64(g.InkCount()) / float64(glyph.Width*glyph.Height)
		data = append(data, []string{
			l.String(),
			fmt.Sprintf("U+%04X", int32(l)),
			l.FileStem() + ".png",
			strconv.FormatFloat(ink*100, 'f', 1, 64) + "%",
		})
	}
	return m, data, nil
}
