package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/writeright/core"
	xfont "golang.org/x/image/font"
)

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.fonts")
	defer teardown()
	//
	for k, v := range map[string]string{
		"DejaVu Sans":        "dejavu_sans",
		" Arial.ttf ":        "arial",
		"Helvetica.TTC":      "helvetica",
		"LiberationSans-1.0": "liberationsans-1.0",
	} {
		if n := NormalizeFontname(k); n != v {
			t.Errorf("expected normalized name %q for %q, is %q", v, k, n)
		}
	}
}

func TestFallbackFontCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f.Fontname != "Go Sans" {
		t.Errorf("expected fallback font to be Go Sans, is %s", f.Fontname)
	}
	for _, r := range "AZaz09" {
		if !f.Covers(r) {
			t.Errorf("expected Go Sans to cover %q, doesn't", r)
		}
	}
	if f.Covers('\U0001F600') { // emoji
		t.Errorf("did not expect Go Sans to cover an emoji")
	}
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.fonts")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(70)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PxSize() != 70 {
		t.Errorf("expected typecase of 70px, is %g", tc.PxSize())
	}
	bounds, _ := xfont.BoundString(tc.Face(), "H")
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	t.Logf("height of 'H' at 70px = %d", h)
	if h < 35 || h > 70 {
		t.Errorf("expected cap height of 'H' to be roughly 50px, is %d", h)
	}
}

func TestParseGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("no font"))
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected EINVALID for garbage font data, got %v", err)
	}
	_, err = LoadOpenTypeFont("/no/such/font.ttf")
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for missing font file, got %v", err)
	}
}
