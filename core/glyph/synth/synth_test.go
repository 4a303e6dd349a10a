package synth

import (
	"context"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/writeright/core/glyph"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type SynthTestEnviron struct {
	suite.Suite
	synth *Synthesizer
}

// listen for 'go test' command --> run test methods
func TestSynthesizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.synth")
	defer teardown()
	suite.Run(t, new(SynthTestEnviron))
}

// run before each test method; only the fallback font is used, which makes
// rendering independent of the fonts installed on the test machine.
func (env *SynthTestEnviron) SetupTest() {
	env.synth = New(rand.New(rand.NewSource(42)))
}

// --- Tests -----------------------------------------------------------------

func (env *SynthTestEnviron) TestCanonicalAndBinary() {
	for _, r := range "AgQ7&ß€" {
		g := env.synth.Synthesize(glyph.Label(r))
		img := g.Image()
		env.Equal(glyph.Width, img.Bounds().Dx())
		env.Equal(glyph.Height, img.Bounds().Dy())
		for _, v := range g.Bytes() {
			if v != glyph.Ink && v != glyph.Paper {
				env.Failf("pixel not binary", "found value %d in glyph for %q", v, r)
				return
			}
		}
		env.Greater(g.InkCount(), 300, "expected visible strokes for %q", r)
	}
}

func (env *SynthTestEnviron) TestRandomizedPerCall() {
	a := env.synth.Synthesize('A')
	b := env.synth.Synthesize('A')
	env.False(a.Equal(b), "expected two syntheses of 'A' to differ")
}

func (env *SynthTestEnviron) TestSeedReproducible() {
	other := New(rand.New(rand.NewSource(42)))
	a := env.synth.Synthesize('K')
	b := other.Synthesize('K')
	env.True(a.Equal(b), "expected equal seeds to produce equal glyphs")
}

func (env *SynthTestEnviron) TestCentered() {
	env.synth.MaxShift = 0
	env.synth.NoiseRate = 0
	for _, r := range "Hgj-" {
		g := env.synth.Synthesize(glyph.Label(r))
		box := inkBox(g)
		env.False(box.Empty(), "expected ink for %q", r)
		cx := (box.Min.X + box.Max.X) / 2
		cy := (box.Min.Y + box.Max.Y) / 2
		env.InDelta(glyph.Width/2, cx, 2, "horizontal center of %q at %v", r, box)
		env.InDelta(glyph.Height/2, cy, 2, "vertical center of %q at %v", r, box)
		env.LessOrEqual(box.Dx(), glyph.Width*9/10+2, "width of %q", r)
		env.LessOrEqual(box.Dy(), glyph.Height*9/10+2, "height of %q", r)
	}
}

func (env *SynthTestEnviron) TestPlaceholderForUnrenderable() {
	env.synth.MaxShift = 0
	env.synth.NoiseRate = 0
	g := env.synth.Synthesize('\U0001F600') // no emoji in Go Sans
	env.Equal(glyph.Width, g.Image().Bounds().Dx())
	env.True(g.Equal(mustGlyph(env, placeholder())), "expected placeholder glyph")
	//
	g = env.synth.Synthesize('\u200B') // zero width space has nothing to draw
	env.Greater(g.InkCount(), 0)
}

func (env *SynthTestEnviron) TestFromConfigWithoutSystemFonts() {
	conf := testconfig.Conf{
		"fonts": "No-Such-Typeface-WriteRight-1,No-Such-Typeface-WriteRight-2",
	}
	s, err := FromConfig(context.Background(), conf, rand.New(rand.NewSource(1)))
	env.Require().NoError(err)
	env.Equal([]string{"go_sans"}, s.typefaces)
	env.Greater(s.Synthesize('x').InkCount(), 0)
}

func (env *SynthTestEnviron) TestFromConfigCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FromConfig(ctx, testconfig.Conf{"fonts": "Arial"}, nil)
	env.ErrorIs(err, context.Canceled)
}

// --- Perturbation ----------------------------------------------------------

func TestJitterRowsDropsWithoutWrap(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 50))
	for y := 0; y < 50; y++ {
		img.SetGray(0, y, color.Gray{Y: glyph.Ink})
		img.SetGray(9, y, color.Gray{Y: glyph.Ink})
	}
	out := jitterRows(img, rand.New(rand.NewSource(7)), 1)
	for y := 0; y < 50; y++ {
		for x := 2; x < 8; x++ {
			if out.GrayAt(x, y).Y != glyph.Paper {
				t.Fatalf("row %d: ink moved more than one pixel", y)
			}
		}
		left := int(out.GrayAt(0, y).Y) + int(out.GrayAt(1, y).Y)
		right := int(out.GrayAt(8, y).Y) + int(out.GrayAt(9, y).Y)
		if left+right == 2*int(glyph.Ink) {
			continue // no shift or shift kept both pixels
		}
		if left+right != int(glyph.Ink) {
			t.Errorf("row %d: expected exactly one pixel to be dropped, found %d ink", y, (left+right)/255)
		}
		if out.GrayAt(1, y).Y == glyph.Ink && out.GrayAt(9, y).Y == glyph.Ink {
			t.Errorf("row %d: pixel wrapped around", y)
		}
	}
	if out.Bounds() != img.Bounds() {
		t.Errorf("expected jitter to keep the image size")
	}
}

func TestSprinkleRate(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	sprinkle(img, rand.New(rand.NewSource(3)), DefaultNoiseRate)
	n := 0
	for _, v := range img.Pix {
		if v == glyph.Ink {
			n++
		} else if v != glyph.Paper {
			t.Fatalf("sprinkle produced non-binary value %d", v)
		}
	}
	rate := float64(n) / float64(len(img.Pix))
	t.Logf("flipped %d of %d pixels (%.3f)", n, len(img.Pix), rate)
	if rate < 0.02 || rate > 0.04 {
		t.Errorf("expected roughly 3%% flipped pixels, got %.3f", rate)
	}
}

// --- Helpers ---------------------------------------------------------------

func inkBox(g *glyph.Glyph) image.Rectangle {
	box := image.Rectangle{}
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			if g.At(x, y) == glyph.Ink {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

func mustGlyph(env *SynthTestEnviron, canvas *image.Gray) *glyph.Glyph {
	g, err := glyph.FromCanvas(canvas)
	env.Require().NoError(err)
	return g
}
