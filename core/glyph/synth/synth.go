package synth

import (
	"context"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/writeright/core/font"
	"github.com/npillmayer/writeright/core/font/fontregistry"
	"github.com/npillmayer/writeright/core/glyph"
	"github.com/npillmayer/writeright/core/locate/resources"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Defaults for the handwriting perturbation.
const (
	DefaultMaxShift  = 1    // pixels a row may be shifted to either side
	DefaultNoiseRate = 0.03 // probability of a pixel to be flipped
)

const (
	startSize = 70.0 // pixel size to render glyphs with
	fillRatio = 0.9  // share of the canvas a rendered glyph may cover
	minSize   = 8.0
)

// Synthesizer renders substitute glyphs. A Synthesizer is not safe for
// concurrent use: it owns its random source and font faces. Create one per
// build.
type Synthesizer struct {
	MaxShift  int
	NoiseRate float64
	typefaces []string // registry keys, in order of preference
	registry  *fontregistry.Registry
	rnd       *rand.Rand
}

// New creates a synthesizer rendering from the given typefaces, in order of
// preference. The fallback font is always appended as the last resort.
// If rnd is nil, a random source seeded from the clock is used.
func New(rnd *rand.Rand, typefaces ...*font.ScalableFont) *Synthesizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Synthesizer{
		MaxShift:  DefaultMaxShift,
		NoiseRate: DefaultNoiseRate,
		registry:  fontregistry.NewRegistry(),
		rnd:       rnd,
	}
	for _, tf := range append(typefaces, font.FallbackFont()) {
		if tf == nil {
			continue
		}
		key := font.NormalizeFontname(tf.Fontname)
		if _, exists := s.registry.Font(key); exists {
			continue
		}
		s.registry.StoreFont(key, tf)
		s.typefaces = append(s.typefaces, key)
	}
	tracer().Debugf("synthesizer typefaces: %v", s.typefaces)
	s.registry.LogFontList()
	return s
}

// FromConfig creates a synthesizer for the typefaces named in configuration
// key `fonts`. All typefaces are resolved concurrently; missing ones are
// skipped. An error is returned only if ctx is cancelled.
func FromConfig(ctx context.Context, conf schuko.Configuration, rnd *rand.Rand) (*Synthesizer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := resources.ConfiguredTypefaces(conf)
	promises := make([]resources.TypefacePromise, len(names))
	for i, name := range names {
		promises[i] = resources.ResolveTypeface(name)
	}
	var typefaces []*font.ScalableFont
	for i, p := range promises {
		tf, err := p.Await(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			tracer().Infof("typeface %s unavailable: %v", names[i], err)
			continue
		}
		typefaces = append(typefaces, tf)
	}
	if len(typefaces) == 0 {
		tracer().Infof("no system typeface found, synthesizing with %s", font.FallbackFont().Fontname)
	}
	return New(rnd, typefaces...), nil
}

// Synthesize creates a glyph for label. It never fails: characters no
// typeface can render are drawn as a placeholder box.
//
// Results are randomized, see package documentation.
func (s *Synthesizer) Synthesize(label glyph.Label) *glyph.Glyph {
	canvas, ok := s.render(rune(label))
	if !ok {
		tracer().Infof("no typeface renders %q (U+%04X), using placeholder", label.String(), int32(label))
		canvas = placeholder()
	}
	glyph.Threshold(canvas, 128)
	canvas = jitterRows(canvas, s.rnd, s.MaxShift)
	sprinkle(canvas, s.rnd, s.NoiseRate)
	g, err := glyph.FromCanvas(canvas)
	if err != nil { // canvas always has canonical size
		panic(err)
	}
	return g
}

func (s *Synthesizer) render(r rune) (*image.Gray, bool) {
	for _, key := range s.typefaces {
		f, ok := s.registry.Font(key)
		if !ok || !f.Covers(r) {
			continue
		}
		if canvas, ok := s.draw(key, r); ok {
			tracer().Debugf("rendered %q with %s", string(r), f.Fontname)
			return canvas, true
		}
	}
	return nil, false
}

// draw renders r with a typeface, shrinking the size until the glyph fits
// the canvas. The glyph is centered by its ink bounds, not by its advance
// and baseline.
func (s *Synthesizer) draw(key string, r rune) (*image.Gray, bool) {
	text := string(r)
	size := startSize
	var face xfont.Face
	var bounds fixed.Rectangle26_6
	for attempt := 0; ; attempt++ {
		tc, err := s.registry.TypeCase(key, size)
		if err != nil {
			tracer().Errorf("cannot use typeface %s: %v", key, err)
			return nil, false
		}
		face = tc.Face()
		bounds, _ = xfont.BoundString(face, text)
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if w <= 0 || h <= 0 { // nothing visible to draw
			return nil, false
		}
		scale := math.Min(fillRatio*glyph.Width/float64(w), fillRatio*glyph.Height/float64(h))
		if scale >= 1 || attempt == 3 || size <= minSize {
			break
		}
		size = math.Max(minSize, math.Floor(size*scale))
	}
	canvas := image.NewGray(image.Rect(0, 0, glyph.Width, glyph.Height))
	d := xfont.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(glyph.Width)/2 - (bounds.Min.X+bounds.Max.X)/2,
			Y: fixed.I(glyph.Height)/2 - (bounds.Min.Y+bounds.Max.Y)/2,
		},
	}
	d.DrawString(text)
	return canvas, true
}
