package glyph

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/writeright/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFileStem(t *testing.T) {
	for l, stem := range map[Label]string{
		'A':    "0065",
		'0':    "0048",
		'!':    "0033",
		'€':    "8364",
		'𝄞':    "119070",
		'\x01': "0001",
	} {
		if l.FileStem() != stem {
			t.Errorf("expected file stem %q for %q, is %q", stem, l, l.FileStem())
		}
	}
}

func TestFromCanvasRejectsWrongSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.glyph")
	defer teardown()
	//
	_, err := FromCanvas(image.NewGray(image.Rect(0, 0, Width+1, Height)))
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestPNGRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.glyph")
	defer teardown()
	//
	canvas := image.NewGray(image.Rect(0, 0, Width, Height))
	for i := 0; i < Width; i++ {
		canvas.SetGray(i, i, color.Gray{Y: Ink})
		canvas.SetGray(Width-1-i, i, color.Gray{Y: 200})
	}
	g, err := FromCanvas(canvas)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, g.EncodePNG(&buf))
	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back), "expected glyph to survive PNG round trip")
	assert.Equal(t, 2*Width, back.InkCount())
}

func TestDecodeRejectsGrey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.glyph")
	defer teardown()
	//
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	img.SetGray(3, 3, color.Gray{Y: 77})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	_, err := Decode(&buf)
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	_, err = Decode(bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}))
	assert.Equal(t, core.EDECODE, core.Code(err))
}

func TestGlyphCopies(t *testing.T) {
	g := Blank()
	img := g.Image()
	img.SetGray(0, 0, color.Gray{Y: Ink})
	assert.Equal(t, Paper, g.At(0, 0), "glyph must not share pixels with its image")
	assert.Equal(t, Paper, g.At(-1, 500))
	assert.False(t, g.Equal(nil))
}
