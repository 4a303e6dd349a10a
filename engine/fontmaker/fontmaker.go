package fontmaker

import (
	"context"
	"math/rand"
	"time"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/fontdata"
	"github.com/npillmayer/writeright/core/fontpack"
	"github.com/npillmayer/writeright/core/glyph"
	"github.com/npillmayer/writeright/core/glyph/synth"
	"github.com/npillmayer/writeright/core/intake"
)

// Request describes a font to be made.
type Request struct {
	UploadDir  string               // folder of glyph images, used if Files is empty
	Files      []intake.File        // glyph images, e.g. from a web upload
	FontName   string               // name of the font; empty selects the default name
	Characters string               // characters the font must contain; empty selects the default set
	OutputDir  string               // folder to write the package to
	Config     schuko.Configuration // may be nil
	Rand       *rand.Rand           // random source for synthesis; nil seeds from the clock
	Assembler  *fontpack.Assembler  // nil selects the default assembler
}

// Result tells what has been made.
type Result struct {
	ManifestPath string
	FontName     string
	Provided     int // glyphs taken from the uploads
	Synthesized  int // glyphs rendered as substitutes
	Intake       *intake.Report
	Elapsed      time.Duration
}

// CreateFont takes in the uploads of a request, completes them to the
// requested character set and writes the font package.
//
// Errors from intake (EEMPTY, EMISSING) and from writing the package (EIO,
// EINVALID) are returned unmodified. ctx is checked between stages; a
// cancelled build may leave a partial package on disk.
func CreateFont(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	name, err := fontpack.SafeFontName(req.FontName)
	if err != nil {
		return nil, err
	}
	if req.OutputDir == "" {
		return nil, core.Error(core.EINVALID, "no output folder given for font %s", name)
	}
	//
	var set glyph.Set
	var report *intake.Report
	if len(req.Files) > 0 {
		set, report, err = intake.Collect(req.Files)
	} else if req.UploadDir != "" {
		set, report, err = intake.LoadDirectory(req.UploadDir)
	} else {
		err = core.Error(core.EEMPTY, "no uploads for font %s", name)
	}
	if err != nil {
		return nil, err
	}
	tracer().Infof("font %s: %d glyphs uploaded", name, len(set))
	//
	s, err := synth.FromConfig(ctx, req.Config, req.Rand)
	if err != nil {
		return nil, err
	}
	target := fontdata.ParseCharacterSet(req.Characters)
	fd := fontdata.Build(set, target, s)
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	//
	asm := req.Assembler
	if asm == nil {
		asm = fontpack.NewAssembler()
	}
	mpath, err := asm.Assemble(fd.Glyphs(), name, req.OutputDir)
	if err != nil {
		return nil, err
	}
	res := &Result{
		ManifestPath: mpath,
		FontName:     name,
		Provided:     fd.Count(fontdata.Provided),
		Synthesized:  fd.Count(fontdata.Synthesized),
		Intake:       report,
		Elapsed:      time.Since(start),
	}
	tracer().Infof("font %s written to %s in %v", name, mpath, res.Elapsed)
	return res, nil
}
