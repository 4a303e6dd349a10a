/*
Command writeright makes handwriting font packages.

Usage:

	writeright [flags] build      make a font from the images in -upload
	writeright [flags] list NAME  show the characters of a package in -out

Glyph images are named after the character they show, e.g. "A.png".
Settings may be given in a file .env.local or .env in the working directory:

	WRITERIGHT_FONTS   comma-separated reference typefaces for synthesis
	WRITERIGHT_OUTPUT  default output folder
	WRITERIGHT_TRACE   trace level [Debug|Info|Error]
*/
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/engine/fontmaker"
	"github.com/pterm/pterm"
)

// tracer traces with key 'writeright.cli'
func tracer() tracing.Trace {
	return tracing.Select("writeright.cli")
}

// traced lists the packages which follow the trace level given by the user.
var traced = []string{
	"writeright.cli", "writeright.fontmaker", "writeright.intake", "writeright.glyph",
	"writeright.synth", "writeright.fonts", "writeright.resources",
	"writeright.fontdata", "writeright.fontpack",
}

func main() {
	initDisplay()
	loadEnv()

	// command line flags
	upload := flag.String("upload", "", "Folder of glyph images")
	out := flag.String("out", envOr("WRITERIGHT_OUTPUT", "."), "Output folder")
	name := flag.String("name", "", "Font name (default \"WriteRight\")")
	chars := flag.String("chars", "", "Characters to include (default A-Z a-z 0-9)")
	seed := flag.Int64("seed", 0, "Random seed for synthesis, 0 for a random one")
	tlevel := flag.String("trace", envOr("WRITERIGHT_TRACE", "Error"), "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	conf := configure(*tlevel)
	if err := initTracing(conf); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	tracer().Infof("Trace level is %s", *tlevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var err error
	switch flag.Arg(0) {
	case "", "build":
		err = build(ctx, fontmaker.Request{
			UploadDir:  *upload,
			FontName:   *name,
			Characters: *chars,
			OutputDir:  *out,
			Config:     conf,
			Rand:       randomSource(*seed),
		})
	case "list":
		err = list(*out, flag.Arg(1))
	default:
		pterm.Error.Printf("unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// configure creates the configuration for tracing and synthesis.
func configure(tlevel string) testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"fonts":           os.Getenv("WRITERIGHT_FONTS"),
	}
	for _, key := range traced {
		conf["trace."+key] = tlevel
	}
	return conf
}

// initTracing routes all tracers through the Go logging adapter.
func initTracing(conf testconfig.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func randomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer().Debugf("random seed is %d", seed)
	return rand.New(rand.NewSource(seed))
}

func build(ctx context.Context, req fontmaker.Request) error {
	if req.UploadDir == "" {
		return core.Error(core.EINVALID, "no upload folder given, use -upload")
	}
	spinner, _ := pterm.DefaultSpinner.Start("Making font from ", req.UploadDir)
	res, err := fontmaker.CreateFont(ctx, req)
	if err != nil {
		spinner.Fail("Font could not be made")
		return err
	}
	spinner.Success("Font ", res.FontName, " written to ", res.ManifestPath)
	for _, s := range res.Intake.Skipped {
		pterm.Warning.Printf("skipped %s: %s\n", s.Name, core.UserMessage(s.Err))
	}
	for _, r := range res.Intake.Replaced {
		pterm.Warning.Printf("%s replaced by a later file for the same character\n", r)
	}
	pterm.Info.Printf("%d glyphs from uploads, %d synthesized\n", res.Provided, res.Synthesized)
	return nil
}
