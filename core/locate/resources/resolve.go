package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/font"
)

// DefaultTypefaces lists the system typefaces tried for glyph synthesis if
// the configuration does not name any.
var DefaultTypefaces = []string{"Arial", "DejaVuSans", "LiberationSans-Regular", "FreeSans"}

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

// ConfiguredTypefaces returns the typeface names from configuration key
// `fonts`, a comma-separated list. If the key is unset, DefaultTypefaces is
// returned.
func ConfiguredTypefaces(conf schuko.Configuration) []string {
	var list string
	if conf != nil {
		list = conf.GetString("fonts")
	}
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return DefaultTypefaces
	}
	return names
}

// --- Fonts -----------------------------------------------------------------

// TypefacePromise delivers a typeface once it has been located and parsed.
// It may be awaited any number of times and always delivers the same result.
type TypefacePromise interface {
	Await(ctx context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	done chan struct{} // closed after font and err are set
	font *font.ScalableFont
	err  error
}

func (loader *fontLoader) Await(ctx context.Context) (*font.ScalableFont, error) {
	select {
	case <-loader.done:
		return loader.font, loader.err
	default:
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.font, loader.err
	}
}

// ResolveTypeface searches for a typeface installed on the system.
// name may be a file name ("DejaVuSans.ttf") or a file name stem
// ("DejaVuSans"). Font files which are not found or cannot be parsed
// result in an error from the promise.
func ResolveTypeface(name string) TypefacePromise {
	loader := &fontLoader{done: make(chan struct{})}
	go func() {
		defer close(loader.done)
		fpath, err := findSystemFont(name)
		if err != nil {
			tracer().Debugf("%s is not a system font", name)
			loader.err = NotFound(name)
			return
		}
		tracer().Debugf("%s is a system font at %s", name, fpath)
		loader.font, loader.err = font.LoadOpenTypeFont(fpath)
		if loader.err == nil && loader.font.Fontname == "" {
			loader.font.Fontname = name
		}
	}()
	return loader
}

// findSystemFont tries the name as given first; stems without extension are
// then tried as TrueType and OpenType file names.
func findSystemFont(name string) (string, error) {
	candidates := []string{name}
	if !strings.Contains(name, ".") {
		candidates = append(candidates, name+".ttf", name+".otf")
	}
	var err error
	for _, c := range candidates {
		var fpath string
		if fpath, err = findfont.Find(c); err == nil && fpath != "" {
			return fpath, nil
		}
	}
	return "", err
}
