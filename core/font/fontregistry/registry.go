package fontregistry

import (
	"fmt"
	"sync"

	"github.com/npillmayer/writeright/core"
	"github.com/npillmayer/writeright/core/font"
)

// Registry is a type for holding information about loaded fonts.
// It is safe for concurrent use; the typecases it hands out are not.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the font stored under a normalized name, if any.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// TypeCase returns a typecase of a font at a given pixel size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font and cached.
//
// If no typecase can be produced, TypeCase returns an EMISSING error.
// Callers may then turn to font.FallbackFont.
//
func (fr *Registry) TypeCase(normalizedName string, size float64) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	f, ok := fr.fonts[normalizedName]
	if !ok {
		tracer().Infof("registry cannot provide font %s", normalizedName)
		return nil, core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	}
	t, err := f.PrepareCase(size)
	if err != nil {
		tracer().Errorf("cannot prepare font %s at %.2f: %v", normalizedName, size, err)
		return nil, core.WrapError(err, core.EMISSING, "font %s not usable at %.2f px", normalizedName, size)
	}
	tracer().Debugf("font registry has font %s, caches at %.2f", normalizedName, size)
	fr.typecases[tname] = t
	return t, nil
}

// LogFontList dumps the list of known fonts and typecases in a registry
// to the trace (log-level Debug).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Debugf("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Debugf("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Debugf("------------------------")
}

func appendSize(fname string, size float64) string {
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
