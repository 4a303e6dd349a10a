package resources

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/writeright/core"
	"github.com/stretchr/testify/assert"
)

func TestConfiguredTypefaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.resources")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts": " Arial , ,DejaVuSans.ttf",
	}
	assert.Equal(t, []string{"Arial", "DejaVuSans.ttf"}, ConfiguredTypefaces(conf))
	assert.Equal(t, DefaultTypefaces, ConfiguredTypefaces(testconfig.Conf{}))
	assert.Equal(t, DefaultTypefaces, ConfiguredTypefaces(nil))
}

func TestResolveMissingTypeface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.resources")
	defer teardown()
	//
	loader := ResolveTypeface("No-Such-Typeface-WriteRight-4711")
	for i := 0; i < 2; i++ { // a promise may be awaited repeatedly
		f, err := loader.Await(context.Background())
		if err == nil {
			t.Fatalf("expected missing typeface to produce an error (call %d), got %v", i+1, f)
		}
		assert.Nil(t, f)
		assert.Equal(t, core.EMISSING, core.Code(err), "call %d", i+1)
	}
}

func TestAwaitCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.resources")
	defer teardown()
	//
	loader := &fontLoader{done: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loader.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	// the promise is still usable after a cancelled wait
	loader.err = NotFound("x")
	close(loader.done)
	_, err = loader.Await(context.Background())
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveSystemTypeface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "writeright.resources")
	defer teardown()
	//
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, name := range DefaultTypefaces {
		promise := ResolveTypeface(name)
		f, err := promise.Await(ctx)
		if err != nil {
			t.Logf("typeface %s not installed: %v", name, err)
			continue
		}
		t.Logf("found typeface %s = %s", name, f.Fontname)
		assert.NotNil(t, f.SFNT)
		again, err := promise.Await(ctx)
		assert.NoError(t, err)
		assert.Same(t, f, again)
		return
	}
	t.Skip("none of the default typefaces is installed on this system")
}
