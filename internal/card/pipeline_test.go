package card

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records render calls and optionally fails them all.
type fakeRenderer struct {
	calls int
	fail  bool
}

func (f *fakeRenderer) Render(_ context.Context, htmlPath, pngPath string) error {
	f.calls++
	if f.fail {
		return errors.New("browser exploded")
	}
	return os.WriteFile(pngPath, []byte("png"), 0o644)
}

func testPipeline(t *testing.T, r Renderer) *Pipeline {
	t.Helper()
	root := t.TempDir()
	return NewPipeline(r, filepath.Join(root, "watermarked"), filepath.Join(root, "redesigns"), nil)
}

func TestGenerateProducesPreviewAndFinalPerTemplate(t *testing.T) {
	r := &fakeRenderer{}
	p := testPipeline(t, r)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	artifacts, err := p.Generate(context.Background(), Info{Trade: "plumber"}, "Joe Smith Plumbing", nil, day)
	require.NoError(t, err)
	require.Len(t, artifacts, len(TemplateNames()))
	assert.Equal(t, 2*len(TemplateNames()), r.calls)

	for _, a := range artifacts {
		assert.True(t, strings.HasSuffix(a.Preview, "_preview.png"), a.Preview)
		assert.True(t, strings.HasSuffix(a.Final, "_final.png"), a.Final)
		assert.Contains(t, a.Preview, "watermarked")
		assert.Contains(t, a.Final, "redesigns")
		for _, path := range []string{a.Preview, a.Final} {
			_, err := os.Stat(path)
			assert.NoError(t, err)
			_, err = os.Stat(strings.TrimSuffix(path, ".png") + ".html")
			assert.NoError(t, err)
		}
	}
}

func TestGenerateHonorsTemplateSelection(t *testing.T) {
	p := testPipeline(t, &fakeRenderer{})

	artifacts, err := p.Generate(context.Background(), Info{}, "Joe", []string{"dark_bold"}, time.Now())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "dark_bold", artifacts[0].Template)
}

func TestGenerateWithoutRendererKeepsHTML(t *testing.T) {
	p := testPipeline(t, nil)

	artifacts, err := p.Generate(context.Background(), Info{}, "Joe", []string{"trade_badge"}, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(artifacts[0].Preview, ".html"))
	assert.True(t, strings.HasSuffix(artifacts[0].Final, ".html"))
}

func TestGenerateRenderFailureDegradesAndStopsRetrying(t *testing.T) {
	r := &fakeRenderer{fail: true}
	p := testPipeline(t, r)

	artifacts, err := p.Generate(context.Background(), Info{}, "Joe", nil, time.Now())
	require.NoError(t, err)

	// The first failure marks the renderer down; later variants skip it.
	assert.Equal(t, 1, r.calls)
	for _, a := range artifacts {
		assert.True(t, strings.HasSuffix(a.Preview, ".html"), a.Preview)
		assert.True(t, strings.HasSuffix(a.Final, ".html"), a.Final)
		data, err := os.ReadFile(a.Final)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<html")
	}
}
