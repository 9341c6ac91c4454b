package card

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Renderer rasterizes a saved HTML card to PNG. The one implementation drives
// headless Chromium; tests substitute their own.
type Renderer interface {
	Render(ctx context.Context, htmlPath, pngPath string) error
}

// Artifact is the preview/final pair produced for one template. Paths point at
// PNGs when rendering succeeded, otherwise at the kept HTML.
type Artifact struct {
	Template string
	Preview  string
	Final    string
}

// Pipeline turns card info into preview and final artifacts on disk.
type Pipeline struct {
	renderer   Renderer
	previewDir string
	finalDir   string
	log        *zap.Logger

	rendererDown bool
}

// NewPipeline creates a pipeline writing previews to previewDir and finals to
// finalDir. renderer may be nil, in which case only HTML artifacts are
// produced.
func NewPipeline(renderer Renderer, previewDir, finalDir string, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		renderer:   renderer,
		previewDir: previewDir,
		finalDir:   finalDir,
		log:        log,
	}
}

// Generate produces the full redesign package for a prospect: a watermarked
// preview and a clean final per requested template. A nil or empty template
// list means all templates. Rendering failures degrade to the HTML artifact
// and never abort the batch.
func (p *Pipeline) Generate(ctx context.Context, info Info, prospectName string, templateNames []string, now time.Time) ([]Artifact, error) {
	if len(templateNames) == 0 {
		templateNames = TemplateNames()
	}

	artifacts := make([]Artifact, 0, len(templateNames))
	for _, name := range templateNames {
		preview, err := p.produce(ctx, info, prospectName, name, VariantPreview, now)
		if err != nil {
			return nil, err
		}
		final, err := p.produce(ctx, info, prospectName, name, VariantFinal, now)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Template: name, Preview: preview, Final: final})
	}
	return artifacts, nil
}

// produce writes one variant's HTML and attempts to rasterize it. The HTML
// write is the only fatal step; a renderer failure returns the HTML path.
func (p *Pipeline) produce(ctx context.Context, info Info, prospectName, templateName string, variant Variant, now time.Time) (string, error) {
	html, err := Compose(info, templateName, variant == VariantPreview)
	if err != nil {
		return "", err
	}

	dir := p.finalDir
	if variant == VariantPreview {
		dir = p.previewDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact directory: %w", err)
	}

	base := ArtifactBase(prospectName, templateName, now, variant)
	htmlPath := filepath.Join(dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write card html: %w", err)
	}

	if p.renderer == nil || p.rendererDown {
		return htmlPath, nil
	}

	pngPath := filepath.Join(dir, base+".png")
	if err := p.renderer.Render(ctx, htmlPath, pngPath); err != nil {
		// Stop retrying for the rest of the batch; the browser is not coming
		// back between templates.
		p.rendererDown = true
		p.log.Warn("render failed, keeping HTML artifact",
			zap.String("html", htmlPath),
			zap.Error(err))
		fmt.Printf("⚠️  Render failed: %v\n", err)
		fmt.Printf("📄 HTML saved: %s\n", htmlPath)
		fmt.Println("   Install a renderer: ensure Chromium/Chrome is available on PATH")
		return htmlPath, nil
	}
	return pngPath, nil
}
