package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/enhance"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
	"github.com/seerworks/styleseer/internal/sitetype"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

func sampleBundle() *signals.Bundle {
	return &signals.Bundle{
		URL: "https://example.com",
		Markup: `<html><head><title>Sample</title></head><body>` +
			`<div class="container"><button class="btn btn-primary">Go</button></div>` +
			`<svg viewBox="0 0 10 10"></svg>` +
			`</body></html>`,
		DominantColors: []signals.RGB{{R: 0, G: 100, B: 200}},
		RootStyles: signals.StyleMap{
			"background-color": "rgb(250, 250, 250)",
			"color":            "rgb(33, 37, 41)",
			"font-family":      "Inter, sans-serif",
			"font-size":        "16px",
			"font-weight":      "400",
			"line-height":      "24px",
		},
		PageWidth:      1440,
		PageHeight:     900,
		SpacingSamples: []string{"16px", "16px", "8px"},
		Components: map[string]signals.StyleMap{
			signals.ComponentButton: {
				"background-color": "rgb(0, 123, 255)",
				"border-radius":    "4px",
			},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestRunProducesSchema(t *testing.T) {
	opts := AllArtifacts()
	opts.Now = fixedNow

	res, err := Run(sampleBundle(), opts)
	require.NoError(t, err)
	require.NotNil(t, res.Schema)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "https://example.com", res.Schema.Metadata.SourceURL)
	assert.Equal(t, "2025-06-01T10:00:00Z", res.Schema.Metadata.ExtractionDate)
	assert.Equal(t, schema.Version, res.Schema.Metadata.SchemaVersion)
	assert.Equal(t, "#0064c8", res.Schema.Colors.PrimaryColor)
	assert.Equal(t, "#fafafa", res.Schema.Colors.BackgroundColor)
	assert.Equal(t, "#007bff", res.Schema.Components.Buttons.BackgroundColor)
	assert.True(t, res.Schema.Images.HasSVGIcons)
	assert.NotEmpty(t, res.Schema.DesignSummary.StyleKeywords)
	assert.Equal(t, sitetype.Bootstrap, res.SiteType)
	assert.Empty(t, res.Problems)
}

func TestRunArtifactSelection(t *testing.T) {
	bare, err := Run(sampleBundle(), Options{Now: fixedNow})
	require.NoError(t, err)
	assert.Nil(t, bare.AISchema)
	assert.Nil(t, bare.Snippets)
	assert.Empty(t, bare.Docs)

	opts := AllArtifacts()
	opts.Now = fixedNow
	full, err := Run(sampleBundle(), opts)
	require.NoError(t, err)

	require.NotNil(t, full.AISchema)
	require.NotNil(t, full.AISchema.AIConsumption)
	assert.Nil(t, full.Schema.AIConsumption)
	assert.Len(t, full.Snippets, 3)
	assert.Contains(t, full.Docs, "## AI Integration Guide")
}

func TestRunDocsWithoutAIView(t *testing.T) {
	res, err := Run(sampleBundle(), Options{Docs: true, Now: fixedNow})
	require.NoError(t, err)

	assert.Contains(t, res.Docs, "# Design Scheme Documentation")
	assert.Contains(t, res.Docs, "See details below.")
	assert.NotContains(t, res.Docs, "## AI Integration Guide")
}

func TestRunNilBundle(t *testing.T) {
	res, err := Run(nil, AllArtifacts())
	require.Error(t, err)
	assert.Nil(t, res)

	var collectErr *styleseererrors.CollectError
	assert.ErrorAs(t, err, &collectErr)
}

func TestRunDeterministic(t *testing.T) {
	opts := AllArtifacts()
	opts.Now = fixedNow

	first, err := Run(sampleBundle(), opts)
	require.NoError(t, err)
	second, err := Run(sampleBundle(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Schema, second.Schema)
	assert.Equal(t, first.AISchema, second.AISchema)
	assert.Equal(t, first.Snippets, second.Snippets)
	assert.Equal(t, first.Docs, second.Docs)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunReportsStages(t *testing.T) {
	var stages []string
	opts := AllArtifacts()
	opts.Now = fixedNow
	opts.OnStage = func(stage string) { stages = append(stages, stage) }

	_, err := Run(sampleBundle(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{StageResolve, StageValidate, StageClassify, StageEnhance, StageArtifacts}, stages)

	stages = nil
	_, err = Run(sampleBundle(), Options{Now: fixedNow, OnStage: func(stage string) { stages = append(stages, stage) }})
	require.NoError(t, err)
	assert.Equal(t, []string{StageResolve, StageValidate, StageClassify, StageEnhance}, stages)
}

func TestRunValidationProblemsAreAdvisory(t *testing.T) {
	b := sampleBundle()
	b.URL = "not a url"

	res, err := Run(b, Options{Now: fixedNow})
	require.NoError(t, err)
	require.NotNil(t, res.Schema)
	assert.NotEmpty(t, res.Problems)
}

type stubEnhancer struct {
	name     string
	siteType string
}

func (s stubEnhancer) Name() string { return s.name }

func (s stubEnhancer) AppliesTo(siteType string) bool { return siteType == s.siteType }

func (s stubEnhancer) Enhance(doc *schema.Schema, _ *signals.Bundle) error {
	doc.Metadata.CMS = &schema.CMSInfo{Type: s.siteType}
	return nil
}

func TestRunAppliesRegisteredEnhancers(t *testing.T) {
	t.Cleanup(enhance.ResetRegistry)
	require.NoError(t, enhance.RegisterEnhancer(stubEnhancer{name: "stub", siteType: sitetype.WordPress}))

	b := sampleBundle()
	b.Markup = `<html><body><link href="/wp-content/themes/twentytwentyfour/style.css"></body></html>`

	res, err := Run(b, Options{Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, sitetype.WordPress, res.SiteType)
	assert.Equal(t, []string{"stub"}, res.AppliedPlugins)
	require.NotNil(t, res.Schema.Metadata.CMS)
	assert.Equal(t, sitetype.WordPress, res.Schema.Metadata.CMS.Type)
}
