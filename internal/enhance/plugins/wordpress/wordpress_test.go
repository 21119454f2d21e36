package wordpressplugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

func TestAppliesTo(t *testing.T) {
	t.Parallel()

	p := New()
	assert.True(t, p.AppliesTo("wordpress"))
	assert.False(t, p.AppliesTo("shopify"))
	assert.False(t, p.AppliesTo("general"))
}

func TestEnhanceDetectsTheme(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{}
	b := &signals.Bundle{
		Markup: `<link rel="stylesheet" href="/wp-content/themes/twentytwentyfour/style.css">`,
	}

	require.NoError(t, New().Enhance(s, b))
	require.NotNil(t, s.Metadata.CMS)
	assert.Equal(t, "wordpress", s.Metadata.CMS.Type)
	assert.Equal(t, "twentytwentyfour", s.Metadata.CMS.Theme)
}

func TestEnhanceWithoutThemeStillTagsCMS(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{}
	b := &signals.Bundle{Markup: `<script src="/wp-includes/js/jquery.js"></script>`}

	require.NoError(t, New().Enhance(s, b))
	require.NotNil(t, s.Metadata.CMS)
	assert.Equal(t, "wordpress", s.Metadata.CMS.Type)
	assert.Empty(t, s.Metadata.CMS.Theme)
}

func TestEnhanceDetectsSidebar(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{}
	b := &signals.Bundle{
		Markup: `<body><main>content</main><aside id="secondary"><div class="widget">w</div></aside></body>`,
		Components: map[string]signals.StyleMap{
			signals.ComponentSidebar: {"width": "300"},
		},
	}

	require.NoError(t, New().Enhance(s, b))
	require.NotNil(t, s.Components.Sidebar)
	assert.True(t, s.Components.Sidebar.Present)
	require.NotNil(t, s.Components.Sidebar.Width)
	assert.Equal(t, 300.0, *s.Components.Sidebar.Width)
}

func TestEnhanceSidebarWithoutMeasuredWidth(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{}
	b := &signals.Bundle{Markup: `<div class="sidebar">links</div>`}

	require.NoError(t, New().Enhance(s, b))
	require.NotNil(t, s.Components.Sidebar)
	assert.True(t, s.Components.Sidebar.Present)
	assert.Nil(t, s.Components.Sidebar.Width)
}

func TestEnhanceIgnoresHiddenSidebar(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{}
	b := &signals.Bundle{Markup: `<div class="sidebar" style="display:none">links</div>`}

	require.NoError(t, New().Enhance(s, b))
	assert.Nil(t, s.Components.Sidebar)
}

func TestEnhanceNilInputs(t *testing.T) {
	t.Parallel()

	require.NoError(t, New().Enhance(nil, nil))
	require.NoError(t, New().Enhance(&schema.Schema{}, nil))
}
