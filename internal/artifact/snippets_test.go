package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/schema"
)

func TestSnippetsNames(t *testing.T) {
	t.Parallel()

	snips := Snippets(sampleSchema())
	require.Len(t, snips, 3)
	assert.Contains(t, snips, SnippetCSSVariables)
	assert.Contains(t, snips, SnippetTailwindConfig)
	assert.Contains(t, snips, SnippetStyledComponents)
}

func TestSnippetsCSSVariables(t *testing.T) {
	t.Parallel()

	css := Snippets(sampleSchema())[SnippetCSSVariables]

	assert.True(t, strings.HasPrefix(css, ":root {"))
	assert.True(t, strings.HasSuffix(css, "}"))
	assert.Contains(t, css, "--color-primary: #ff0000;")
	assert.Contains(t, css, "--color-secondary: #008000;")
	assert.Contains(t, css, "--color-text: #212529;")
	assert.Contains(t, css, "--font-body: Inter, sans-serif;")
	assert.Contains(t, css, "--font-heading: Playfair Display;")
	assert.Contains(t, css, "--font-size-base: 16px;")
	assert.Contains(t, css, "--spacing-unit: 16px;")
	assert.Contains(t, css, "--spacing-md: var(--spacing-unit);")
	assert.Contains(t, css, "--border-radius: 6px;")
}

func TestSnippetsTailwindConfig(t *testing.T) {
	t.Parallel()

	tw := Snippets(sampleSchema())[SnippetTailwindConfig]

	assert.True(t, strings.HasPrefix(tw, "// tailwind.config.js"))
	assert.Contains(t, tw, "primary: '#ff0000',")
	assert.Contains(t, tw, "'surface-bg': '#ffffff', // Renamed for clarity")
	assert.Contains(t, tw, "'text-main': '#212529',")
	assert.Contains(t, tw, "sans: ['Inter', 'ui-sans-serif', 'system-ui'],")
	assert.Contains(t, tw, "heading: ['Playfair Display', 'ui-serif', 'Georgia'], // Example fallback")
	assert.Contains(t, tw, "'unit': '16px',")
	assert.Contains(t, tw, "'xs': `calc(${16}px * 0.25)`,")
	assert.Contains(t, tw, "'md': '16px',")
	assert.Contains(t, tw, "'2xl': `calc(${16}px * 3)`,")
	assert.Contains(t, tw, "DEFAULT: '6px',")
}

func TestSnippetsStyledComponentsTheme(t *testing.T) {
	t.Parallel()

	styled := Snippets(sampleSchema())[SnippetStyledComponents]

	assert.True(t, strings.HasPrefix(styled, "// theme.js (for styled-components)"))
	assert.True(t, strings.HasSuffix(styled, "export default theme;"))
	assert.Contains(t, styled, "body: 'Inter, sans-serif', // Keep full font stack")
	assert.Contains(t, styled, "heading: 'Playfair Display',")
	assert.Contains(t, styled, "xs: `calc(16px * 0.25)`,")
	assert.Contains(t, styled, "xxl: `calc(16px * 3)`,")
	assert.Contains(t, styled, "borderRadius: '6px',")
}

func TestSnippetsDefaults(t *testing.T) {
	t.Parallel()

	snips := Snippets(&schema.Schema{})

	css := snips[SnippetCSSVariables]
	assert.Contains(t, css, "--color-primary: #0000ff;")
	assert.Contains(t, css, "--color-secondary: #6c757d;")
	assert.Contains(t, css, "--color-accent: #ffc107;")
	assert.Contains(t, css, "--color-background: #ffffff;")
	assert.Contains(t, css, "--color-text: #000000;")
	assert.Contains(t, css, "--font-body: sans-serif;")
	assert.Contains(t, css, "--font-heading: sans-serif;")
	assert.Contains(t, css, "--spacing-unit: 8px;")
	assert.Contains(t, css, "--border-radius: 4px;")

	tw := snips[SnippetTailwindConfig]
	assert.Contains(t, tw, "'xs': `calc(${8}px * 0.25)`,")
}

func TestSnippetsRadiusFallsBackToCards(t *testing.T) {
	t.Parallel()

	s := sampleSchema()
	s.Components.Buttons.BorderRadius = ""

	css := Snippets(s)[SnippetCSSVariables]
	assert.Contains(t, css, "--border-radius: 8px;")
}

func TestSnippetsSpacingLeadingDigits(t *testing.T) {
	t.Parallel()

	s := sampleSchema()
	s.Layout.CommonSpacingUnits = []string{"12.5px"}

	tw := Snippets(s)[SnippetTailwindConfig]
	assert.Contains(t, tw, "'unit': '12px',")
	assert.Contains(t, tw, "'sm': `calc(${12}px * 0.5)`,")
}

func TestSnippetsQuotedFontStack(t *testing.T) {
	t.Parallel()

	s := sampleSchema()
	s.Typography.Body.FontFamily = `"Open Sans", Helvetica, sans-serif`
	s.Typography.Headings = nil

	tw := Snippets(s)[SnippetTailwindConfig]
	assert.Contains(t, tw, "sans: ['Open Sans', 'ui-sans-serif', 'system-ui'],")

	styled := Snippets(s)[SnippetStyledComponents]
	assert.Contains(t, styled, `body: '"Open Sans", Helvetica, sans-serif', // Keep full font stack`)
}

func TestSnippetsNilSchema(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Snippets(nil))
}
