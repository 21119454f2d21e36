package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/signals"
)

func TestComponentsButtonMapping(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{
		Components: map[string]signals.StyleMap{
			signals.ComponentButton: {
				"background-color": "rgb(0, 123, 255)",
				"color":            "rgb(255, 255, 255)",
				"padding":          "8px 16px",
				"border":           "0px none rgb(255, 255, 255)",
				"border-radius":    "4px",
				"font-size":        "14px",
				"font-weight":      "500",
				"text-transform":   "uppercase",
			},
		},
	}

	c := Components(b)
	assert.Equal(t, "#007bff", c.Buttons.BackgroundColor)
	assert.Equal(t, "#ffffff", c.Buttons.TextColor)
	assert.Equal(t, "8px 16px", c.Buttons.Padding)
	assert.Equal(t, "4px", c.Buttons.BorderRadius)
	assert.Equal(t, "uppercase", c.Buttons.TextTransform)
}

func TestComponentsCardAndNavNeutralShadowDropped(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{
		Components: map[string]signals.StyleMap{
			signals.ComponentCard: {
				"background-color": "rgb(255, 255, 255)",
				"box-shadow":       "none",
				"border-radius":    "8px",
			},
			signals.ComponentNav: {
				"background-color": "rgb(33, 37, 41)",
				"height":           "64px",
				"box-shadow":       "rgba(0, 0, 0, 0.1) 0px 2px 4px",
				"link-color":       "rgb(255, 255, 255)",
			},
		},
	}

	c := Components(b)
	assert.Empty(t, c.Cards.BoxShadow)
	assert.Equal(t, "8px", c.Cards.BorderRadius)
	assert.Equal(t, "#212529", c.Navigation.BackgroundColor)
	assert.Equal(t, "64px", c.Navigation.Height)
	assert.Equal(t, "rgba(0, 0, 0, 0.1) 0px 2px 4px", c.Navigation.BoxShadow)
	assert.Equal(t, "#ffffff", c.Navigation.LinkColor)
}

func TestComponentsInputMapping(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{
		Components: map[string]signals.StyleMap{
			signals.ComponentInput: {
				"border":           "1px solid rgb(206, 212, 218)",
				"border-radius":    "4px",
				"padding":          "6px 12px",
				"background-color": "rgb(255, 255, 255)",
				"font-size":        "16px",
			},
		},
	}

	c := Components(b)
	assert.Equal(t, "1px solid rgb(206, 212, 218)", c.Forms.Inputs.Border)
	assert.Equal(t, "#ffffff", c.Forms.Inputs.BackgroundColor)
	assert.Equal(t, "16px", c.Forms.Inputs.FontSize)
}

func TestComponentsMissingSamplesStayZero(t *testing.T) {
	t.Parallel()

	c := Components(&signals.Bundle{})
	assert.Empty(t, c.Buttons.BackgroundColor)
	assert.Empty(t, c.Navigation.Height)
	assert.Equal(t, []string{}, c.DetectedCSSPatterns)
}

func TestComponentsClassPatterns(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{
		ClassCounts: []signals.ClassCount{
			{Token: "btn-primary", Count: 12},
			{Token: "container", Count: 9},
			{Token: "xy", Count: 30},
			{Token: "weird", Count: 8},
			{Token: "nav-link", Count: 6},
			{Token: "row", Count: 7},
			{Token: "col-md-6", Count: 5},
		},
	}

	c := Components(b)
	assert.Equal(t, []string{"btn-primary", "container", "row", "nav-link"}, c.DetectedCSSPatterns)
}

func TestComponentsClassPatternsFromMarkupFallback(t *testing.T) {
	t.Parallel()

	markup := strings.Repeat(`<div class="card-body flex"></div>`, 6)
	c := Components(&signals.Bundle{Markup: markup})
	assert.Equal(t, []string{"card-body", "flex"}, c.DetectedCSSPatterns)
}

func TestComponentsClassPatternCap(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{}
	for i := 0; i < 30; i++ {
		b.ClassCounts = append(b.ClassCounts, signals.ClassCount{
			Token: "btn-level-" + string(rune('a'+i)),
			Count: 100 - i,
		})
	}

	c := Components(b)
	require.Len(t, c.DetectedCSSPatterns, 15)
	assert.Equal(t, "btn-level-a", c.DetectedCSSPatterns[0])
}
