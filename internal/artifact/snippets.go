package artifact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
)

// Snippet names; they double as output file base names.
const (
	SnippetCSSVariables     = "css_variables"
	SnippetTailwindConfig   = "tailwind_config"
	SnippetStyledComponents = "styled_components_theme"
)

// Defaults used when a schema is missing the corresponding value.
const (
	snippetDefaultPrimary    = "#0000ff"
	snippetDefaultSecondary  = "#6c757d"
	snippetDefaultAccent     = "#ffc107"
	snippetDefaultBackground = "#ffffff"
	snippetDefaultText       = "#000000"
	snippetDefaultBodyFont   = "sans-serif"
	snippetDefaultBodySize   = "16px"
	snippetDefaultSpacing    = "8"
	snippetDefaultRadius     = "4"
)

var leadingDigitsRe = regexp.MustCompile(`^\d+`)

// Snippets renders the theme-code snippets for a schema: a CSS custom
// property block, a Tailwind config, and a styled-components theme, keyed
// by snippet name.
func Snippets(s *schema.Schema) map[string]string {
	if s == nil {
		return nil
	}

	primary := orDefault(s.Colors.PrimaryColor, snippetDefaultPrimary)
	secondary := orDefault(s.Colors.SecondaryColor, snippetDefaultSecondary)
	accent := orDefault(s.Colors.AccentColor, snippetDefaultAccent)
	background := orDefault(s.Colors.BackgroundColor, snippetDefaultBackground)
	textColor := orDefault(s.Colors.TextColor, snippetDefaultText)

	bodyFontRaw := orDefault(s.Typography.Body.FontFamily, snippetDefaultBodyFont)
	bodySize := orDefault(s.Typography.Body.FontSize, snippetDefaultBodySize)
	headingFontRaw := s.Typography.HeadingFontFamily(bodyFontRaw)

	// Configs want a single font name, not the whole stack.
	bodyFont := firstFontOfStack(bodyFontRaw)
	headingFont := firstFontOfStack(headingFontRaw)

	spacingVal := snippetDefaultSpacing
	if units := s.Layout.CommonSpacingUnits; len(units) > 0 {
		if m := leadingDigitsRe.FindString(units[0]); m != "" {
			spacingVal = m
		}
	}
	spacingUnit := spacingVal + "px"

	radiusVal := snippetDefaultRadius
	radius := s.Components.Buttons.BorderRadius
	if radius == "" {
		radius = s.Components.Cards.BorderRadius
	}
	if radius != "" {
		if m := leadingDigitsRe.FindString(radius); m != "" {
			radiusVal = m
		}
	}
	borderRadius := radiusVal + "px"

	return map[string]string{
		SnippetCSSVariables: cssVariables(primary, secondary, accent, background, textColor,
			bodyFontRaw, headingFontRaw, bodySize, spacingUnit, borderRadius),
		SnippetTailwindConfig: tailwindConfig(primary, secondary, accent, background, textColor,
			bodyFont, headingFont, bodySize, spacingVal, spacingUnit, borderRadius),
		SnippetStyledComponents: styledComponentsTheme(primary, secondary, accent, background, textColor,
			bodyFontRaw, headingFontRaw, bodySize, spacingUnit, borderRadius),
	}
}

func cssVariables(primary, secondary, accent, background, textColor,
	bodyFontRaw, headingFontRaw, bodySize, spacingUnit, borderRadius string) string {
	return fmt.Sprintf(`:root {
  /* Colors */
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --color-background: %s;
  --color-text: %s;

  /* Typography */
  --font-body: %s;
  --font-heading: %s;
  --font-size-base: %s;
  /* Add more font sizes if extracted */

  /* Spacing */
  --spacing-unit: %s;
  --spacing-xs: calc(var(--spacing-unit) * 0.25);
  --spacing-sm: calc(var(--spacing-unit) * 0.5);
  --spacing-md: var(--spacing-unit);
  --spacing-lg: calc(var(--spacing-unit) * 1.5);
  --spacing-xl: calc(var(--spacing-unit) * 2);
  --spacing-xxl: calc(var(--spacing-unit) * 3);

  /* Borders */
  --border-radius: %s;
  /* Add border width/style if extracted */
}`,
		primary, secondary, accent, background, textColor,
		bodyFontRaw, headingFontRaw, bodySize, spacingUnit, borderRadius)
}

func tailwindConfig(primary, secondary, accent, background, textColor,
	bodyFont, headingFont, bodySize, spacingVal, spacingUnit, borderRadius string) string {
	// Spacing multiples are emitted as JS template literals.
	calc := func(mult string) string {
		return "`calc(${" + spacingVal + "}px * " + mult + ")`"
	}
	return fmt.Sprintf(`// tailwind.config.js
module.exports = {
  theme: {
    extend: {
      colors: {
        primary: '%s',
        secondary: '%s',
        accent: '%s',
        'surface-bg': '%s', // Renamed for clarity
        'text-main': '%s',   // Renamed for clarity
      },
      fontFamily: {
        // Ensure font names are suitable for Tailwind config keys/values
        sans: ['%s', 'ui-sans-serif', 'system-ui'],
        heading: ['%s', 'ui-serif', 'Georgia'], // Example fallback
      },
      fontSize: {
         'base': '%s',
         // Add other sizes if available, e.g., 'lg': '1.125rem'
      },
      spacing: {
        'unit': '%s',
        // Generate some multiples based on the unit
        'xs': %s,
        'sm': %s,
        'md': '%s',
        'lg': %s,
        'xl': %s,
        '2xl': %s,
      },
      borderRadius: {
        DEFAULT: '%s',
        // Add other radius sizes if needed, e.g., 'lg': '0.5rem'
      },
    },
  },
  plugins: [],
}`,
		primary, secondary, accent, background, textColor,
		bodyFont, headingFont, bodySize,
		spacingUnit, calc("0.25"), calc("0.5"), spacingUnit, calc("1.5"), calc("2"), calc("3"),
		borderRadius)
}

func styledComponentsTheme(primary, secondary, accent, background, textColor,
	bodyFontRaw, headingFontRaw, bodySize, spacingUnit, borderRadius string) string {
	calc := func(mult string) string {
		return "`calc(" + spacingUnit + " * " + mult + ")`"
	}
	return fmt.Sprintf(`// theme.js (for styled-components)
const theme = {
  colors: {
    primary: '%s',
    secondary: '%s',
    accent: '%s',
    background: '%s',
    text: '%s',
  },
  fonts: {
    body: '%s', // Keep full font stack
    heading: '%s',
  },
  fontSizes: {
    base: '%s',
    // Add more sizes if extracted, e.g., h1: '2rem'
  },
  spacing: {
    unit: '%s',
    xs: %s,
    sm: %s,
    md: '%s',
    lg: %s,
    xl: %s,
    xxl: %s,
  },
  borderRadius: '%s',
};

export default theme;`,
		primary, secondary, accent, background, textColor,
		bodyFontRaw, headingFontRaw, bodySize,
		spacingUnit, calc("0.25"), calc("0.5"), spacingUnit, calc("1.5"), calc("2"), calc("3"),
		borderRadius)
}

// firstFontOfStack returns the first entry of a font-family stack with any
// surrounding quotes removed.
func firstFontOfStack(stack string) string {
	first := strings.SplitN(stack, ",", 2)[0]
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
