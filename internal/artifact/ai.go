// Package artifact derives the optional outputs of an analysis run from a
// finalized schema: the AI-consumption view, theme code snippets, and a
// markdown report. Derivers are independent of each other and never modify
// the schema they are given.
package artifact

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
)

// AIView returns a deep copy of the schema extended with an ai_consumption
// section: natural-language descriptions of each design aspect, suggested
// prompt fragments, and the full palette for reference.
func AIView(s *schema.Schema) *schema.Schema {
	if s == nil {
		return nil
	}

	ai := s.Clone()
	var descriptions schema.Descriptions
	prompts := []string{}

	if kws := ai.DesignSummary.StyleKeywords; len(kws) > 0 {
		descriptions.OverallStyle = styleSentence(kws)
		prompts = append(prompts, "Design Style: "+strings.Join(kws, ", "))
	}

	colors := ai.Colors
	switch {
	case colors.PrimaryColor != "" && colors.SecondaryColor != "" && colors.AccentColor != "" &&
		colors.BackgroundColor != "" && colors.TextColor != "":
		descriptions.ColorScheme = fmt.Sprintf(
			"Key colors are Primary: %s, Secondary: %s, Accent: %s, Background: %s, Text: %s.",
			colors.PrimaryColor, colors.SecondaryColor, colors.AccentColor, colors.BackgroundColor, colors.TextColor)
		prompts = append(prompts, fmt.Sprintf(
			"Color Palette: Primary(%s), Secondary(%s), Accent(%s), Background(%s), Text(%s)",
			colors.PrimaryColor, colors.SecondaryColor, colors.AccentColor, colors.BackgroundColor, colors.TextColor))
	case len(colors.Palette) > 0:
		head := colors.Palette
		if len(head) > 5 {
			head = head[:5]
		}
		descriptions.ColorScheme = fmt.Sprintf("The main color palette includes: %s...", strings.Join(head, ", "))
		prompts = append(prompts, "Color Palette: "+strings.Join(head, ", "))
	}

	bodyFont := ai.Typography.Body.FontFamily
	if bodyFont == "" {
		bodyFont = "default"
	}
	headingFont := ai.Typography.HeadingFontFamily(bodyFont)
	if strings.EqualFold(headingFont, bodyFont) {
		descriptions.Typography = fmt.Sprintf("Typography primarily uses the '%s' font family.", bodyFont)
		prompts = append(prompts, fmt.Sprintf("Typography: Use '%s' font.", bodyFont))
	} else {
		descriptions.Typography = fmt.Sprintf("Typography uses '%s' for headings and '%s' for body text.", headingFont, bodyFont)
		prompts = append(prompts, fmt.Sprintf("Typography: Headings '%s', Body '%s'.", headingFont, bodyFont))
	}

	var layoutParts []string
	if ai.Layout.HasGridSystem {
		layoutParts = append(layoutParts, "grid-based layout")
	}
	if w := ai.Layout.ContainerWidth; w != nil && *w != 0 {
		layoutParts = append(layoutParts, fmt.Sprintf("contained width (around %spx)", formatFloat(*w)))
	} else {
		layoutParts = append(layoutParts, "full-width layout")
	}
	if spacing := ai.Layout.CommonSpacingUnits; len(spacing) > 0 {
		layoutParts = append(layoutParts, "common spacing unit around "+spacing[0])
		prompts = append(prompts, fmt.Sprintf("Spacing: Base unit ~%s.", spacing[0]))
	}
	descriptions.LayoutSpacing = fmt.Sprintf("Layout is generally %s.", strings.Join(layoutParts, ", "))

	var compParts []string
	if ai.Components.Buttons != (schema.ButtonStyle{}) {
		btnStyle := "sharp-edged"
		if r := ai.Components.Buttons.BorderRadius; r != "" && r != "0px" {
			btnStyle = "rounded"
		}
		compParts = append(compParts, btnStyle+" buttons")
	}
	if ai.Components.Cards != (schema.CardStyle{}) {
		cardStyle := "flat"
		if ai.Components.Cards.BoxShadow != "" {
			cardStyle = "shadowed"
		}
		compParts = append(compParts, cardStyle+" cards/panels")
	}
	if ai.Images.HasSVGIcons {
		compParts = append(compParts, "uses SVG icons")
	} else if ai.Images.HasIconFont {
		compParts = append(compParts, "uses icon fonts")
	}
	if len(compParts) > 0 {
		descriptions.ComponentStyles = fmt.Sprintf("Key component styles include: %s.", strings.Join(compParts, ", "))
	} else {
		descriptions.ComponentStyles = "Specific component styles were not prominently detected."
	}

	fullPalette := make([]string, len(ai.Colors.Palette))
	copy(fullPalette, ai.Colors.Palette)

	ai.AIConsumption = &schema.AIConsumption{
		NaturalLanguageDescriptions: descriptions,
		SuggestedPromptElements:     prompts,
		FullPaletteHex:              fullPalette,
	}
	return ai
}

func styleSentence(keywords []string) string {
	if len(keywords) > 1 {
		return fmt.Sprintf("The website features a %s and %s design style.",
			strings.Join(keywords[:len(keywords)-1], ", "), keywords[len(keywords)-1])
	}
	return fmt.Sprintf("The website features a %s design style.", keywords[0])
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
