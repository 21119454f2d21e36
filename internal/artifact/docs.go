package artifact

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
)

// Docs renders the markdown report for a schema. Passing the AI view reuses
// its generated sentences as section leads; a plain schema falls back to
// generic leads and the raw field dumps.
func Docs(s *schema.Schema) string {
	if s == nil {
		return ""
	}

	var parts []string
	add := func(p string) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	overall, colorLead, typoLead, layoutLead, compLead := sectionLeads(s)

	add("# Design Scheme Documentation")
	add(fmt.Sprintf("*Source URL: %s*", orNA(s.Metadata.SourceURL)))
	add(fmt.Sprintf("*Extraction Date: %s*", orNA(s.Metadata.ExtractionDate)))
	add(fmt.Sprintf("*Schema Version: %s*", orNA(s.Metadata.SchemaVersion)))
	add("\n## Overall Style Summary")
	add(overall)

	add("\n## Color Palette")
	add(colorLead)
	add("\n| Role             | Color Preview | Hex Code                 |")
	add("|------------------|---------------|--------------------------|")
	add(colorRow("Primary", s.Colors.PrimaryColor))
	add(colorRow("Secondary", s.Colors.SecondaryColor))
	add(colorRow("Accent", s.Colors.AccentColor))
	add(colorRow("Background", s.Colors.BackgroundColor))
	add(colorRow("Text", s.Colors.TextColor))

	if len(s.Colors.Palette) > 0 {
		add("\n### Full Palette Detected")
		swatches := make([]string, 0, len(s.Colors.Palette))
		for _, color := range s.Colors.Palette {
			swatches = append(swatches, fmt.Sprintf(
				`<div style="background-color: %s; width: 30px; height: 30px; display: inline-block; margin: 2px; border: 1px solid #ccc; vertical-align: middle;" title="%s"></div>`,
				color, color))
		}
		add(strings.Join(swatches, " "))
	}

	add("\n## Typography")
	add(typoLead)
	add("\n### Body Text")
	add(fmt.Sprintf("- **Font Family:** `%s`", orNA(s.Typography.Body.FontFamily)))
	add(fmt.Sprintf("- **Font Size:** `%s`", orNA(s.Typography.Body.FontSize)))
	add(fmt.Sprintf("- **Font Weight:** `%s`", orNA(s.Typography.Body.FontWeight)))
	add(fmt.Sprintf("- **Line Height:** `%s`", orNA(s.Typography.Body.LineHeight)))

	if len(s.Typography.Headings) > 0 {
		add("\n### Headings")
		tags := make([]string, 0, len(s.Typography.Headings))
		for tag := range s.Typography.Headings {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			h := s.Typography.Headings[tag]
			add(fmt.Sprintf("#### `<%s>` Style", tag))
			add(fmt.Sprintf("  - **Font Family:** `%s`", orNA(h.FontFamily)))
			add(fmt.Sprintf("  - **Font Size:** `%s`", orNA(h.FontSize)))
			add(fmt.Sprintf("  - **Font Weight:** `%s`", orNA(h.FontWeight)))
		}
	}

	if len(s.Typography.FontImports) > 0 {
		add("\n### Font Imports Detected")
		for _, imp := range s.Typography.FontImports {
			add(fmt.Sprintf("- `%s`", imp))
		}
	}
	if s.Typography.CustomFontsDetected {
		add("- Custom fonts (`@font-face`) detected in CSS.")
	}

	add("\n## Layout & Spacing")
	add(layoutLead)
	add(fmt.Sprintf("- **Page Dimensions (Approx):** Width: `%spx`, Height: `%spx`",
		dimOrNA(s.Layout.PageDimensions.Width), dimOrNA(s.Layout.PageDimensions.Height)))
	container := "Full Width"
	if w := s.Layout.ContainerWidth; w != nil && *w != 0 {
		container = formatFloat(*w)
	}
	add(fmt.Sprintf("- **Container Width (Detected):** `%s`", container))
	add(fmt.Sprintf("- **Grid System Likely:** `%s`", yesNo(s.Layout.HasGridSystem)))
	if len(s.Layout.CommonSpacingUnits) > 0 {
		add(fmt.Sprintf("- **Common Spacing Units:** `%s`", strings.Join(s.Layout.CommonSpacingUnits, ", ")))
	}

	add("\n## Component Styles (Sampled)")
	add(compLead)

	if s.Components.Buttons != (schema.ButtonStyle{}) {
		add("\n### Buttons")
		addFields(add, []fieldValue{
			{"Background Color", s.Components.Buttons.BackgroundColor},
			{"Text Color", s.Components.Buttons.TextColor},
			{"Padding", s.Components.Buttons.Padding},
			{"Border", s.Components.Buttons.Border},
			{"Border Radius", s.Components.Buttons.BorderRadius},
			{"Font Size", s.Components.Buttons.FontSize},
			{"Font Weight", s.Components.Buttons.FontWeight},
			{"Text Transform", s.Components.Buttons.TextTransform},
		})
	}
	if s.Components.Cards != (schema.CardStyle{}) {
		add("\n### Cards / Panels")
		addFields(add, []fieldValue{
			{"Background Color", s.Components.Cards.BackgroundColor},
			{"Box Shadow", s.Components.Cards.BoxShadow},
			{"Border Radius", s.Components.Cards.BorderRadius},
			{"Padding", s.Components.Cards.Padding},
			{"Border", s.Components.Cards.Border},
		})
	}
	if s.Components.Forms.Inputs != (schema.InputStyle{}) {
		add("\n### Form Inputs")
		addFields(add, []fieldValue{
			{"Border", s.Components.Forms.Inputs.Border},
			{"Border Radius", s.Components.Forms.Inputs.BorderRadius},
			{"Padding", s.Components.Forms.Inputs.Padding},
			{"Background Color", s.Components.Forms.Inputs.BackgroundColor},
			{"Font Size", s.Components.Forms.Inputs.FontSize},
		})
	}
	if s.Components.Navigation != (schema.NavStyle{}) {
		add("\n### Navigation / Header")
		addFields(add, []fieldValue{
			{"Background Color", s.Components.Navigation.BackgroundColor},
			{"Height", s.Components.Navigation.Height},
			{"Box Shadow", s.Components.Navigation.BoxShadow},
			{"Link Color", s.Components.Navigation.LinkColor},
		})
	}

	if len(s.Components.DetectedCSSPatterns) > 0 {
		add("\n### Detected CSS Class Patterns")
		add(fmt.Sprintf("`%s`", strings.Join(s.Components.DetectedCSSPatterns, ", ")))
	}

	add("\n## Images & Icons")
	add(fmt.Sprintf("- **SVG Icons Used:** `%s`", yesNo(s.Images.HasSVGIcons)))
	add(fmt.Sprintf("- **Icon Font Used:** `%s`", yesNo(s.Images.HasIconFont)))
	if len(s.Images.IconClassesFound) > 0 {
		add(fmt.Sprintf("- **Detected Icon Classes:** `%s`", strings.Join(s.Images.IconClassesFound, ", ")))
	}

	if s.Images.ImageStyle != (schema.ImageStyle{}) {
		add("\n### Image Styling (Sampled)")
		addFields(add, []fieldValue{
			{"Border Radius", s.Images.ImageStyle.BorderRadius},
			{"Box Shadow", s.Images.ImageStyle.BoxShadow},
			{"Border", s.Images.ImageStyle.Border},
			{"Filter", s.Images.ImageStyle.Filter},
		})
	}

	add(fmt.Sprintf("\n- **Logo Detected:** `%s`", yesNo(s.Images.LogoDetected)))
	if s.Images.LogoURL != nil && *s.Images.LogoURL != "" {
		add(fmt.Sprintf("- **Logo URL:** `%s`", *s.Images.LogoURL))
	}

	if s.AIConsumption != nil {
		add("\n## AI Integration Guide")
		if prompts := s.AIConsumption.SuggestedPromptElements; len(prompts) > 0 {
			add("Key elements for AI prompts:")
			for i, element := range prompts {
				add(fmt.Sprintf("%d. %s", i+1, element))
			}
		}
	}

	return strings.Join(parts, "\n")
}

// sectionLeads picks the lead sentence for each report section: the AI
// view's descriptions when present, generic pointers otherwise.
func sectionLeads(s *schema.Schema) (overall, colors, typo, layout, comps string) {
	if s.AIConsumption != nil {
		d := s.AIConsumption.NaturalLanguageDescriptions
		return d.OverallStyle, d.ColorScheme, d.Typography, d.LayoutSpacing, d.ComponentStyles
	}
	overall = strings.Join(s.DesignSummary.StyleKeywords, " ")
	const fallback = "See details below."
	return overall, fallback, fallback, fallback, fallback
}

func colorRow(role, hex string) string {
	if hex == "" {
		return ""
	}
	swatch := fmt.Sprintf(
		`<div style="background-color: %s; width: 20px; height: 20px; display: inline-block; border: 1px solid #ccc; vertical-align: middle;"></div>`,
		hex)
	return fmt.Sprintf("| %-16s | %s      | `%s`             |", role, swatch, hex)
}

type fieldValue struct {
	label string
	value string
}

func addFields(add func(string), fields []fieldValue) {
	for _, f := range fields {
		if f.value != "" {
			add(fmt.Sprintf("- **%s:** `%s`", f.label, f.value))
		}
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func dimOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatFloat(*v)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
