// Package schema defines the canonical design-schema document produced by
// an analysis run, its assembly from resolver outputs, and its advisory
// validation.
package schema

// Version identifies the document shape emitted by this build.
const Version = "1.0"

// Schema is the canonical description of a page's visual design.
//
// Field order matters: encoding mirrors the documented document layout.
type Schema struct {
	Metadata      Metadata       `json:"metadata"`
	Colors        ColorScheme    `json:"colors"`
	Typography    Typography     `json:"typography"`
	Layout        Layout         `json:"layout"`
	Components    Components     `json:"components"`
	Images        Images         `json:"images"`
	DesignSummary DesignSummary  `json:"design_summary"`
	AIConsumption *AIConsumption `json:"ai_consumption,omitempty"`
}

// Metadata records where and when the schema was extracted.
type Metadata struct {
	SourceURL      string   `json:"source_url" validate:"required,url"`
	ExtractionDate string   `json:"extraction_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	SchemaVersion  string   `json:"schema_version" validate:"required"`
	CMS            *CMSInfo `json:"cms,omitempty"`
}

// CMSInfo is filled in by CMS enhancer plugins.
type CMSInfo struct {
	Type  string `json:"type" validate:"required"`
	Theme string `json:"theme,omitempty"`
}

// ColorScheme holds the five role colors plus the full detected palette.
// Every color is canonical lowercase #rrggbb.
type ColorScheme struct {
	PrimaryColor    string   `json:"primary_color" validate:"required,hexcolor6"`
	SecondaryColor  string   `json:"secondary_color" validate:"required,hexcolor6"`
	AccentColor     string   `json:"accent_color" validate:"required,hexcolor6"`
	BackgroundColor string   `json:"background_color" validate:"required,hexcolor6"`
	TextColor       string   `json:"text_color" validate:"required,hexcolor6"`
	Palette         []string `json:"palette" validate:"max=15,dive,hexcolor6"`
}

// Typography describes body text, detected heading levels, and font loading.
type Typography struct {
	Headings            map[string]HeadingFont `json:"headings" validate:"dive"`
	Body                BodyFont               `json:"body"`
	FontImports         []string               `json:"font_imports"`
	CustomFontsDetected bool                   `json:"custom_fonts_detected"`
}

// HeadingFont is recorded only when all three attributes were observed.
type HeadingFont struct {
	FontFamily string `json:"font_family" validate:"required"`
	FontSize   string `json:"font_size" validate:"required"`
	FontWeight string `json:"font_weight" validate:"required"`
}

// BodyFont always carries values; unobserved attributes fall back to
// browser defaults per attribute.
type BodyFont struct {
	FontFamily string `json:"font_family" validate:"required"`
	FontSize   string `json:"font_size" validate:"required"`
	FontWeight string `json:"font_weight" validate:"required"`
	LineHeight string `json:"line_height" validate:"required"`
}

// HeadingFontFamily returns the display font: the family of the first
// recorded level among h1, h2, h3, or fallback when none was recorded.
func (t Typography) HeadingFontFamily(fallback string) string {
	for _, tag := range []string{"h1", "h2", "h3"} {
		if h, ok := t.Headings[tag]; ok {
			if h.FontFamily != "" {
				return h.FontFamily
			}
			return fallback
		}
	}
	return fallback
}

// Layout captures page geometry and spacing rhythm.
type Layout struct {
	PageDimensions     Dimensions `json:"page_dimensions"`
	ContainerWidth     *float64   `json:"container_width"`
	HasGridSystem      bool       `json:"has_grid_system"`
	CommonSpacingUnits []string   `json:"common_spacing_units" validate:"dive,cssspacing"`
}

// Dimensions are pixel sizes; nil means the value was never observed.
type Dimensions struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Components holds per-component sampled style descriptors. A zero-valued
// descriptor means no visible element of that kind was found.
type Components struct {
	Buttons             ButtonStyle  `json:"buttons"`
	Cards               CardStyle    `json:"cards"`
	Forms               FormStyles   `json:"forms"`
	Navigation          NavStyle     `json:"navigation"`
	DetectedCSSPatterns []string     `json:"detected_css_patterns"`
	Sidebar             *SidebarInfo `json:"sidebar,omitempty"`
}

// ButtonStyle samples the first visible button-like element. Empty fields
// mean the signal was unavailable, never a default.
type ButtonStyle struct {
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor6"`
	TextColor       string `json:"text_color,omitempty" validate:"omitempty,hexcolor6"`
	Padding         string `json:"padding,omitempty"`
	Border          string `json:"border,omitempty"`
	BorderRadius    string `json:"border_radius,omitempty"`
	FontSize        string `json:"font_size,omitempty"`
	FontWeight      string `json:"font_weight,omitempty"`
	TextTransform   string `json:"text_transform,omitempty"`
}

// CardStyle samples the first visible card/panel-like element.
type CardStyle struct {
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor6"`
	BoxShadow       string `json:"box_shadow,omitempty"`
	BorderRadius    string `json:"border_radius,omitempty"`
	Padding         string `json:"padding,omitempty"`
	Border          string `json:"border,omitempty"`
}

// FormStyles groups form-control descriptors.
type FormStyles struct {
	Inputs InputStyle `json:"inputs"`
}

// InputStyle samples the first visible text-entry control.
type InputStyle struct {
	Border          string `json:"border,omitempty"`
	BorderRadius    string `json:"border_radius,omitempty"`
	Padding         string `json:"padding,omitempty"`
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor6"`
	FontSize        string `json:"font_size,omitempty"`
}

// NavStyle samples the primary navigation or header region.
type NavStyle struct {
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor6"`
	Height          string `json:"height,omitempty"`
	BoxShadow       string `json:"box_shadow,omitempty"`
	LinkColor       string `json:"link_color,omitempty" validate:"omitempty,hexcolor6"`
}

// SidebarInfo is filled in by CMS enhancer plugins.
type SidebarInfo struct {
	Present bool     `json:"present"`
	Width   *float64 `json:"width"`
}

// Images records icon strategy, sampled image styling, and logo discovery.
type Images struct {
	HasSVGIcons      bool       `json:"has_svg_icons"`
	HasIconFont      bool       `json:"has_icon_font"`
	IconClassesFound []string   `json:"icon_classes_found"`
	ImageStyle       ImageStyle `json:"image_style"`
	LogoDetected     bool       `json:"logo_detected"`
	LogoURL          *string    `json:"logo_url"`
}

// ImageStyle keeps only non-neutral styling observed on a representative
// content image.
type ImageStyle struct {
	BorderRadius string `json:"border_radius,omitempty"`
	BoxShadow    string `json:"box_shadow,omitempty"`
	Border       string `json:"border,omitempty"`
	Filter       string `json:"filter,omitempty"`
}

// DesignSummary carries the derived style keywords, alphabetized.
type DesignSummary struct {
	StyleKeywords []string `json:"style_keywords"`
}

// AIConsumption is present only on the AI-optimized view of a schema.
type AIConsumption struct {
	NaturalLanguageDescriptions Descriptions `json:"natural_language_descriptions"`
	SuggestedPromptElements     []string     `json:"suggested_prompt_elements"`
	FullPaletteHex              []string     `json:"full_palette_hex" validate:"dive,hexcolor6"`
}

// Descriptions are the generated natural-language summaries, one per
// design aspect.
type Descriptions struct {
	OverallStyle    string `json:"overall_style"`
	ColorScheme     string `json:"color_scheme"`
	Typography      string `json:"typography"`
	LayoutSpacing   string `json:"layout_spacing"`
	ComponentStyles string `json:"component_styles"`
}
