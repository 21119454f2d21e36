// Package signals defines the raw-observation bundle that collectors
// produce and the resolvers consume. A Bundle is created once per analysis
// run and is read-only from then on; resolvers never mutate it.
package signals

import "regexp"

// Component sample keys used in Bundle.Components.
const (
	ComponentButton  = "button"
	ComponentCard    = "card"
	ComponentInput   = "input"
	ComponentNav     = "navigation"
	ComponentSidebar = "sidebar"
)

// StyleMap holds raw computed-style values keyed by CSS property name.
// Values are whatever the collector observed ("rgb(255, 0, 0)", "16px",
// "0px 1px 3px rgba(0,0,0,0.1)"); normalization happens in the resolvers.
type StyleMap map[string]string

// RGB is one dominant color observed in a page screenshot.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Declaration is a single property/value pair scanned from style blocks,
// in document order.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// ClassCount records how often a class token appeared in the markup.
// Entries are kept in first-seen order.
type ClassCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// HeadingSample carries the computed styles of one visible heading level.
type HeadingSample struct {
	Level  string   `json:"level"`
	Styles StyleMap `json:"styles"`
}

// Bundle is the serializable set of raw style signals for one page.
//
// Collectors fill what they can observe; absent fields simply stay zero.
// The resolvers document their own fallbacks for missing signals, so a
// sparse bundle (for example from the static collector) still produces a
// complete schema.
type Bundle struct {
	URL             string              `json:"url"`
	Markup          string              `json:"markup,omitempty"`
	CSSText         string              `json:"css_text,omitempty"`
	DominantColors  []RGB               `json:"dominant_colors,omitempty"`
	ComputedColors  []string            `json:"computed_colors,omitempty"`
	CSSDeclarations []Declaration       `json:"css_declarations,omitempty"`
	RootStyles      StyleMap            `json:"root_styles,omitempty"`
	HeadingStyles   []HeadingSample     `json:"heading_styles,omitempty"`
	FontImports     []string            `json:"font_imports,omitempty"`
	PageWidth       float64             `json:"page_width,omitempty"`
	PageHeight      float64             `json:"page_height,omitempty"`
	ContainerWidths []float64           `json:"container_widths,omitempty"`
	GridElements    int                 `json:"grid_elements,omitempty"`
	SpacingSamples  []string            `json:"spacing_samples,omitempty"`
	Components      map[string]StyleMap `json:"components,omitempty"`
	ImageStyles     StyleMap            `json:"image_styles,omitempty"`
	ClassCounts     []ClassCount        `json:"class_counts,omitempty"`
}

var styleBlockRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

// StyleText returns the page's stylesheet text: CSSText when the collector
// provided it, otherwise the concatenated contents of <style> blocks found
// in the markup.
func (b *Bundle) StyleText() string {
	if b == nil {
		return ""
	}
	if b.CSSText != "" {
		return b.CSSText
	}
	text := ""
	for _, m := range styleBlockRe.FindAllStringSubmatch(b.Markup, -1) {
		if text != "" {
			text += "\n"
		}
		text += m[1]
	}
	return text
}

// Component returns the sampled styles for one component kind.
func (b *Bundle) Component(kind string) (StyleMap, bool) {
	if b == nil || b.Components == nil {
		return nil, false
	}
	m, ok := b.Components[kind]
	return m, ok
}
