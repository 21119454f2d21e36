// Package resolve turns the raw signal bundle into the individual schema
// sections. Every resolver is a pure function of the bundle: identical
// bundles yield identical sections, independent of each other and of call
// order.
package resolve

import (
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

const (
	maxPaletteColors = 15

	fallbackBackground = "#ffffff"
	fallbackText       = "#000000"
	fallbackPrimary    = "#0000ff"
	fallbackSecondary  = "#d3d3d3"
	fallbackAccent     = "#ffa500"
)

// colorProperties marks declaration names whose values may carry colors.
var colorProperties = []string{"color", "background", "border", "fill", "stroke"}

// neutralValues are declaration values that never contribute a color.
var neutralValues = map[string]struct{}{
	"inherit":     {},
	"transparent": {},
	"none":        {},
	"initial":     {},
	"unset":       {},
}

// Colors builds the palette and assigns the five role colors.
//
// Candidates are normalized in a fixed order (dominant screenshot colors,
// computed-style colors, stylesheet declaration colors), deduplicated
// case-insensitively, and capped at 15; palette order is first discovery.
// Role assignment walks that palette through a tiered decision table,
// relaxing its filters until every role is filled.
func Colors(b *signals.Bundle) schema.ColorScheme {
	palette := buildPalette(b)

	background := fallbackBackground
	text := fallbackText
	if b != nil {
		if hex, ok := normalizeColor(b.RootStyles["background-color"]); ok {
			background = hex
		}
		if hex, ok := normalizeColor(b.RootStyles["color"]); ok {
			text = hex
		}
	}

	primary, secondary, accent := assignRoles(palette, background, text)

	return schema.ColorScheme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		TextColor:       text,
		Palette:         palette,
	}
}

func buildPalette(b *signals.Bundle) []string {
	if b == nil {
		return nil
	}

	var palette []string
	seen := map[string]struct{}{}
	add := func(hex string) {
		key := strings.ToLower(hex)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		if len(palette) < maxPaletteColors {
			palette = append(palette, hex)
		}
	}

	for _, c := range b.DominantColors {
		add(hexFromRGB(c.R, c.G, c.B))
	}
	for _, raw := range b.ComputedColors {
		if hex, ok := normalizeColor(raw); ok {
			add(hex)
		}
	}
	for _, decl := range b.CSSDeclarations {
		if !isColorProperty(decl.Property) {
			continue
		}
		if _, neutral := neutralValues[strings.ToLower(decl.Value)]; neutral || decl.Value == "" {
			continue
		}
		if hex, ok := normalizeColor(decl.Value); ok {
			add(hex)
		}
	}
	return palette
}

func isColorProperty(name string) bool {
	lowered := strings.ToLower(name)
	for _, marker := range colorProperties {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// assignRoles fills primary/secondary/accent from the palette.
//
// Tier 1: at least three colors that are neither background, text, nor
// grayscale, take the first three. Tier 2: at least three colors of any
// kind, per role take the first not yet claimed, falling back to palette
// position, then to the previous role. Tiers 3/4 handle two- and one-color
// palettes; an empty palette gets fixed defaults.
func assignRoles(palette []string, background, text string) (primary, secondary, accent string) {
	nonGray := excluding(palette, background, text)
	nonGray = withoutGrays(nonGray)

	switch {
	case len(nonGray) >= 3:
		return nonGray[0], nonGray[1], nonGray[2]

	case len(palette) >= 3:
		primary = firstOr(excluding(palette, background, text), palette[0])
		secondary = firstOr(excluding(palette, background, text, primary), positionOr(palette, 1, primary))
		accent = firstOr(excluding(palette, background, text, primary, secondary), positionOr(palette, 2, secondary))
		return primary, secondary, accent

	case len(palette) == 2:
		return palette[0], palette[1], palette[0]

	case len(palette) == 1:
		primary = palette[0]
		secondary = text
		if strings.EqualFold(primary, text) {
			secondary = background
		}
		return primary, secondary, primary

	default:
		return fallbackPrimary, fallbackSecondary, fallbackAccent
	}
}

// excluding filters the palette, dropping any color equal (case-insensitive)
// to one of the claimed colors. Order is preserved.
func excluding(palette []string, claimed ...string) []string {
	var out []string
	for _, c := range palette {
		skip := false
		for _, cl := range claimed {
			if strings.EqualFold(c, cl) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

func withoutGrays(colors []string) []string {
	var out []string
	for _, c := range colors {
		if !isGrayscale(strings.ToLower(c)) {
			out = append(out, c)
		}
	}
	return out
}

func firstOr(candidates []string, fallback string) string {
	if len(candidates) > 0 {
		return candidates[0]
	}
	return fallback
}

func positionOr(palette []string, idx int, fallback string) string {
	if len(palette) > idx {
		return palette[idx]
	}
	return fallback
}
