package schema

import (
	"sort"
	"strings"
)

var serifIndicators = []string{"serif", "georgia", "times", "palatino", "bookman", "charter"}

// Keywords derives the style-keyword summary from an assembled schema.
// The result is deduplicated and alphabetized. Mutually exclusive pairs
// (rounded/sharp corners, shadows/flat, serif/sans-serif, contained/full
// width) never co-occur.
func Keywords(s *Schema) []string {
	if s == nil {
		return nil
	}

	set := map[string]struct{}{}
	add := func(kw string) { set[kw] = struct{}{} }

	if n := len(s.Colors.Palette); n > 0 {
		if n > 6 {
			add("high-contrast")
		} else if n <= 4 {
			add("limited-palette")
		}
	}

	radii := []string{
		s.Components.Buttons.BorderRadius,
		s.Components.Cards.BorderRadius,
		s.Images.ImageStyle.BorderRadius,
	}
	rounded := false
	for _, r := range radii {
		if r != "" && r != "0px" && r != "0%" {
			rounded = true
			break
		}
	}
	if rounded {
		add("rounded-corners")
	} else {
		add("sharp-corners")
	}

	if s.Components.Cards.BoxShadow != "" || s.Images.ImageStyle.BoxShadow != "" || s.Components.Navigation.BoxShadow != "" {
		add("uses-shadows")
	} else {
		add("flat-design")
	}

	if isSerif(headingFontFamily(s)) {
		add("serif-typography")
	} else {
		add("sans-serif-typography")
	}

	if s.Layout.HasGridSystem {
		add("grid-layout")
	}
	if w := s.Layout.ContainerWidth; w != nil && *w != 0 {
		add("contained-width")
	} else {
		add("full-width-layout")
	}

	if s.Images.HasSVGIcons {
		add("svg-icons")
	} else if s.Images.HasIconFont {
		add("icon-font")
	}

	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func headingFontFamily(s *Schema) string {
	return strings.ToLower(s.Typography.HeadingFontFamily(s.Typography.Body.FontFamily))
}

func isSerif(family string) bool {
	if family == "" {
		return false
	}
	// "sans-serif" would otherwise match the "serif" indicator.
	family = strings.ReplaceAll(family, "sans-serif", "")
	for _, indicator := range serifIndicators {
		if strings.Contains(family, indicator) {
			return true
		}
	}
	return false
}
