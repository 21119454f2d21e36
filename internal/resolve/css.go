package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRunPattern = regexp.MustCompile(`\d+`)
	canonicalHexRe   = regexp.MustCompile(`^#[0-9a-f]{6}$`)
)

// normalizeColor converts an rgb()/rgba() computed-style string to canonical
// lowercase #rrggbb. The first three numeric runs are taken and clamped to
// [0,255], so compound values like "1px solid rgb(34, 34, 34)" resolve to
// whatever their leading numbers say. Anything without an rgb marker fails.
func normalizeColor(raw string) (string, bool) {
	if raw == "" || !strings.Contains(strings.ToLower(raw), "rgb") {
		return "", false
	}
	runs := numberRunPattern.FindAllString(raw, 3)
	if len(runs) < 3 {
		return "", false
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(runs[i])
		if err != nil {
			// digit runs only fail Atoi on overflow, which clamps high
			v = 255
		}
		rgb[i] = v
	}
	return hexFromRGB(rgb[0], rgb[1], rgb[2]), true
}

// hexFromRGB formats clamped channel values as lowercase #rrggbb.
func hexFromRGB(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// isGrayscale reports whether a canonical hex color has pairwise-equal
// channel byte pairs (#aaaaaa, #0f0f0f, ...).
func isGrayscale(hex string) bool {
	if len(hex) != 7 {
		return false
	}
	return hex[1:3] == hex[3:5] && hex[3:5] == hex[5:7]
}

// isCanonicalHex reports whether a string is already lowercase #rrggbb.
func isCanonicalHex(s string) bool {
	return canonicalHexRe.MatchString(s)
}

// stripFontQuotes removes surrounding quote characters from a font-family
// value ("'Helvetica Neue'" becomes "Helvetica Neue").
func stripFontQuotes(family string) string {
	return strings.Trim(family, `"'`)
}
