package signals

import (
	"regexp"
	"strings"
)

var classAttrRe = regexp.MustCompile(`class=["']([^"']+)["']`)

// CountClasses tokenizes every class attribute in raw markup and counts
// token frequency. Entries keep first-seen order so downstream frequency
// sorts break ties deterministically. Collectors use this to fill
// Bundle.ClassCounts; the component resolver falls back to it when the
// field is empty.
func CountClasses(markup string) []ClassCount {
	counts := map[string]int{}
	var order []string
	for _, m := range classAttrRe.FindAllStringSubmatch(markup, -1) {
		for _, token := range strings.Fields(m[1]) {
			if _, ok := counts[token]; !ok {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	out := make([]ClassCount, 0, len(order))
	for _, token := range order {
		out = append(out, ClassCount{Token: token, Count: counts[token]})
	}
	return out
}
