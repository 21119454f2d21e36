package collect

import (
	"regexp"
	"strings"

	"github.com/seerworks/styleseer/internal/signals"
)

var (
	cssCommentRe  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssBlockRe    = regexp.MustCompile(`\{([^{}]*)\}`)
	cssPropertyRe = regexp.MustCompile(`^[a-zA-Z-]+$`)
)

// ScanDeclarations pulls property/value pairs out of stylesheet text, in
// document order. It is a light scan, not a CSS parser: rule bodies are
// located by brace matching and split on semicolons, which covers the
// color and font signals the resolvers mine. Fragments that do not look
// like a declaration are skipped.
func ScanDeclarations(css string) []signals.Declaration {
	if css == "" {
		return nil
	}
	css = cssCommentRe.ReplaceAllString(css, "")

	var decls []signals.Declaration
	for _, block := range cssBlockRe.FindAllStringSubmatch(css, -1) {
		for _, frag := range strings.Split(block[1], ";") {
			prop, value, ok := strings.Cut(frag, ":")
			if !ok {
				continue
			}
			prop = strings.ToLower(strings.TrimSpace(prop))
			value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
			if value == "" || !cssPropertyRe.MatchString(prop) {
				continue
			}
			decls = append(decls, signals.Declaration{Property: prop, Value: value})
		}
	}
	return decls
}
