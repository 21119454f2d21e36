package resolve

import (
	"regexp"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

// Browser defaults used per attribute when the body sample is missing one.
const (
	defaultBodyFamily     = "sans-serif"
	defaultBodySize       = "16px"
	defaultBodyWeight     = "400"
	defaultBodyLineHeight = "normal"
)

var (
	fontImportRe = regexp.MustCompile(`(?i)@import\s+url\(([^)]+?fonts[^)]+)\);`)
	linkTagRe    = regexp.MustCompile(`(?i)<link\b[^>]*>`)
	hrefAttrRe   = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)
)

// Typography resolves body text, heading levels, and font loading hints.
//
// A heading level is recorded only when family, size, and weight were all
// observed; partial samples are dropped. Body attributes fall back to
// browser defaults individually. Font imports union the collector's link
// discoveries with @import URLs scanned from the page, deduplicated in
// first-seen order; @font-face presence only sets a flag.
func Typography(b *signals.Bundle) schema.Typography {
	out := schema.Typography{
		Headings:    map[string]schema.HeadingFont{},
		FontImports: []string{},
	}

	var root signals.StyleMap
	if b != nil {
		root = b.RootStyles
	}
	out.Body = schema.BodyFont{
		FontFamily: fallbackFor(stripFontQuotes(root["font-family"]), defaultBodyFamily),
		FontSize:   fallbackFor(root["font-size"], defaultBodySize),
		FontWeight: fallbackFor(root["font-weight"], defaultBodyWeight),
		LineHeight: fallbackFor(root["line-height"], defaultBodyLineHeight),
	}

	if b == nil {
		return out
	}

	for _, sample := range b.HeadingStyles {
		if _, dup := out.Headings[sample.Level]; dup {
			continue
		}
		family := sample.Styles["font-family"]
		size := sample.Styles["font-size"]
		weight := sample.Styles["font-weight"]
		if family == "" || size == "" || weight == "" {
			continue
		}
		out.Headings[sample.Level] = schema.HeadingFont{
			FontFamily: stripFontQuotes(family),
			FontSize:   size,
			FontWeight: weight,
		}
	}

	out.FontImports = collectFontImports(b)
	out.CustomFontsDetected = strings.Contains(b.StyleText(), "@font-face")

	return out
}

func collectFontImports(b *signals.Bundle) []string {
	var imports []string
	seen := map[string]struct{}{}
	add := func(url string) {
		if url == "" {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}
		imports = append(imports, url)
	}

	if len(b.FontImports) > 0 {
		for _, url := range b.FontImports {
			add(url)
		}
	} else {
		for _, url := range scanFontLinks(b.Markup) {
			add(url)
		}
	}

	importSource := b.Markup
	if importSource == "" {
		importSource = b.StyleText()
	}
	for _, m := range fontImportRe.FindAllStringSubmatch(importSource, -1) {
		add(m[1])
	}

	if imports == nil {
		return []string{}
	}
	return imports
}

// scanFontLinks finds <link> hrefs referencing fonts or typefaces in raw
// markup. Collectors with a live DOM report these directly (with resolved
// URLs); this path covers hand-built bundles.
func scanFontLinks(markup string) []string {
	var out []string
	for _, tag := range linkTagRe.FindAllString(markup, -1) {
		m := hrefAttrRe.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		href := m[1]
		if strings.Contains(href, "font") || strings.Contains(href, "typeface") {
			out = append(out, href)
		}
	}
	return out
}

func fallbackFor(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
