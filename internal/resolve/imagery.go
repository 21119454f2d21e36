package resolve

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/seerworks/styleseer/internal/dom"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

const (
	maxIconClasses    = 10
	iconTagProbeDepth = 10
)

// iconFontPrefixes are class fragments of the widespread icon-font kits:
// FontAwesome, Bootstrap 3 glyphicons, Material, IcoFont, Bootstrap Icons,
// Feather, and MDI. Probed in this order.
var iconFontPrefixes = []string{
	"fa-", "fas", "far", "fal", "fab",
	"glyphicon",
	"material-icons",
	"icon-",
	"icofont-",
	"bi-",
	"feather",
	"mdi-",
}

// logoSelectors are probed in order; the first visible match wins.
var logoSelectors = []string{
	".logo", "#logo", "[class*='logo']", "[id*='logo']",
	"header img[alt*='logo' i]", "nav img[alt*='logo' i]",
	"header a[href='/'] img", "nav a[href='/'] img",
	"[aria-label*='logo' i]", "img[src*='logo']",
}

var backgroundURLRe = regexp.MustCompile(`url\("?([^")]+)"?\)`)

// Imagery derives the icon and image profile of a page: vector usage, icon
// font classes, styling of a representative content image, and logo
// discovery with a resolved logo address.
func Imagery(b *signals.Bundle) schema.Images {
	images := schema.Images{IconClassesFound: []string{}}
	if b == nil {
		return images
	}

	images.ImageStyle = imageStyle(b.ImageStyles)

	if strings.TrimSpace(b.Markup) == "" {
		return images
	}
	root, err := dom.Parse(b.Markup)
	if err != nil {
		return images
	}

	if len(dom.QueryAll(root, "svg")) > 0 || len(dom.QueryAll(root, "img[src$='.svg']")) > 0 {
		images.HasSVGIcons = true
	}

	images.HasIconFont, images.IconClassesFound = iconFonts(root)

	if logo := findLogo(root); logo != nil {
		images.LogoDetected = true
		if addr := logoURL(logo, b.URL); addr != "" {
			images.LogoURL = &addr
		}
	}

	return images
}

// imageStyle copies the sampled image styling, dropping values that match
// the browser defaults.
func imageStyle(styles signals.StyleMap) schema.ImageStyle {
	var out schema.ImageStyle
	if v := styles["border-radius"]; v != "" && v != "0px" {
		out.BorderRadius = v
	}
	if v := styles["box-shadow"]; v != "" && v != "none" {
		out.BoxShadow = v
	}
	if v := styles["border"]; v != "" && v != "0px none rgb(0, 0, 0)" {
		out.Border = v
	}
	if v := styles["filter"]; v != "" && v != "none" {
		out.Filter = v
	}
	return out
}

// iconFonts scans for the known kit prefixes. A prefix counts when one of
// its first matches is an <i> or <span>; classes carrying the prefix are
// collected from the first match, first seen first, capped.
func iconFonts(root *html.Node) (bool, []string) {
	found := false
	classes := []string{}
	seen := make(map[string]struct{})

	for _, prefix := range iconFontPrefixes {
		matches := dom.QueryAll(root, "[class*='"+prefix+"']")
		if len(matches) == 0 {
			continue
		}
		probe := matches
		if len(probe) > iconTagProbeDepth {
			probe = probe[:iconTagProbeDepth]
		}
		iconTag := false
		for _, n := range probe {
			if n.Data == "i" || n.Data == "span" {
				iconTag = true
				break
			}
		}
		if !iconTag {
			continue
		}

		found = true
		for _, cls := range strings.Fields(dom.Attr(matches[0], "class")) {
			if !strings.Contains(cls, prefix) {
				continue
			}
			if _, dup := seen[cls]; dup {
				continue
			}
			seen[cls] = struct{}{}
			classes = append(classes, cls)
		}
	}

	if len(classes) > maxIconClasses {
		classes = classes[:maxIconClasses]
	}
	return found, classes
}

func findLogo(root *html.Node) *html.Node {
	for _, selector := range logoSelectors {
		if n := dom.FirstVisible(root, selector); n != nil {
			return n
		}
	}
	return nil
}

// logoURL pulls an address off the matched element: an <img> contributes
// its src, an <a> the src of a nested image, anything else an inline
// background-image. Inline <svg> logos carry no address. Relative
// addresses resolve against the page URL.
func logoURL(logo *html.Node, pageURL string) string {
	var raw string
	switch logo.Data {
	case "img":
		raw = dom.Attr(logo, "src")
	case "a":
		if img := dom.First(logo, "img"); img != nil {
			raw = dom.Attr(img, "src")
		}
	case "svg":
	default:
		if m := backgroundURLRe.FindStringSubmatch(dom.Attr(logo, "style")); m != nil {
			raw = m[1]
		}
	}
	if raw == "" {
		return ""
	}
	return absoluteURL(raw, pageURL)
}

func absoluteURL(raw, base string) string {
	if strings.HasPrefix(raw, "http:") || strings.HasPrefix(raw, "https:") || strings.HasPrefix(raw, "data:") {
		return raw
	}
	baseURL, err := url.Parse(base)
	if err != nil || base == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return baseURL.ResolveReference(ref).String()
}
