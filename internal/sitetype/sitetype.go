// Package sitetype classifies a page into a coarse category from markup
// fingerprints and the page address. The category steers which enhancement
// plugins run on a schema.
package sitetype

import (
	"net/url"
	"regexp"
	"strings"
)

// Categories, most specific first. CMS fingerprints outrank framework
// fingerprints, which outrank the generic content probes.
const (
	WordPress    = "wordpress"
	Shopify      = "shopify"
	Wix          = "wix"
	Squarespace  = "squarespace"
	Webflow      = "webflow"
	Joomla       = "joomla"
	Drupal       = "drupal"
	Tailwind     = "tailwind"
	Bootstrap    = "bootstrap"
	React        = "react"
	Vue          = "vue"
	Angular      = "angular"
	Material     = "material"
	Ecommerce    = "ecommerce"
	Blog         = "blog"
	Government   = "government"
	Education    = "education"
	Organization = "organization"
	General      = "general"
)

type fingerprint struct {
	category string
	pattern  *regexp.Regexp
}

// fingerprints are probed in order; the first hit wins.
var fingerprints = []fingerprint{
	{WordPress, regexp.MustCompile(`(?i)wp-content|wordpress|wp-includes`)},
	{Shopify, regexp.MustCompile(`(?i)cdn\.shopify\.com|myshopify\.com`)},
	{Wix, regexp.MustCompile(`(?i)wix\.com|wixstatic\.com|wixsite\.com`)},
	{Squarespace, regexp.MustCompile(`(?i)squarespace\.com|static1\.squarespace\.com`)},
	{Webflow, regexp.MustCompile(`(?i)webflow\.io|webflow\.com`)},
	{Joomla, regexp.MustCompile(`(?i)joomla|com_content`)},
	{Drupal, regexp.MustCompile(`(?i)drupal\.js|sites/default/files`)},
	{Tailwind, regexp.MustCompile(`(?i)tailwindcss|tailwind\.css|class="[^"]*(?:flex|grid|p-|m-|text-|bg-)`)},
	{Bootstrap, regexp.MustCompile(`(?i)bootstrap\.min\.css|bootstrap\.bundle\.min\.js|class="[^"]*(?:container|row|col-)`)},
	{React, regexp.MustCompile(`(?i)react-root|data-reactid`)},
	{Vue, regexp.MustCompile(`(?i)data-v-`)},
	{Angular, regexp.MustCompile(`(?i)ng-version`)},
	{Material, regexp.MustCompile(`(?i)material-design|mdl-|mui-`)},
}

var (
	ecommerceRe = regexp.MustCompile(`(?i)cart|checkout|product|shop|store|price|add to cart|woocommerce`)
	blogRe      = regexp.MustCompile(`(?i)blog|article|post|author|comment|category|archive`)
)

// Detect returns the site category for a page. Markup fingerprints are
// checked before the commerce and blog content probes; the address TLD is
// the last resort before "general".
func Detect(markup, pageURL string) string {
	for _, fp := range fingerprints {
		if fp.pattern.MatchString(markup) {
			return fp.category
		}
	}

	if ecommerceRe.MatchString(markup) {
		return Ecommerce
	}
	if blogRe.MatchString(markup) {
		return Blog
	}

	if u, err := url.Parse(pageURL); err == nil {
		host := u.Host
		switch {
		case strings.Contains(host, ".gov"):
			return Government
		case strings.Contains(host, ".edu"):
			return Education
		case strings.Contains(host, ".org"):
			return Organization
		}
	}

	return General
}
