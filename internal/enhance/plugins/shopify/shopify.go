// Package shopifyplugin enriches schemas extracted from Shopify storefronts
// with the active theme name.
package shopifyplugin

import (
	"regexp"

	"github.com/seerworks/styleseer/internal/enhance"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
	"github.com/seerworks/styleseer/internal/sitetype"
)

// Storefront pages expose the theme through the Shopify.theme JS object.
var themeRe = regexp.MustCompile(`Shopify\.theme\s*=\s*\{[^}]*"name"\s*:\s*"([^"]+)"`)

type shopifyEnhancer struct{}

// New creates the Shopify enhancer.
func New() enhance.Enhancer {
	return &shopifyEnhancer{}
}

func init() {
	if err := enhance.RegisterEnhancer(New()); err != nil {
		panic(err)
	}
}

func (p *shopifyEnhancer) Name() string { return "shopify_enhancer" }

func (p *shopifyEnhancer) AppliesTo(siteType string) bool {
	return siteType == sitetype.Shopify
}

func (p *shopifyEnhancer) Enhance(s *schema.Schema, b *signals.Bundle) error {
	if s == nil || b == nil {
		return nil
	}

	cms := &schema.CMSInfo{Type: sitetype.Shopify}
	if m := themeRe.FindStringSubmatch(b.Markup); m != nil {
		cms.Theme = m[1]
	}
	s.Metadata.CMS = cms

	return nil
}
