// Package wordpressplugin enriches schemas extracted from WordPress sites
// with the active theme name and sidebar layout information.
package wordpressplugin

import (
	"regexp"
	"strconv"

	"github.com/seerworks/styleseer/internal/dom"
	"github.com/seerworks/styleseer/internal/enhance"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
	"github.com/seerworks/styleseer/internal/sitetype"
)

// sidebarSelectors cover the widget containers common WordPress themes use.
const sidebarSelectors = ".widget-area, .sidebar, #sidebar, #secondary"

var themeRe = regexp.MustCompile(`(?i)wp-content/themes/([^/]+)`)

type wordpressEnhancer struct{}

// New creates the WordPress enhancer.
func New() enhance.Enhancer {
	return &wordpressEnhancer{}
}

func init() {
	if err := enhance.RegisterEnhancer(New()); err != nil {
		panic(err)
	}
}

func (p *wordpressEnhancer) Name() string { return "wordpress_enhancer" }

func (p *wordpressEnhancer) AppliesTo(siteType string) bool {
	return siteType == sitetype.WordPress
}

func (p *wordpressEnhancer) Enhance(s *schema.Schema, b *signals.Bundle) error {
	if s == nil || b == nil {
		return nil
	}

	cms := &schema.CMSInfo{Type: sitetype.WordPress}
	if m := themeRe.FindStringSubmatch(b.Markup); m != nil {
		cms.Theme = m[1]
	}
	s.Metadata.CMS = cms

	root, err := dom.Parse(b.Markup)
	if err != nil {
		return nil
	}
	if n := dom.FirstVisible(root, sidebarSelectors); n != nil {
		info := &schema.SidebarInfo{Present: true}
		if sample, ok := b.Component(signals.ComponentSidebar); ok {
			if w, parseErr := strconv.ParseFloat(sample["width"], 64); parseErr == nil {
				info.Width = &w
			}
		}
		s.Components.Sidebar = info
	}

	return nil
}
