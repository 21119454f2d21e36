package resolve

import (
	"sort"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

const (
	// Class tokens must clear all three gates to count as a pattern.
	classMinCount = 5
	classMinLen   = 2

	maxClassPatterns  = 15
	classRankingDepth = 50
)

// utilityIndicators mark class tokens that look like utility or framework
// classes worth surfacing.
var utilityIndicators = []string{
	"text-", "bg-", "p-", "m-", "flex", "grid", "border", "rounded",
	"w-", "h-", "font-", "shadow", "item", "container", "row", "col-",
	"nav-", "btn-", "card-", "form-",
}

// Components maps the sampled representative elements onto the component
// descriptors and derives the recurring CSS class patterns.
//
// A missing sample leaves that descriptor zero-valued; within a sample,
// unobserved attributes stay empty. Neutral values ("none" shadows) are
// dropped so every recorded attribute is a real styling choice.
func Components(b *signals.Bundle) schema.Components {
	out := schema.Components{DetectedCSSPatterns: []string{}}
	if b == nil {
		return out
	}

	if sample, ok := b.Component(signals.ComponentButton); ok {
		out.Buttons = schema.ButtonStyle{
			BackgroundColor: hexOrEmpty(sample["background-color"]),
			TextColor:       hexOrEmpty(sample["color"]),
			Padding:         sample["padding"],
			Border:          sample["border"],
			BorderRadius:    sample["border-radius"],
			FontSize:        sample["font-size"],
			FontWeight:      sample["font-weight"],
			TextTransform:   sample["text-transform"],
		}
	}

	if sample, ok := b.Component(signals.ComponentCard); ok {
		out.Cards = schema.CardStyle{
			BackgroundColor: hexOrEmpty(sample["background-color"]),
			BoxShadow:       dropNeutral(sample["box-shadow"], "none"),
			BorderRadius:    sample["border-radius"],
			Padding:         sample["padding"],
			Border:          sample["border"],
		}
	}

	if sample, ok := b.Component(signals.ComponentInput); ok {
		out.Forms.Inputs = schema.InputStyle{
			Border:          sample["border"],
			BorderRadius:    sample["border-radius"],
			Padding:         sample["padding"],
			BackgroundColor: hexOrEmpty(sample["background-color"]),
			FontSize:        sample["font-size"],
		}
	}

	if sample, ok := b.Component(signals.ComponentNav); ok {
		out.Navigation = schema.NavStyle{
			BackgroundColor: hexOrEmpty(sample["background-color"]),
			Height:          sample["height"],
			BoxShadow:       dropNeutral(sample["box-shadow"], "none"),
			LinkColor:       hexOrEmpty(sample["link-color"]),
		}
	}

	out.DetectedCSSPatterns = classPatterns(b)
	return out
}

func classPatterns(b *signals.Bundle) []string {
	counts := b.ClassCounts
	if len(counts) == 0 {
		counts = signals.CountClasses(b.Markup)
	}
	if len(counts) == 0 {
		return []string{}
	}

	ranked := make([]signals.ClassCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > classRankingDepth {
		ranked = ranked[:classRankingDepth]
	}

	var patterns []string
	for _, cc := range ranked {
		if len(patterns) == maxClassPatterns {
			break
		}
		if cc.Count <= classMinCount || len(cc.Token) <= classMinLen {
			continue
		}
		if hasUtilityIndicator(cc.Token) {
			patterns = append(patterns, cc.Token)
		}
	}
	if patterns == nil {
		return []string{}
	}
	return patterns
}

func hasUtilityIndicator(token string) bool {
	for _, indicator := range utilityIndicators {
		if strings.Contains(token, indicator) {
			return true
		}
	}
	return false
}

func hexOrEmpty(raw string) string {
	hex, ok := normalizeColor(raw)
	if !ok {
		return ""
	}
	return hex
}

func dropNeutral(value, neutral string) string {
	if value == neutral {
		return ""
	}
	return value
}
