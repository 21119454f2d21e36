package resolve

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
)

const (
	defaultPageWidth  = 1920.0
	defaultPageHeight = 1080.0

	// A container narrower than the page by more than this many pixels is
	// treated as a deliberate content column.
	containerDeltaPx = 50.0

	// More than this many grid-pattern elements suggests a grid system.
	gridElementThreshold = 5

	maxSpacingUnits = 5
)

// Layout resolves page geometry, container width, grid likelihood, and the
// most common spacing units.
func Layout(b *signals.Bundle) schema.Layout {
	pageWidth := defaultPageWidth
	pageHeight := defaultPageHeight
	if b != nil {
		if b.PageWidth > 0 {
			pageWidth = b.PageWidth
		}
		if b.PageHeight > 0 {
			pageHeight = b.PageHeight
		}
	}

	out := schema.Layout{
		PageDimensions:     schema.Dimensions{Width: &pageWidth, Height: &pageHeight},
		CommonSpacingUnits: []string{},
	}
	if b == nil {
		return out
	}

	if len(b.ContainerWidths) > 0 {
		widest := b.ContainerWidths[0]
		for _, w := range b.ContainerWidths[1:] {
			if w > widest {
				widest = w
			}
		}
		switch {
		case widest > 0 && math.Abs(widest-pageWidth) > containerDeltaPx:
			out.ContainerWidth = &widest
		case len(b.ContainerWidths) == 1:
			out.ContainerWidth = &widest
		}
	}

	out.HasGridSystem = b.GridElements > gridElementThreshold
	out.CommonSpacingUnits = commonSpacing(b.SpacingSamples)

	return out
}

// commonSpacing keeps the five most frequent non-zero pixel values, ties
// broken by first appearance.
func commonSpacing(samples []string) []string {
	counts := map[string]int{}
	var order []string
	for _, raw := range samples {
		if !strings.HasSuffix(raw, "px") {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
		if err != nil || v <= 0 {
			continue
		}
		if _, ok := counts[raw]; !ok {
			order = append(order, raw)
		}
		counts[raw]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxSpacingUnits {
		order = order[:maxSpacingUnits]
	}
	if order == nil {
		return []string{}
	}
	return order
}
