package schema

import (
	"time"
)

// Parts groups the five resolver outputs an assembly combines.
type Parts struct {
	Colors     ColorScheme
	Typography Typography
	Layout     Layout
	Components Components
	Images     Images
}

// Assemble builds the canonical schema document from resolver outputs,
// stamps metadata, and derives the style-keyword summary. Assembly is pure;
// identical parts always yield an identical document (modulo the supplied
// timestamp).
func Assemble(sourceURL string, at time.Time, parts Parts) *Schema {
	s := &Schema{
		Metadata: Metadata{
			SourceURL:      sourceURL,
			ExtractionDate: at.Format(time.RFC3339),
			SchemaVersion:  Version,
		},
		Colors:     parts.Colors,
		Typography: parts.Typography,
		Layout:     parts.Layout,
		Components: parts.Components,
		Images:     parts.Images,
	}
	s.DesignSummary.StyleKeywords = Keywords(s)
	return s
}
