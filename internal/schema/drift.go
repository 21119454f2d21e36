package schema

import (
	"encoding/json"
	"fmt"

	"github.com/seerworks/styleseer/pkg/diff"
)

// Drift reports design changes between two schema documents as a unified
// diff of their JSON encodings. Extraction dates are masked first, so two
// runs against an unchanged site show no drift.
func Drift(before, after *Schema, beforeLabel, afterLabel string) (string, error) {
	if before == nil || after == nil {
		return "", fmt.Errorf("both schemas are required")
	}

	b := before.Clone()
	a := after.Clone()
	b.Metadata.ExtractionDate = ""
	a.Metadata.ExtractionDate = ""

	beforeJSON, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", beforeLabel, err)
	}
	afterJSON, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", afterLabel, err)
	}

	return diff.Unified(beforeJSON, afterJSON, beforeLabel, afterLabel), nil
}
