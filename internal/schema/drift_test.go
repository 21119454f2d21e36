package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driftSchema(primary, date string) *Schema {
	s := &Schema{}
	s.Metadata.SourceURL = "https://example.com"
	s.Metadata.ExtractionDate = date
	s.Metadata.SchemaVersion = "1.0"
	s.Colors.PrimaryColor = primary
	s.Colors.SecondaryColor = "#6c757d"
	s.Colors.AccentColor = "#ffc107"
	s.Colors.BackgroundColor = "#ffffff"
	s.Colors.TextColor = "#212529"
	return s
}

func TestDriftIgnoresExtractionDate(t *testing.T) {
	t.Parallel()

	before := driftSchema("#0000ff", "2025-06-01T10:00:00Z")
	after := driftSchema("#0000ff", "2025-07-15T08:30:00Z")

	got, err := Drift(before, after, "old.json", "new.json")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDriftReportsColorChange(t *testing.T) {
	t.Parallel()

	before := driftSchema("#aaaaaa", "2025-06-01T10:00:00Z")
	after := driftSchema("#bbbbbb", "2025-07-15T08:30:00Z")

	got, err := Drift(before, after, "old.json", "new.json")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "--- old.json")
	assert.Contains(t, got, "+++ new.json")

	// The diff algorithm may split changed tokens mid-value, so assert on
	// the hex digits rather than the full color literals.
	assert.Contains(t, got, "-aaaaaa")
	assert.Contains(t, got, "+bbbbbb")
}

func TestDriftLeavesInputsUntouched(t *testing.T) {
	t.Parallel()

	before := driftSchema("#0000ff", "2025-06-01T10:00:00Z")
	after := driftSchema("#ff0000", "2025-07-15T08:30:00Z")

	_, err := Drift(before, after, "old.json", "new.json")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T10:00:00Z", before.Metadata.ExtractionDate)
	assert.Equal(t, "2025-07-15T08:30:00Z", after.Metadata.ExtractionDate)
}

func TestDriftRequiresBothSchemas(t *testing.T) {
	t.Parallel()

	_, err := Drift(nil, driftSchema("#0000ff", "2025-06-01T10:00:00Z"), "old.json", "new.json")
	require.Error(t, err)

	_, err = Drift(driftSchema("#0000ff", "2025-06-01T10:00:00Z"), nil, "old.json", "new.json")
	require.Error(t, err)
}
