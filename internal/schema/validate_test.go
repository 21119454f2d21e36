package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsAssembledSchema(t *testing.T) {
	t.Parallel()

	s := Assemble("https://example.com", time.Now(), validParts())
	require.Empty(t, Validate(s))
}

func TestValidateReportsProblems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(*Schema)
		wantField string
	}{
		{
			name:      "uppercase hex is not canonical",
			mutate:    func(s *Schema) { s.Colors.PrimaryColor = "#FF5733" },
			wantField: "colors.primary_color",
		},
		{
			name:      "shorthand hex is rejected",
			mutate:    func(s *Schema) { s.Colors.AccentColor = "#abc" },
			wantField: "colors.accent_color",
		},
		{
			name:      "palette entries are checked individually",
			mutate:    func(s *Schema) { s.Colors.Palette = []string{"#ff5733", "blue"} },
			wantField: "colors.palette[1]",
		},
		{
			name:      "spacing units must be pixel values",
			mutate:    func(s *Schema) { s.Layout.CommonSpacingUnits = []string{"1rem"} },
			wantField: "layout.common_spacing_units[0]",
		},
		{
			name:      "missing source url",
			mutate:    func(s *Schema) { s.Metadata.SourceURL = "" },
			wantField: "metadata.source_url",
		},
		{
			name:      "mangled extraction date",
			mutate:    func(s *Schema) { s.Metadata.ExtractionDate = "yesterday" },
			wantField: "metadata.extraction_date",
		},
		{
			name:      "component colors validated when present",
			mutate:    func(s *Schema) { s.Components.Buttons.BackgroundColor = "rgb(255, 0, 0)" },
			wantField: "components.buttons.background_color",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Assemble("https://example.com", time.Now(), validParts())
			tc.mutate(s)

			problems := Validate(s)
			require.NotEmpty(t, problems)

			found := false
			for _, p := range problems {
				if p.Field == tc.wantField {
					found = true
					break
				}
			}
			assert.True(t, found, "expected a problem for %s, got %v", tc.wantField, problems)
		})
	}
}

func TestValidateAccumulatesAllProblems(t *testing.T) {
	t.Parallel()

	s := Assemble("https://example.com", time.Now(), validParts())
	s.Colors.PrimaryColor = "red"
	s.Colors.SecondaryColor = "#GGGGGG"
	s.Layout.CommonSpacingUnits = []string{"huge"}

	problems := Validate(s)
	require.GreaterOrEqual(t, len(problems), 3)
}

func TestValidateEmptyComponentDescriptorsPass(t *testing.T) {
	t.Parallel()

	s := Assemble("https://example.com", time.Now(), validParts())
	s.Components = Components{}
	require.Empty(t, Validate(s))
}

func TestValidatePaletteCap(t *testing.T) {
	t.Parallel()

	s := Assemble("https://example.com", time.Now(), validParts())
	s.Colors.Palette = nil
	for i := 0; i < 16; i++ {
		s.Colors.Palette = append(s.Colors.Palette, "#0000ff")
	}

	problems := Validate(s)
	require.NotEmpty(t, problems)
	assert.Equal(t, "colors.palette", problems[0].Field)
}

func TestValidateNilSchema(t *testing.T) {
	t.Parallel()

	problems := Validate(nil)
	require.Len(t, problems, 1)
	assert.Equal(t, "schema", problems[0].Field)
}
