package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/signals"
)

func TestLayoutDefaults(t *testing.T) {
	t.Parallel()

	layout := Layout(&signals.Bundle{})
	require.NotNil(t, layout.PageDimensions.Width)
	require.NotNil(t, layout.PageDimensions.Height)
	assert.Equal(t, 1920.0, *layout.PageDimensions.Width)
	assert.Equal(t, 1080.0, *layout.PageDimensions.Height)
	assert.Nil(t, layout.ContainerWidth)
	assert.False(t, layout.HasGridSystem)
	assert.Equal(t, []string{}, layout.CommonSpacingUnits)
}

func TestLayoutPageDimensionsFromBundle(t *testing.T) {
	t.Parallel()

	layout := Layout(&signals.Bundle{PageWidth: 1440, PageHeight: 900})
	assert.Equal(t, 1440.0, *layout.PageDimensions.Width)
	assert.Equal(t, 900.0, *layout.PageDimensions.Height)
}

func TestLayoutContainerWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bundle *signals.Bundle
		want   *float64
	}{
		{
			name:   "clearly narrower container recorded",
			bundle: &signals.Bundle{PageWidth: 1920, ContainerWidths: []float64{960, 1180}},
			want:   floatPtr(1180),
		},
		{
			name:   "single container recorded even near page width",
			bundle: &signals.Bundle{PageWidth: 1920, ContainerWidths: []float64{1900}},
			want:   floatPtr(1900),
		},
		{
			name:   "multiple full-width containers ignored",
			bundle: &signals.Bundle{PageWidth: 1920, ContainerWidths: []float64{1900, 1910}},
			want:   nil,
		},
		{
			name:   "no containers",
			bundle: &signals.Bundle{PageWidth: 1920},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout := Layout(tt.bundle)
			if tt.want == nil {
				assert.Nil(t, layout.ContainerWidth)
				return
			}
			require.NotNil(t, layout.ContainerWidth)
			assert.Equal(t, *tt.want, *layout.ContainerWidth)
		})
	}
}

func TestLayoutGridDetection(t *testing.T) {
	t.Parallel()

	assert.False(t, Layout(&signals.Bundle{GridElements: 5}).HasGridSystem)
	assert.True(t, Layout(&signals.Bundle{GridElements: 6}).HasGridSystem)
}

func TestLayoutCommonSpacing(t *testing.T) {
	t.Parallel()

	b := &signals.Bundle{
		SpacingSamples: []string{
			"16px", "16px", "8px", "24px", "8px", "16px",
			"0px", "1rem", "12px", "20px", "4px",
		},
	}

	layout := Layout(b)
	assert.Equal(t, []string{"16px", "8px", "24px", "12px", "20px"}, layout.CommonSpacingUnits)
}

func TestLayoutNilBundle(t *testing.T) {
	t.Parallel()

	layout := Layout(nil)
	assert.Equal(t, 1920.0, *layout.PageDimensions.Width)
	assert.Equal(t, []string{}, layout.CommonSpacingUnits)
}

func floatPtr(v float64) *float64 { return &v }
