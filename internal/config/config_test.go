package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styleseer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, 1920, cfg.Collector.ViewportWidth)
	assert.Equal(t, 1080, cfg.Collector.ViewportHeight)
	assert.Equal(t, 30, cfg.Collector.Timeout)
	assert.Equal(t, 5, cfg.Collector.SettleDelay)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.AIView)
	assert.True(t, cfg.Output.Snippets)
	assert.True(t, cfg.Output.Docs)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
collector:
  timeout: 60
  user_agent: styleseer-test
output:
  ai_view: false
history:
  archive: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Collector.Timeout)
	assert.Equal(t, "styleseer-test", cfg.Collector.UserAgent)
	assert.False(t, cfg.Output.AIView)
	assert.True(t, cfg.History.Archive)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1920, cfg.Collector.ViewportWidth)
	assert.True(t, cfg.Output.Snippets)
	assert.True(t, cfg.Output.Docs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *styleseererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styleseer.yaml"), []byte("collector:\n  timeout: 45\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Collector.Timeout)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "collector:\n  timeout: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *styleseererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "viewport too narrow",
			content: "collector:\n  viewport_width: 100\n",
			field:   "viewport",
		},
		{
			name:    "unknown output format",
			content: "output:\n  format: toml\n",
			field:   "format",
		},
		{
			name:    "unknown log level",
			content: "logging:\n  level: loud\n",
			field:   "level",
		},
		{
			name:    "timeout out of range",
			content: "collector:\n  timeout: 100000\n",
			field:   "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var validationErr *styleseererrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Field, tt.field)
		})
	}
}

func TestCollectorDurations(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 30*time.Second, cfg.Collector.TimeoutDuration())
	assert.Equal(t, 5*time.Second, cfg.Collector.SettleDuration())
}
