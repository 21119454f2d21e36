package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

const fileName = "styleseer.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a configuration file from disk, validates it, and returns
// the resulting model merged over the defaults. An empty path searches
// the default locations; a missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findDefault()
		if path == "" {
			return &cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, styleseererrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, styleseererrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findDefault returns the first configuration file present in the search
// order: the working directory, then ~/.styleseer/.
func findDefault() string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, ".styleseer", fileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
