/*
Package scanconfig loads scan settings from a YAML config file and from the
environment, and merges them by precedence.
*/
package scanconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config path is given.
const DefaultFileName = ".ignorestat.yaml"

/*
Settings holds every scan option that can be configured outside of flags.
Zero values mean "not set" so that lower-precedence sources can fill them in.
*/
type Settings struct {
	Dir            string   `yaml:"dir"`
	Linter         string   `yaml:"linter"`
	Output         string   `yaml:"output"`
	Format         string   `yaml:"format"`
	Extensions     []string `yaml:"extensions"`
	Exclude        []string `yaml:"exclude"`
	SkipUnreadable *bool    `yaml:"skip_unreadable"`
}

// Defaults returns the built-in settings used when nothing else sets a value.
func Defaults() Settings {
	skip := false
	return Settings{
		Dir:            ".",
		Format:         "text",
		Extensions:     []string{".py"},
		SkipUnreadable: &skip,
	}
}

/*
LoadFile reads settings from a YAML file. Unknown keys are rejected.
A missing file yields empty settings unless required is true.
An empty file, or one holding only comments, also yields empty settings.
*/
func LoadFile(path string, required bool) (Settings, error) {
	var settings Settings
	if path == "" {
		return settings, fmt.Errorf("config file path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return settings, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return settings, nil
}

// MergeWithDefaults returns a copy of s with every unset field taken from defaults.
func (s Settings) MergeWithDefaults(defaults Settings) Settings {
	result := s
	if result.Dir == "" {
		result.Dir = defaults.Dir
	}
	if result.Linter == "" {
		result.Linter = defaults.Linter
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if len(result.Extensions) == 0 {
		result.Extensions = defaults.Extensions
	}
	if len(result.Exclude) == 0 {
		result.Exclude = defaults.Exclude
	}
	if result.SkipUnreadable == nil {
		result.SkipUnreadable = defaults.SkipUnreadable
	}
	return result
}

// SkipUnreadableEnabled reports whether skipping unreadable files was turned on.
func (s Settings) SkipUnreadableEnabled() bool {
	return s.SkipUnreadable != nil && *s.SkipUnreadable
}
