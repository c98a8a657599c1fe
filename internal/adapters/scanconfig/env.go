package scanconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvDir            = "IGNORESTAT_DIR"
	EnvLinter         = "IGNORESTAT_LINTER"
	EnvOutput         = "IGNORESTAT_OUTPUT"
	EnvFormat         = "IGNORESTAT_FORMAT"
	EnvExtensions     = "IGNORESTAT_EXT"
	EnvExclude        = "IGNORESTAT_EXCLUDE"
	EnvSkipUnreadable = "IGNORESTAT_SKIP_UNREADABLE"
)

// FromEnv builds settings from environment variables using lookup (usually os.LookupEnv).
// List values are comma-separated.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	var settings Settings
	get := func(key string) string {
		value, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(value)
	}

	settings.Dir = get(EnvDir)
	settings.Linter = get(EnvLinter)
	settings.Output = get(EnvOutput)
	settings.Format = get(EnvFormat)
	settings.Extensions = splitList(get(EnvExtensions))
	settings.Exclude = splitList(get(EnvExclude))

	if raw := get(EnvSkipUnreadable); raw != "" {
		skip, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s value %q: %w", EnvSkipUnreadable, raw, err)
		}
		settings.SkipUnreadable = &skip
	}
	return settings, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for part := range strings.SplitSeq(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
