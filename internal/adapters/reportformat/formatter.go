// Package reportformat renders scan reports for humans and tools.
package reportformat

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatTable, FormatYAML}

// New returns the formatter registered under name (case-insensitive).
// An empty name selects the text format.
func New(name string) (ports.ReportFormatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	}
	return nil, fmt.Errorf("unsupported format %q (valid: %s)", name, strings.Join(Formats, ", "))
}
