package reportformat

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the report as a YAML document.
type YAMLFormatter struct{}

type yamlCode struct {
	Code  string `yaml:"code"`
	Count int    `yaml:"count"`
}

type yamlReport struct {
	Linter       string     `yaml:"linter"`
	Unique       int        `yaml:"unique"`
	Total        int        `yaml:"total"`
	FilesScanned int        `yaml:"files_scanned"`
	Codes        []yamlCode `yaml:"codes"`
}

func (f *YAMLFormatter) Format(report frequency.Report) (string, error) {
	doc := yamlReport{
		Linter:       report.Linter,
		Unique:       report.Unique(),
		Total:        report.Total(),
		FilesScanned: report.FilesScanned,
		Codes:        make([]yamlCode, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		doc.Codes = append(doc.Codes, yamlCode{Code: e.Label(), Count: e.Count})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report as YAML: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
