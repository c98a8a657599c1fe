package reportformat

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
)

// TextFormatter renders the plain report that other tooling may parse.
type TextFormatter struct{}

/*
Format renders:

	Unique ignored <linter> patterns found: <N>
	'<code>' ignored <count> times

one line per code in report order, without a trailing newline.
*/
func (f *TextFormatter) Format(report frequency.Report) (string, error) {
	lines := make([]string, 0, len(report.Entries)+1)
	lines = append(lines, fmt.Sprintf("Unique ignored %s patterns found: %d", report.Linter, report.Unique()))
	for _, e := range report.Entries {
		lines = append(lines, fmt.Sprintf("'%s' ignored %d times", e.Label(), e.Count))
	}
	return strings.Join(lines, "\n"), nil
}
