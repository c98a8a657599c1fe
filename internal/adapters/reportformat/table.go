package reportformat

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders the report as a bordered table with a total footer.
type TableFormatter struct{}

func (f *TableFormatter) Format(report frequency.Report) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Unique ignored %s patterns found: %d\n", report.Linter, report.Unique())

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Code", "Count"})
	table.SetFooter([]string{"Total", strconv.Itoa(report.Total())})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, e := range report.Entries {
		table.Append([]string{e.Label(), strconv.Itoa(e.Count)})
	}
	table.Render()

	return strings.TrimRight(buf.String(), "\n"), nil
}
