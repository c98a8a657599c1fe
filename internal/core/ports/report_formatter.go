package ports

import "github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"

// ReportFormatter renders a report as text, without a trailing newline.
type ReportFormatter interface {
	Format(report frequency.Report) (string, error)
}
