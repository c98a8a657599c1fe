package ports

import "github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"

// ScanRequest holds the parameters of a single scan.
type ScanRequest struct {
	Root       string
	Linter     string
	Extensions []string
	// SkipUnreadable turns per-file read errors into skipped entries instead of aborting.
	SkipUnreadable bool
}

// SuppressionScanService defines the contract for counting suppressed codes under a directory tree.
type SuppressionScanService interface {
	Scan(req ScanRequest) (frequency.Report, error)
}
