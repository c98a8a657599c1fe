package suppressionscan

import (
	"fmt"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// DefaultExtension is scanned when a request names no extensions.
const DefaultExtension = ".py"

type service struct {
	grammarSelector ports.GrammarSelector
	fileEnumerator  ports.FileEnumerator
	textReader      ports.TextReader
}

// NewService creates a new suppression scan service.
// It panics if any collaborator is nil.
func NewService(
	gs ports.GrammarSelector,
	fe ports.FileEnumerator,
	tr ports.TextReader,
) ports.SuppressionScanService {
	if gs == nil {
		panic("grammarSelector cannot be nil")
	}
	if fe == nil {
		panic("fileEnumerator cannot be nil")
	}
	if tr == nil {
		panic("textReader cannot be nil")
	}
	return &service{
		grammarSelector: gs,
		fileEnumerator:  fe,
		textReader:      tr,
	}
}

/*
Scan counts the suppressed codes in every source file under req.Root.

The grammar is selected before any file is touched, so an unsupported linter
fails without I/O. Any enumeration error aborts the scan. Read errors abort
too, unless req.SkipUnreadable is set, in which case the file is recorded in
Report.Skipped and scanning continues.
*/
func (s *service) Scan(req ports.ScanRequest) (frequency.Report, error) {
	grammar, err := s.grammarSelector.Select(req.Linter)
	if err != nil {
		return frequency.Report{}, err
	}

	extensions := normalizeExtensions(req.Extensions)
	table := frequency.NewTable()
	report := frequency.Report{Linter: req.Linter}

	for path, walkErr := range s.fileEnumerator.Enumerate(req.Root) {
		if walkErr != nil {
			return frequency.Report{}, fmt.Errorf("failed to scan directory %s: %w", req.Root, walkErr)
		}
		if !hasSourceExtension(path, extensions) {
			continue
		}

		content, readErr := s.textReader.ReadText(path)
		if readErr != nil {
			if req.SkipUnreadable {
				report.Skipped = append(report.Skipped, frequency.SkippedFile{Path: path, Err: readErr})
				continue
			}
			return frequency.Report{}, fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		for line := range splitLines(content) {
			Process(line, grammar, table)
		}
		report.FilesScanned++
	}

	report.Entries = table.Entries()
	return report, nil
}
