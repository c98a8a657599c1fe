package suppressionscan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
	"github.com/AntonioJCosta/ignorestat/internal/core/domain/suppression"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/AntonioJCosta/ignorestat/internal/core/testutil"
)

func selectByName() *testutil.MockGrammarSelector {
	return &testutil.MockGrammarSelector{
		SelectFunc: func(linter string) (suppression.Grammar, error) {
			l, err := suppression.ParseLinter(linter)
			if err != nil {
				return suppression.Grammar{}, err
			}
			return suppression.GrammarFor(l)
		},
	}
}

func TestNewService(t *testing.T) {
	gs := &testutil.MockGrammarSelector{}
	fe := &testutil.MockFileEnumerator{}
	tr := &testutil.MockTextReader{}

	tests := []struct {
		name                string
		gs                  ports.GrammarSelector
		fe                  ports.FileEnumerator
		tr                  ports.TextReader
		shouldPanic         bool
		expectedPanicDetail string
	}{
		{"nil grammarSelector", nil, fe, tr, true, "grammarSelector cannot be nil"},
		{"nil fileEnumerator", gs, nil, tr, true, "fileEnumerator cannot be nil"},
		{"nil textReader", gs, fe, nil, true, "textReader cannot be nil"},
		{"all collaborators set", gs, fe, tr, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.shouldPanic {
					if r == nil {
						t.Errorf("NewService did not panic as expected")
					} else if msg, ok := r.(string); !ok || msg != tt.expectedPanicDetail {
						t.Errorf("NewService panicked with %v, want %q", r, tt.expectedPanicDetail)
					}
				} else if r != nil {
					t.Errorf("NewService panicked unexpectedly: %v", r)
				}
			}()
			_ = NewService(tt.gs, tt.fe, tt.tr)
		})
	}
}

func TestService_Scan(t *testing.T) {
	readErr := errors.New("permission denied")
	walkErr := errors.New("walk failed")

	tests := []struct {
		name         string
		req          ports.ScanRequest
		paths        []string
		walkErr      error
		files        map[string]string
		readFunc     func(path string) (string, error)
		wantReport   frequency.Report
		wantErr      bool
		wantErrIs    error
		wantReads    []string
		checkReports bool
	}{
		{
			name:  "mypy single code, non-matching line ignored",
			req:   ports.ScanRequest{Root: "proj", Linter: "mypy"},
			paths: []string{"proj/a.py"},
			files: map[string]string{"proj/a.py": "# type: ignore[attr-defined]\nx = 1\n"},
			wantReport: frequency.Report{
				Linter:       "mypy",
				Entries:      []frequency.Entry{{Code: "attr-defined", Count: 1}},
				FilesScanned: 1,
			},
			wantReads:    []string{"proj/a.py"},
			checkReports: true,
		},
		{
			name:  "flake8 bare noqa counts the sentinel",
			req:   ports.ScanRequest{Root: "proj", Linter: "flake8"},
			paths: []string{"proj/a.py"},
			files: map[string]string{"proj/a.py": "x = 1  # noqa\n"},
			wantReport: frequency.Report{
				Linter:       "flake8",
				Entries:      []frequency.Entry{{Code: "", Count: 1}},
				FilesScanned: 1,
			},
			wantReads:    []string{"proj/a.py"},
			checkReports: true,
		},
		{
			name:  "linter identifier is kept as typed",
			req:   ports.ScanRequest{Root: "proj", Linter: "MyPy"},
			paths: []string{"proj/a.py", "proj/pkg/b.py"},
			files: map[string]string{
				"proj/a.py":     "# type: ignore[a,b,a]\r\n",
				"proj/pkg/b.py": "y = 2  # type: ignore[b]\r\nz = 3  # type: ignore\r\n",
			},
			wantReport: frequency.Report{
				Linter: "MyPy",
				Entries: []frequency.Entry{
					{Code: "", Count: 1},
					{Code: "a", Count: 2},
					{Code: "b", Count: 2},
				},
				FilesScanned: 2,
			},
			wantReads:    []string{"proj/a.py", "proj/pkg/b.py"},
			checkReports: true,
		},
		{
			name:  "non source files are never read",
			req:   ports.ScanRequest{Root: "proj", Linter: "flake8"},
			paths: []string{"proj/README.md", "proj/setup.cfg", "proj/a.py", "proj/b.PY", "proj/Makefile"},
			files: map[string]string{"proj/a.py": "import os  # noqa: F401\n"},
			wantReport: frequency.Report{
				Linter:       "flake8",
				Entries:      []frequency.Entry{{Code: "F401", Count: 1}},
				FilesScanned: 1,
			},
			wantReads:    []string{"proj/a.py"},
			checkReports: true,
		},
		{
			name:  "custom extensions without leading dot",
			req:   ports.ScanRequest{Root: "proj", Linter: "flake8", Extensions: []string{"pyi", " .py "}},
			paths: []string{"proj/a.py", "proj/a.pyi", "proj/c.txt"},
			files: map[string]string{
				"proj/a.py":  "x = 1  # noqa: E1\n",
				"proj/a.pyi": "def f() -> int: ...  # noqa: E2\n",
			},
			wantReport: frequency.Report{
				Linter:       "flake8",
				Entries:      []frequency.Entry{{Code: "E1", Count: 1}, {Code: "E2", Count: 1}},
				FilesScanned: 2,
			},
			wantReads:    []string{"proj/a.py", "proj/a.pyi"},
			checkReports: true,
		},
		{
			name:  "empty tree yields empty report",
			req:   ports.ScanRequest{Root: "proj", Linter: "mypy"},
			paths: nil,
			wantReport: frequency.Report{
				Linter:  "mypy",
				Entries: []frequency.Entry{},
			},
			checkReports: true,
		},
		{
			name:      "unsupported linter fails before any read",
			req:       ports.ScanRequest{Root: "proj", Linter: "pylint"},
			paths:     []string{"proj/a.py"},
			files:     map[string]string{"proj/a.py": "# noqa\n"},
			wantErr:   true,
			wantErrIs: suppression.ErrUnsupportedLinter,
		},
		{
			name:  "read error aborts the scan",
			req:   ports.ScanRequest{Root: "proj", Linter: "mypy"},
			paths: []string{"proj/a.py", "proj/b.py", "proj/c.py"},
			readFunc: func(path string) (string, error) {
				if path == "proj/b.py" {
					return "", readErr
				}
				return "# type: ignore[x]\n", nil
			},
			wantErr:   true,
			wantErrIs: readErr,
			wantReads: []string{"proj/a.py", "proj/b.py"},
		},
		{
			name:  "read error is recorded when skipping is allowed",
			req:   ports.ScanRequest{Root: "proj", Linter: "mypy", SkipUnreadable: true},
			paths: []string{"proj/a.py", "proj/b.py", "proj/c.py"},
			readFunc: func(path string) (string, error) {
				if path == "proj/b.py" {
					return "", readErr
				}
				return "# type: ignore[x]\n", nil
			},
			wantReport: frequency.Report{
				Linter:       "mypy",
				Entries:      []frequency.Entry{{Code: "x", Count: 2}},
				FilesScanned: 2,
				Skipped:      []frequency.SkippedFile{{Path: "proj/b.py", Err: readErr}},
			},
			wantReads:    []string{"proj/a.py", "proj/b.py", "proj/c.py"},
			checkReports: true,
		},
		{
			name:      "enumeration error aborts even when skipping is allowed",
			req:       ports.ScanRequest{Root: "proj", Linter: "mypy", SkipUnreadable: true},
			paths:     []string{"proj/a.py"},
			walkErr:   walkErr,
			files:     map[string]string{"proj/a.py": "# type: ignore[x]\n"},
			wantErr:   true,
			wantErrIs: walkErr,
			wantReads: []string{"proj/a.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := &testutil.MockFileEnumerator{Paths: tt.paths, Err: tt.walkErr}
			tr := &testutil.MockTextReader{Files: tt.files, ReadTextFunc: tt.readFunc}
			svc := NewService(selectByName(), fe, tr)

			report, err := svc.Scan(tt.req)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
				t.Errorf("Scan() error = %v, want errors.Is %v", err, tt.wantErrIs)
			}
			if tt.wantErr && !reflect.DeepEqual(report, frequency.Report{}) {
				t.Errorf("Scan() returned a partial report on error: %#v", report)
			}
			if tt.checkReports && !reflect.DeepEqual(report, tt.wantReport) {
				t.Errorf("Scan() report = %#v, want %#v", report, tt.wantReport)
			}
			if !reflect.DeepEqual(tr.ReadCalls, tt.wantReads) {
				t.Errorf("files read = %v, want %v", tr.ReadCalls, tt.wantReads)
			}
		})
	}
}

func TestService_Scan_ReadErrorMentionsPath(t *testing.T) {
	fe := &testutil.MockFileEnumerator{Paths: []string{"proj/broken.py"}}
	tr := &testutil.MockTextReader{Files: map[string]string{}}
	svc := NewService(selectByName(), fe, tr)

	_, err := svc.Scan(ports.ScanRequest{Root: "proj", Linter: "flake8"})
	if err == nil || !strings.Contains(err.Error(), "proj/broken.py") {
		t.Errorf("Scan() error = %v, want it to mention proj/broken.py", err)
	}
}

func TestHasSourceExtension(t *testing.T) {
	exts := normalizeExtensions(nil)
	tests := []struct {
		path string
		want bool
	}{
		{"a.py", true},
		{"dir.py/b.txt", false},
		{"a.PY", false},
		{"py", false},
		{".py", true},
		{"a.pyc", false},
	}
	for _, tt := range tests {
		if got := hasSourceExtension(tt.path, exts); got != tt.want {
			t.Errorf("hasSourceExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
