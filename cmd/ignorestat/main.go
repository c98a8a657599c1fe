package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/ignorestat/internal/adapters/grammarselection"
	"github.com/AntonioJCosta/ignorestat/internal/adapters/reportformat"
	"github.com/AntonioJCosta/ignorestat/internal/adapters/reportsink"
	"github.com/AntonioJCosta/ignorestat/internal/adapters/scanconfig"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/AntonioJCosta/ignorestat/internal/core/services/suppressionscan"
	"github.com/AntonioJCosta/ignorestat/internal/handlers/cli"
	"github.com/AntonioJCosta/ignorestat/internal/handlers/ui"
	"github.com/AntonioJCosta/ignorestat/internal/repositories/sourcetree"
)

// Version is set at build time
var Version = "dev"

func main() {
	if err := scanconfig.LoadDotEnv(scanconfig.DefaultDotEnvFile); err != nil {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Continuing without it.", err)))
	}

	grammarSelector := grammarselection.NewBuiltinSelector()
	textReader := sourcetree.NewReader()

	deps := cli.Dependencies{
		GrammarSelector: grammarSelector,
		NewScanService: func(exclude []string) (ports.SuppressionScanService, error) {
			fileEnumerator, err := sourcetree.NewEnumerator(exclude)
			if err != nil {
				return nil, err
			}
			return suppressionscan.NewService(grammarSelector, fileEnumerator, textReader), nil
		},
		NewSink: func(outputPath string, stdout io.Writer) ports.ReportSink {
			return reportsink.NewSink(outputPath, stdout)
		},
		NewFormatter: reportformat.New,
		LookupEnv:    os.LookupEnv,
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
