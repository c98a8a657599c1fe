package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/spf13/cobra"
)

/*
Dependencies groups the collaborators the commands are built from.
The scan service, sink and formatter depend on flag values, so they are
created per run through factories.
*/
type Dependencies struct {
	GrammarSelector ports.GrammarSelector
	NewScanService  func(exclude []string) (ports.SuppressionScanService, error)
	NewSink         func(outputPath string, stdout io.Writer) ports.ReportSink
	NewFormatter    func(format string) (ports.ReportFormatter, error)
	// LookupEnv reads configuration from the environment, usually os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ignorestat",
		Short: "ignorestat counts linter-suppression comments in a source tree.",
		Long: `ignorestat scans a directory tree for linter-suppression comments
such as "# type: ignore[code]" or "# noqa: code" and reports how many times
each suppressed code appears, so you can see which rules are silenced most.`,
		Example: `  ignorestat --linter mypy
  ignorestat -d src -l flake8 -o report.txt
  ignorestat -l ruff --exclude .venv --exclude "build/**" --format table`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.GrammarSelector == nil {
				return fmt.Errorf("grammar selector not initialized for command %s", cmd.Name())
			}
			if cmd.Name() == "ignorestat" && (deps.NewScanService == nil || deps.NewSink == nil || deps.NewFormatter == nil) {
				return fmt.Errorf("scan dependencies not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, args, deps)
		},
	}

	addScanFlags(rootCmd)
	rootCmd.AddCommand(NewLintersCommand(deps.GrammarSelector))

	return rootCmd
}
