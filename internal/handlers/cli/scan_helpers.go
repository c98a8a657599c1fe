package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ignorestat/internal/adapters/scanconfig"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/AntonioJCosta/ignorestat/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrMissingLinter indicates that no linter was given by flag, environment or config file.
var ErrMissingLinter = errors.New("a linter is required: pass --linter, set " + scanconfig.EnvLinter + " or add 'linter' to the config file")

func addScanFlags(cmd *cobra.Command) {
	defaults := scanconfig.Defaults()
	cmd.Flags().StringP("dir", "d", defaults.Dir, "Directory to scan.")
	cmd.Flags().StringP("linter", "l", "", "Linter to check for (mypy, flake8, ruff or pyright).")
	cmd.Flags().StringP("output", "o", "", "Optional output file; if not specified, results are printed to stdout.")
	cmd.Flags().StringP("format", "f", defaults.Format, "Report format: text, table or yaml.")
	cmd.Flags().StringSliceP("ext", "e", defaults.Extensions, "Extensions of the source files to scan.")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Glob patterns of files or directories to skip (e.g. .venv, build/**).")
	cmd.Flags().Bool("skip-unreadable", false, "Warn about unreadable files and keep scanning instead of failing.")
	cmd.Flags().Bool("verbose", false, "Print scan details to stderr.")
	cmd.Flags().StringP("config", "c", "", "Path to a YAML config file (default ./"+scanconfig.DefaultFileName+" when present).")
}

// flagSettings returns only the settings explicitly set on the command line.
func flagSettings(cmd *cobra.Command) scanconfig.Settings {
	var s scanconfig.Settings
	flags := cmd.Flags()
	if flags.Changed("dir") {
		s.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("linter") {
		s.Linter, _ = flags.GetString("linter")
	}
	if flags.Changed("output") {
		s.Output, _ = flags.GetString("output")
	}
	if flags.Changed("format") {
		s.Format, _ = flags.GetString("format")
	}
	if flags.Changed("ext") {
		s.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("exclude") {
		s.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("skip-unreadable") {
		skip, _ := flags.GetBool("skip-unreadable")
		s.SkipUnreadable = &skip
	}
	return s
}

// resolveSettings merges flags, environment, config file and defaults, in that precedence.
func resolveSettings(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (scanconfig.Settings, error) {
	fromEnv := scanconfig.Settings{}
	if lookupEnv != nil {
		var err error
		fromEnv, err = scanconfig.FromEnv(lookupEnv)
		if err != nil {
			return scanconfig.Settings{}, err
		}
	}

	configPath, _ := cmd.Flags().GetString("config")
	required := cmd.Flags().Changed("config")
	if !required {
		configPath = scanconfig.DefaultFileName
	}
	fromFile, err := scanconfig.LoadFile(configPath, required)
	if err != nil {
		return scanconfig.Settings{}, err
	}

	settings := flagSettings(cmd).
		MergeWithDefaults(fromEnv).
		MergeWithDefaults(fromFile).
		MergeWithDefaults(scanconfig.Defaults())
	if settings.Linter == "" {
		return scanconfig.Settings{}, ErrMissingLinter
	}
	return settings, nil
}

func runScanCmd(cmd *cobra.Command, _ []string, deps Dependencies) error {
	settings, err := resolveSettings(cmd, deps.LookupEnv)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	stderr := cmd.ErrOrStderr()

	formatter, err := deps.NewFormatter(settings.Format)
	if err != nil {
		return err
	}
	scanService, err := deps.NewScanService(settings.Exclude)
	if err != nil {
		return fmt.Errorf("could not prepare scan: %w", err)
	}

	if verbose {
		fmt.Fprintln(stderr, ui.InfoColor(fmt.Sprintf("Scanning %s for %s suppression comments...", settings.Dir, settings.Linter)))
	}
	report, err := scanService.Scan(ports.ScanRequest{
		Root:           settings.Dir,
		Linter:         settings.Linter,
		Extensions:     settings.Extensions,
		SkipUnreadable: settings.SkipUnreadableEnabled(),
	})
	if err != nil {
		return err
	}

	for _, skipped := range report.Skipped {
		fmt.Fprintln(stderr, ui.WarningColor(fmt.Sprintf("Warning: skipped unreadable file %s: %v", skipped.Path, skipped.Err)))
	}
	if verbose {
		fmt.Fprintln(stderr, ui.DetailColor(fmt.Sprintf("Scanned %d file(s) under %s, %d suppression(s) counted.", report.FilesScanned, settings.Dir, report.Total())))
	}

	rendered, err := formatter.Format(report)
	if err != nil {
		return err
	}
	if err := deps.NewSink(settings.Output, cmd.OutOrStdout()).Write(rendered); err != nil {
		return err
	}

	if verbose && settings.Output != "" {
		fmt.Fprintln(stderr, ui.SuccessColor(fmt.Sprintf("Report written to %s", settings.Output)))
	}
	return nil
}
