package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/matchspec/packages/output"
	"github.com/abdul-hamid-achik/matchspec/packages/suite"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|directory>",
	Short: "Run pattern check suites from YAML files",
	Long: `Run check suites defined in .yaml or .yml files. Each suite lists
named checks pairing an input with a pattern.

Exit codes: 0 all passed, 1 one or more mismatches, 3 broken suite or
broken check (unreadable file, invalid pattern).

Examples:
  matchspec check smoke.yaml
  matchspec check ./checks/
  matchspec check smoke.yaml --output json
  matchspec check ./checks/ --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	checkOutputFlag  string
	checkNoColorFlag bool
	checkVerboseFlag bool
	checkWatchFlag   bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkOutputFlag, "output", "o", getEnvString("MATCHSPEC_OUTPUT", "console"), "Output format: console, json (env: MATCHSPEC_OUTPUT)")
	checkCmd.Flags().BoolVar(&checkNoColorFlag, "no-color", getEnvBool("MATCHSPEC_NO_COLOR", false), "Disable colored output (env: MATCHSPEC_NO_COLOR)")
	checkCmd.Flags().BoolVarP(&checkVerboseFlag, "verbose", "v", false, "Show haystack and pattern for failed checks")
	checkCmd.Flags().BoolVarP(&checkWatchFlag, "watch", "w", false, "Watch suite files for changes and re-run checks")
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func isSuiteFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func collectSuiteFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && isSuiteFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func checkCommand(cmd *cobra.Command, args []string) error {
	files, err := collectSuiteFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .yaml or .yml suite files found")
	}

	failed, errored := runSuites(cmd, files)

	if checkWatchFlag {
		return watchAndRerun(cmd, args, files)
	}

	switch {
	case errored:
		os.Exit(ExitSuiteError)
	case failed:
		os.Exit(ExitCheckFailure)
	}
	return nil
}

func runSuites(cmd *cobra.Command, files []string) (failed, errored bool) {
	for _, file := range files {
		s, err := suite.Load(file)
		if err != nil {
			formatterFor(cmd).FormatError(err)
			errored = true
			continue
		}

		report := s.Run()
		switch strings.ToLower(checkOutputFlag) {
		case "json":
			if err := output.NewJSONFormatter(output.WithJSONWriter(cmd.OutOrStdout())).FormatReport(report); err != nil {
				errored = true
			}
		default:
			formatterFor(cmd).FormatReport(report)
		}

		if report.Failed > 0 {
			failed = true
		}
		if report.Errored > 0 {
			errored = true
		}
	}
	return failed, errored
}

func formatterFor(cmd *cobra.Command) *output.ConsoleFormatter {
	return output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(checkVerboseFlag),
		output.WithNoColor(checkNoColorFlag),
	)
}

func watchAndRerun(cmd *cobra.Command, args, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatterFor(cmd).FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) && isSuiteFile(event.Name) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running checks...\n\n", event.Name)
					if fresh, err := collectSuiteFiles(args); err == nil {
						runSuites(cmd, fresh)
					}
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatterFor(cmd).FormatError(err)
		}
	}
}
