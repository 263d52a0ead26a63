package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/matchspec/packages/assert"
	"github.com/abdul-hamid-achik/matchspec/packages/match"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [file]",
	Short: "Assert that text matches a regular expression",
	Long: `Assert that text matches a regular expression. The haystack is read
from the file argument, or from stdin when no file is given. Search
semantics apply: any substring satisfying the pattern counts as a
match; anchor with ^ and $ for full-line matching.

Exit codes: 0 match, 1 no match, 2 invalid pattern.

Examples:
  matchspec match '(?i)hello' greeting.txt
  curl -s localhost:8080/health | matchspec match '"status":\s*"ok"'
  matchspec match '^v\d+\.\d+' VERSION -m "version file is malformed"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: matchCommand,
}

var (
	matchMessageFlag string
	matchQuietFlag   bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchMessageFlag, "message", "m", "", "Custom message appended to the failure diagnostic")
	matchCmd.Flags().BoolVarP(&matchQuietFlag, "quiet", "q", getEnvBool("MATCHSPEC_QUIET", false), "Suppress output, report via exit code only (env: MATCHSPEC_QUIET)")
}

func matchCommand(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	haystack, err := readHaystack(cmd, args)
	if err != nil {
		return err
	}

	var msgAndArgs []any
	if matchMessageFlag != "" {
		msgAndArgs = append(msgAndArgs, matchMessageFlag)
	}

	checkErr := assert.CheckMatches(haystack, pattern, msgAndArgs...)
	if checkErr == nil {
		if !matchQuietFlag {
			fmt.Fprintln(cmd.OutOrStdout(), "match")
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStderr(), checkErr.Error())
	if errors.Is(checkErr, match.ErrBadPattern) {
		os.Exit(ExitPatternError)
	}
	os.Exit(ExitCheckFailure)
	return nil
}

func readHaystack(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("cannot read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return string(data), nil
}
