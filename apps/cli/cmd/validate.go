package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/matchspec/packages/match"
	"github.com/abdul-hamid-achik/matchspec/packages/suite"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pattern|file>...",
	Short: "Validate patterns and suite files without running them",
	Long: `Validate that regex patterns compile and suite files parse, without
evaluating any check. Arguments naming existing .yaml or .yml files are
validated as suites; everything else is treated as a pattern.

Examples:
  matchspec validate '^v\d+\.\d+$'
  matchspec validate smoke.yaml checks/api.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	hasErrors := false
	for _, arg := range args {
		if isSuiteFile(arg) && fileExists(arg) {
			if _, err := suite.Load(arg); err != nil {
				fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", arg, err)
				hasErrors = true
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", arg)
			}
			continue
		}

		if _, err := match.Compile(arg); err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in pattern %s: %v\n", arg, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", arg)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
