package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/matchspec/packages/match"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [text]",
	Short: "Quote literal text for embedding in a pattern",
	Long: `Print the given text with all regex metacharacters quoted, so it can
be used inside a pattern as a literal. Reads stdin when no argument is
given.

Examples:
  matchspec escape '1+1=2?'
  printf '%s' "$USER_INPUT" | matchspec escape`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("cannot read stdin: %w", err)
			}
			text = strings.TrimSuffix(string(data), "\n")
		}
		fmt.Fprintln(cmd.OutOrStdout(), match.Escape(text))
		return nil
	},
}
