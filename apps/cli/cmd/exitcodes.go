package cmd

// Exit codes for matchspec CLI
const (
	// ExitSuccess indicates all checks passed
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more assertions did not match
	ExitCheckFailure = 1

	// ExitPatternError indicates a regex failed to compile
	ExitPatternError = 2

	// ExitSuiteError indicates an unreadable or invalid suite file
	ExitSuiteError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
