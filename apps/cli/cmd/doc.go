// Package cmd implements the matchspec CLI commands using Cobra.
//
// Available commands:
//   - match: Assert that text from a file or stdin matches a pattern
//   - check: Run YAML-defined check suites
//   - escape: Quote literal text for embedding in a pattern
//   - validate: Check patterns and suite files without running them
//   - version: Show matchspec version information
//
// The CLI supports output formatting flags and a watch mode that
// re-runs suites when their files change.
package cmd
