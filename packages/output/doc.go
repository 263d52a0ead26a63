// Package output provides formatters for displaying suite run reports.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Formatters write to stdout by default and accept functional options
// for redirecting output and tuning verbosity.
package output
