// Package assert provides the regex match assertion for Go tests.
//
// The core check is "haystack matches pattern" with search semantics:
// any substring satisfying the pattern counts as a match. Two failure
// kinds are kept distinct and never conflated:
//   - an invalid pattern surfaces the engine's parse error (*match.CompileError)
//   - a well-formed pattern with no match yields a *MismatchError
//
// Matches and RequireMatches signal failures through the testing
// framework; CheckMatches returns the failure as an error for callers
// outside tests. Diagnostic text is only built on the failure path.
package assert
