// Package match wraps regular expression compilation for matchspec.
//
// It provides:
//   - Compile: pattern text to a queryable Matcher
//   - CompileError: a distinct error type for invalid pattern syntax
//   - Escape: quoting of literal text for safe embedding in patterns
//
// Matching uses search semantics: a pattern matches if any contiguous
// substring of the input satisfies it. Callers wanting full-string
// matching must anchor the pattern with ^ and $ themselves.
package match
