package match

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadPattern is the sentinel error for pattern compilation failures.
// Use errors.Is(err, ErrBadPattern) to distinguish a broken pattern from
// a well-formed pattern that simply did not match.
var ErrBadPattern = errors.New("invalid regex pattern")

// CompileError reports a pattern that failed to compile. It carries the
// engine's parse error so callers see the exact syntax problem.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid regex pattern %s: %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying engine parse error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrBadPattern) work for compile failures.
func (e *CompileError) Is(target error) bool {
	return target == ErrBadPattern
}

// Matcher is a compiled pattern. It is cheap to discard; matchspec
// compiles a fresh Matcher per assertion and keeps no cache.
type Matcher struct {
	re *regexp.Regexp
}

// Compile parses pattern into a Matcher. Invalid syntax returns a
// *CompileError wrapping the engine's parse error.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Matches reports whether any substring of s satisfies the pattern.
// An empty pattern matches everything, including the empty string.
func (m *Matcher) Matches(s string) bool {
	return m.re.MatchString(s)
}

// String returns the literal source text of the pattern.
func (m *Matcher) String() string {
	return m.re.String()
}

// Escape returns text with all regex metacharacters quoted so it can be
// embedded in a pattern as a literal.
func Escape(text string) string {
	return regexp.QuoteMeta(text)
}
