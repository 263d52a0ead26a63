package assert

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/matchspec/packages/match"
)

// TestingT is the minimal testing interface required by the assertion
// helpers. *testing.T and *testing.B both satisfy it.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

type failNower interface {
	FailNow()
}

// ErrMismatch is the sentinel error for "pattern did not match" failures.
// errors.Is(err, ErrMismatch) distinguishes a mismatch from a broken
// pattern (match.ErrBadPattern).
var ErrMismatch = errors.New("assertion failed")

// MismatchError reports a haystack that did not match a pattern. The
// diagnostic string is rendered lazily in Error.
type MismatchError struct {
	Haystack string
	Pattern  string
	Message  string
}

func (e *MismatchError) Error() string {
	s := fmt.Sprintf("assertion failed: %q does not match %s", e.Haystack, e.Pattern)
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// Unwrap returns the sentinel mismatch error for errors.Is.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Stringify converts any haystack or pattern value to text. Strings,
// byte slices, Stringers, and errors convert directly; everything else
// goes through fmt. It never fails.
func Stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CheckMatches verifies that haystack matches pattern and returns the
// failure as an error instead of signaling a test framework.
//
// The returned error is a *match.CompileError when the pattern does not
// compile, a *MismatchError when no substring of haystack satisfies the
// pattern, and nil on success. msgAndArgs follow the usual convention:
// a single value is appended as-is, a format string plus arguments is
// rendered with fmt.Sprintf.
func CheckMatches(haystack, pattern any, msgAndArgs ...any) error {
	m, err := match.Compile(Stringify(pattern))
	if err != nil {
		return err
	}
	text := Stringify(haystack)
	if m.Matches(text) {
		return nil
	}
	return &MismatchError{
		Haystack: text,
		Pattern:  m.String(),
		Message:  messageFromMsgAndArgs(msgAndArgs...),
	}
}

// Matches asserts that haystack matches pattern, reporting failures via
// t.Errorf. It returns true when the assertion holds.
//
// Example:
//
//	assert.Matches(t, resp.Body, `"id":\s*\d+`)
//	assert.Matches(t, out, "(?i)hello", "greeting for user %s", user)
func Matches(t TestingT, haystack, pattern any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	err := CheckMatches(haystack, pattern, msgAndArgs...)
	if err == nil {
		return true
	}
	t.Errorf("%s", err.Error())
	return false
}

// RequireMatches is Matches followed by FailNow on failure, for callers
// that cannot continue past a mismatch.
func RequireMatches(t TestingT, haystack, pattern any, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if Matches(t, haystack, pattern, msgAndArgs...) {
		return
	}
	if f, ok := t.(failNower); ok {
		f.FailNow()
	}
}

// Escape quotes text so it can be embedded in a pattern as a literal.
// Re-exported from packages/match for convenience.
func Escape(text string) string {
	return match.Escape(text)
}

func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		// Passing the variadic through a local keeps vet's printf
		// analyzer from inferring a print-style wrapper; callers may
		// legitimately pass a format string with arguments.
		args := msgAndArgs
		return fmt.Sprint(args...)
	}
}
