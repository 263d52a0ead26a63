package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/matchspec/packages/suite"
)

func sampleReport() *suite.Report {
	return &suite.Report{
		RunID: "7f0c5f34-27a1-4a58-9c5f-0f4e5a3b1c2d",
		Suite: "smoke",
		Results: []*suite.Result{
			{Name: "greeting", Passed: true, Haystack: "Hello!", Pattern: "(?i)hello"},
			{
				Name:     "digits",
				Passed:   false,
				Haystack: "abc",
				Pattern:  `\d`,
				Message:  `assertion failed: "abc" does not match \d`,
			},
			{Name: "broken", Pattern: `[a-z`, Err: errors.New("invalid regex pattern [a-z: error parsing regexp: missing closing ]: `[a-z`")},
		},
		Passed:   1,
		Failed:   1,
		Errored:  1,
		Started:  time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Duration: 3 * time.Millisecond,
	}
}

func TestConsoleFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	f.FormatReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Suite: smoke")
	assert.Contains(t, out, "✓ greeting")
	assert.Contains(t, out, "✗ digits")
	assert.Contains(t, out, `assertion failed: "abc" does not match \d`)
	assert.Contains(t, out, "x broken")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "1 errored")
	assert.Contains(t, out, "3 total")
}

func TestConsoleFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))
	f.FormatReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Haystack: abc")
	assert.Contains(t, out, `Pattern:  \d`)
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	f.FormatError(errors.New("cannot read suite file"))
	assert.Contains(t, buf.String(), "Error: cannot read suite file")
}

func TestFormatValue_Truncation(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	got := formatValue(string(long), 100)
	assert.Len(t, got, 103)
	assert.Equal(t, "...", got[100:])
}

func TestJSONFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(WithJSONWriter(&buf))
	require.NoError(t, f.FormatReport(sampleReport()))

	var out JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "7f0c5f34-27a1-4a58-9c5f-0f4e5a3b1c2d", out.RunID)
	assert.Equal(t, "smoke", out.Suite)
	assert.Equal(t, 3, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.Passed)
	assert.Equal(t, 1, out.Summary.Failed)
	assert.Equal(t, 1, out.Summary.Errored)
	require.Len(t, out.Checks, 3)
	assert.True(t, out.Checks[0].Passed)
	assert.Contains(t, out.Checks[2].Error, "error parsing regexp")
}
