package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeSuite(t, t.TempDir(), `
name: smoke
checks:
  - name: greeting
    input: "Hello!"
    pattern: "(?i)hello"
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "smoke", s.Name)
	require.Len(t, s.Checks, 1)
	assert.Equal(t, "greeting", s.Checks[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read suite file")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`
checks:
  - input: "abc"
    pattern: "a"
    patern: "typo"
`), "inline")
	require.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no checks",
			yaml:    `name: empty`,
			wantErr: "has no checks",
		},
		{
			name: "missing pattern",
			yaml: `
checks:
  - name: broken
    input: "abc"
`,
			wantErr: "pattern is required",
		},
		{
			name: "input and file together",
			yaml: `
checks:
  - input: "abc"
    file: ./x.txt
    pattern: "a"
`,
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "inline")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_PassAndFail(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - name: passes
    input: "abc123"
    pattern: '\d+'
  - name: fails
    input: "abc"
    pattern: '\d'
    message: expected digits
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Errored)
	require.Len(t, report.Results, 2)

	assert.True(t, report.Results[0].Passed)
	assert.Empty(t, report.Results[0].Message)

	failed := report.Results[1]
	assert.False(t, failed.Passed)
	assert.Equal(t, `assertion failed: "abc" does not match \d: expected digits`, failed.Message)
}

func TestRun_BadPatternIsErrored(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - name: broken
    input: "abc"
    pattern: '[a-z'
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 1, report.Errored)
	assert.Equal(t, 0, report.Failed)
	require.Error(t, report.Results[0].Err)
	assert.Contains(t, report.Results[0].Err.Error(), "error parsing regexp")
}

func TestRun_FileInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.txt"), []byte("1.2.3\n"), 0o644))
	path := writeSuite(t, dir, `
checks:
  - name: version line
    file: ./version.txt
    pattern: '^\d+\.\d+\.\d+'
`)

	s, err := Load(path)
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 1, report.Passed)
}

func TestRun_FileInputMissing(t *testing.T) {
	path := writeSuite(t, t.TempDir(), `
checks:
  - name: missing
    file: ./nope.txt
    pattern: 'a'
`)
	s, err := Load(path)
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 1, report.Errored)
	assert.Contains(t, report.Results[0].Err.Error(), "cannot read input file")
}

func TestRun_JSONPath(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - name: user id
    input: '{"user": {"id": 42, "name": "John"}}'
    json_path: user.id
    pattern: '^\d+$'
  - name: user name
    input: '{"user": {"id": 42, "name": "John"}}'
    json_path: user.name
    pattern: '^J'
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, "42", report.Results[0].Haystack)
}

func TestRun_JSONPathErrors(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - name: not json
    input: 'plain text'
    json_path: user.id
    pattern: 'a'
  - name: missing path
    input: '{"user": {}}'
    json_path: user.id
    pattern: 'a'
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 2, report.Errored)
	assert.Contains(t, report.Results[0].Err.Error(), "not valid JSON")
	assert.Contains(t, report.Results[1].Err.Error(), "no such value")
}

func TestRun_Negate(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - name: no digits
    input: "abc"
    pattern: '\d'
    negate: true
  - name: unexpectedly matches
    input: "abc123"
    pattern: '\d'
    negate: true
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, `assertion failed: "abc123" unexpectedly matches \d`, report.Results[1].Message)
}

func TestRun_UnnamedCheckGetsPositionalLabel(t *testing.T) {
	s, err := Parse([]byte(`
checks:
  - input: "abc"
    pattern: 'a'
`), "inline")
	require.NoError(t, err)

	report := s.Run()
	assert.Equal(t, "#1", report.Results[0].Name)
}
