package suite

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/matchspec/packages/assert"
	"github.com/abdul-hamid-achik/matchspec/packages/match"
)

// Check is a single named pattern expectation.
type Check struct {
	Name     string `yaml:"name,omitempty"`
	Input    string `yaml:"input,omitempty"`
	File     string `yaml:"file,omitempty"`
	JSONPath string `yaml:"json_path,omitempty"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message,omitempty"`
	Negate   bool   `yaml:"negate,omitempty"`
}

// Suite is a set of checks loaded from one YAML file.
type Suite struct {
	Name   string  `yaml:"name,omitempty"`
	Checks []Check `yaml:"checks"`

	path string
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Passed   bool
	Message  string
	Haystack string
	Pattern  string
	Err      error // set when the check itself is broken, not a plain mismatch
}

// Report aggregates the results of one suite run.
type Report struct {
	RunID    string
	Suite    string
	Results  []*Result
	Passed   int
	Failed   int
	Errored  int
	Started  time.Time
	Duration time.Duration
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read suite file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes suite YAML. path is used for error messages and for
// resolving relative file references; it may be empty for inline data.
func Parse(data []byte, path string) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid suite file %s: %w", path, err)
	}
	s.path = path
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Checks) == 0 {
		return fmt.Errorf("suite %s has no checks", s.displayName())
	}
	for i, c := range s.Checks {
		if c.Pattern == "" {
			return fmt.Errorf("check %s: pattern is required", checkLabel(i, &c))
		}
		if c.File != "" && c.Input != "" {
			return fmt.Errorf("check %s: input and file are mutually exclusive", checkLabel(i, &c))
		}
	}
	return nil
}

func (s *Suite) displayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.path != "" {
		return filepath.Base(s.path)
	}
	return "suite"
}

func checkLabel(i int, c *Check) string {
	if c.Name != "" {
		return fmt.Sprintf("%q", c.Name)
	}
	return fmt.Sprintf("#%d", i+1)
}

// Run evaluates every check and returns a report. Checks are independent;
// a broken check is recorded as errored and does not stop the run.
func (s *Suite) Run() *Report {
	started := time.Now()
	report := &Report{
		RunID:   uuid.New().String(),
		Suite:   s.displayName(),
		Started: started,
	}

	for i := range s.Checks {
		r := s.runCheck(i, &s.Checks[i])
		report.Results = append(report.Results, r)
		switch {
		case r.Err != nil:
			report.Errored++
		case r.Passed:
			report.Passed++
		default:
			report.Failed++
		}
	}

	report.Duration = time.Since(started)
	return report
}

func (s *Suite) runCheck(i int, c *Check) *Result {
	result := &Result{Name: checkLabel(i, c), Pattern: c.Pattern}
	if c.Name != "" {
		result.Name = c.Name
	}

	haystack, err := s.resolveInput(c)
	if err != nil {
		result.Err = err
		return result
	}
	result.Haystack = haystack

	if c.Negate {
		return s.runNegated(result, c, haystack)
	}

	var msgAndArgs []any
	if c.Message != "" {
		msgAndArgs = append(msgAndArgs, c.Message)
	}

	err = assert.CheckMatches(haystack, c.Pattern, msgAndArgs...)
	switch {
	case err == nil:
		result.Passed = true
	case errors.Is(err, match.ErrBadPattern):
		result.Err = err
	default:
		result.Message = err.Error()
	}
	return result
}

func (s *Suite) runNegated(result *Result, c *Check, haystack string) *Result {
	m, err := match.Compile(c.Pattern)
	if err != nil {
		result.Err = err
		return result
	}
	if !m.Matches(haystack) {
		result.Passed = true
		return result
	}
	result.Message = fmt.Sprintf("assertion failed: %q unexpectedly matches %s", haystack, m.String())
	if c.Message != "" {
		result.Message += ": " + c.Message
	}
	return result
}

func (s *Suite) resolveInput(c *Check) (string, error) {
	haystack := c.Input
	if c.File != "" {
		path := c.File
		if !filepath.IsAbs(path) && s.path != "" {
			path = filepath.Join(filepath.Dir(s.path), path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("cannot read input file: %w", err)
		}
		haystack = string(data)
	}

	if c.JSONPath == "" {
		return haystack, nil
	}
	if !gjson.Valid(haystack) {
		return "", fmt.Errorf("json_path %s: input is not valid JSON", c.JSONPath)
	}
	value := gjson.Get(haystack, c.JSONPath)
	if !value.Exists() {
		return "", fmt.Errorf("json_path %s: no such value", c.JSONPath)
	}
	return value.String(), nil
}
