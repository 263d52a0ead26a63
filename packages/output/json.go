package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/matchspec/packages/suite"
)

// JSONReport represents the complete JSON output structure
type JSONReport struct {
	RunID    string      `json:"runId"`
	Suite    string      `json:"suite"`
	Summary  JSONSummary `json:"summary"`
	Checks   []JSONCheck `json:"checks"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the check totals
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// JSONCheck represents a single check result
type JSONCheck struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Haystack string `json:"haystack,omitempty"`
	Pattern  string `json:"pattern"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONFormatter formats suite reports as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithJSONWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatReport(report *suite.Report) error {
	out := JSONReport{
		RunID: report.RunID,
		Suite: report.Suite,
		Summary: JSONSummary{
			Total:   len(report.Results),
			Passed:  report.Passed,
			Failed:  report.Failed,
			Errored: report.Errored,
		},
		Checks:   make([]JSONCheck, 0, len(report.Results)),
		Duration: report.Duration.Seconds(),
		Time:     report.Started.Format(time.RFC3339),
	}

	for _, r := range report.Results {
		check := JSONCheck{
			Name:     r.Name,
			Passed:   r.Passed,
			Haystack: r.Haystack,
			Pattern:  r.Pattern,
			Message:  r.Message,
		}
		if r.Err != nil {
			check.Error = r.Err.Error()
		}
		out.Checks = append(out.Checks, check)
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
