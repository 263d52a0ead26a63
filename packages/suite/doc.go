// Package suite loads and runs YAML-defined pattern check suites.
//
// A suite file lists named checks, each pairing an input (inline text or
// a file reference) with a regex pattern:
//
//	name: smoke
//	checks:
//	  - name: greeting
//	    input: "Hello!"
//	    pattern: "(?i)hello"
//	  - name: version line
//	    file: ./VERSION
//	    pattern: '^\d+\.\d+\.\d+'
//	  - name: user id present
//	    input: '{"user": {"id": 42}}'
//	    json_path: user.id
//	    pattern: '^\d+$'
//
// json_path extracts a value from JSON input with gjson before matching.
// negate inverts the expectation. File paths resolve relative to the
// suite file's directory.
package suite
