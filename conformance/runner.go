package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/interp"
	"github.com/npillmayer/tlox/parser"
	"github.com/npillmayer/tlox/resolver"
	"github.com/npillmayer/tlox/scanner"
)

// tracer traces with key 'tlox.conformance'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.conformance")
}

// Error kinds for static errors.
const (
	SyntaxError     = "SyntaxError"
	ResolutionError = "ResolutionError"
)

// Result is the outcome of running a test case.
type Result struct {
	Output []string
	Err    error
	Kind   string // kind of Err, if any
}

// Runner runs test cases, each on a fresh interpreter.
type Runner struct {
	Options []interp.Option
}

// Run executes the source of a case.
func (r *Runner) Run(c Case) Result {
	var out bytes.Buffer
	opts := append([]interp.Option{interp.WithOutput(&out)}, r.Options...)
	err := interp.New(opts...).Run(c.Source)
	res := Result{Err: err, Kind: ErrorKind(err)}
	if text := strings.TrimSuffix(out.String(), "\n"); text != "" {
		res.Output = strings.Split(text, "\n")
	}
	return res
}

// Check compares a result with the expectation of a case. It returns nil if
// they agree.
func (r *Runner) Check(c Case, res Result) error {
	exp := c.Expect
	if strings.Join(res.Output, "\n") != strings.Join(exp.Output, "\n") {
		return fmt.Errorf("expected output %q, got %q", exp.Output, res.Output)
	}
	if exp.Error == "" && exp.Match == "" {
		if res.Err != nil {
			return fmt.Errorf("unexpected error: %v", res.Err)
		}
		return nil
	}
	if res.Err == nil {
		return fmt.Errorf("expected %s, got no error", exp.Error)
	}
	if exp.Error != "" && exp.Error != res.Kind {
		return fmt.Errorf("expected %s, got %s: %v", exp.Error, res.Kind, res.Err)
	}
	if exp.Match != "" {
		re, err := regexp.Compile(exp.Match)
		if err != nil {
			return fmt.Errorf("invalid match pattern: %w", err)
		}
		if !re.MatchString(res.Err.Error()) {
			return fmt.Errorf("error %q does not match %q", res.Err.Error(), exp.Match)
		}
	}
	return nil
}

// ErrorKind classifies an error returned by Interpreter.Run. Lists of static
// errors are classified by their first error.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var errs tlox.ErrorList
	if errors.As(err, &errs) && len(errs) > 0 {
		return ErrorKind(errs[0])
	}
	var rerr *interp.RuntimeError
	var perr *parser.Error
	var serr scanner.Error
	var rslv *resolver.Error
	switch {
	case errors.As(err, &rerr):
		return rerr.Kind.String()
	case errors.As(err, &perr), errors.As(err, &serr):
		return SyntaxError
	case errors.As(err, &rslv):
		return ResolutionError
	}
	return "Error"
}
