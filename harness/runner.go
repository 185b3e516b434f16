package harness

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	knight "github.com/knight-lang/knight-go"
)

// TestResult holds the outcome of running a single test case.
type TestResult struct {
	TestCase TestCase
	Passed   bool
	Actual   ActualResult
	Failures []string
}

// ActualResult captures what actually happened when the test ran.
type ActualResult struct {
	Stdout   string
	Result   string // dump form of the final value, "" when the run failed
	Error    string // "", "parse" or "runtime"
	Detail   string // the failure message, for reports
	ExitCode int
}

// RunSuite executes all test cases in a suite and returns the results.
func RunSuite(suite *TestSuite) []TestResult {
	results := make([]TestResult, 0, len(suite.Cases))
	for _, tc := range suite.Cases {
		results = append(results, RunTest(tc))
	}
	return results
}

// RunTest executes a single case in a fresh interpreter, so no variables leak
// between cases, and compares the outcome against the case's expectations.
func RunTest(tc TestCase) TestResult {
	result := TestResult{TestCase: tc, Passed: true}
	fail := func(format string, args ...any) {
		result.Passed = false
		result.Failures = append(result.Failures, fmt.Sprintf(format, args...))
	}

	var seed int64
	if tc.Seed != nil {
		seed = *tc.Seed
	}
	var stdout bytes.Buffer
	ip := knight.New(
		knight.WithOutput(&stdout),
		knight.WithInput(strings.NewReader(tc.Stdin)),
		knight.WithRandSeed(seed),
	)

	v, err := ip.Run(tc.Program)
	result.Actual.Stdout = stdout.String()

	var exit *knight.ExitError
	switch {
	case err == nil:
		result.Actual.Result = v.Dump()
	case errors.As(err, &exit):
		result.Actual.ExitCode = exit.Code
	case knight.IsParseError(err):
		result.Actual.Error = "parse"
		result.Actual.Detail = err.Error()
	default:
		result.Actual.Error = "runtime"
		result.Actual.Detail = err.Error()
	}

	if tc.Error != result.Actual.Error {
		want, got := tc.Error, result.Actual.Error
		if want == "" {
			want = "none"
		}
		if got == "" {
			got = "none"
		}
		if result.Actual.Detail != "" {
			got = fmt.Sprintf("%s (%s)", got, result.Actual.Detail)
		}
		fail("error mismatch:\n  expected: %s\n  actual:   %s", want, got)
	}

	if tc.Stdout != nil && *tc.Stdout != result.Actual.Stdout {
		fail("stdout mismatch:\n  expected: %q\n  actual:   %q", *tc.Stdout, result.Actual.Stdout)
	}

	if tc.Result != "" && tc.Result != result.Actual.Result {
		fail("result mismatch:\n  expected: %q\n  actual:   %q", tc.Result, result.Actual.Result)
	}

	wantExit := 0
	if tc.Exit != nil {
		wantExit = *tc.Exit
	}
	if wantExit != result.Actual.ExitCode {
		fail("exit code mismatch:\n  expected: %d\n  actual:   %d", wantExit, result.Actual.ExitCode)
	}

	return result
}

// Summary holds aggregate statistics about a test run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize calculates summary statistics from test results.
func Summarize(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
