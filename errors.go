// errors.go: the diagnostic family and caret-snippet rendering
//
// What this file does
// -------------------
// Every failure the interpreter can surface is a *Error carrying a Kind, a
// 1-based Line, a 0-based Col and a message. Two classes exist:
//
//   - parse-time failures (DiagParse, or DiagIncomplete when the parser ran
//     out of input — REPLs use IsIncomplete to keep reading),
//   - run-time failures (DiagRuntime), raised inside operators and surfaced
//     by (*Interpreter).Run.
//
// QUIT is not a diagnostic: it stops the program deliberately and is reported
// as *ExitError so front ends can map it to a process exit status.
//
// `WrapErrorWithSource` turns a *Error into a readable, Python-style snippet
// with a caret pointing at the offending column:
//
//	PARSE ERROR at 2:6: unterminated string
//
//	   1 | ; = a 1
//	   2 | + a "oops
//	     |     ^
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places the caret under the 1-based column. Errors of
// any other type are returned unchanged, so the wrapper is safe to apply
// unconditionally.
package knight

import (
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// DiagKind classifies a *Error.
type DiagKind int

const (
	// DiagParse marks source text the parser rejected.
	DiagParse DiagKind = iota
	// DiagIncomplete marks source text that ended before a complete value;
	// interactive front ends treat it as "keep reading".
	DiagIncomplete
	// DiagRuntime marks a failure raised while running the program.
	DiagRuntime
)

// Error is the single diagnostic type produced by parsing and evaluation.
// Line is 1-based; Col is a 0-based byte offset within that line (rendered
// 1-based everywhere a human sees it).
type Error struct {
	Kind DiagKind
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.header(), e.Line, e.Col+1, e.Msg)
}

// IsIncomplete reports whether err is a parse failure caused by running out
// of input (unterminated string, missing operands at end of source). REPLs
// use it to decide between a continuation prompt and an error report.
func IsIncomplete(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == DiagIncomplete
}

// IsParseError reports whether err is a parse-class diagnostic (including
// incomplete input). Runtime failures and exits return false.
func IsParseError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind != DiagRuntime
}

// ExitError reports a deliberate QUIT with the requested status code. It is
// returned by Run instead of a *Error so callers can distinguish "the program
// asked to stop" from "the program failed".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes *Error and leaves other
// errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a display name for the source
// (a file path, "<stdin>", "<repl>"). The name appears in the header line.
func WrapErrorWithName(err error, srcName string, src string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", prettyErrorStringLabeled(src, e.header(), srcName, e.Line, e.Col+1, e.Msg))
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

func (e *Error) header() string {
	if e.Kind == DiagRuntime {
		return "RUNTIME ERROR"
	}
	return "PARSE ERROR"
}

// prettyErrorStringLabeled builds a Python-like snippet with a header and a
// caret. It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
