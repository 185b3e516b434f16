// knight.go — SINGLE PUBLIC API SURFACE for the Knight interpreter.
//
// OVERVIEW
// ========
// Knight programs are one prefix-notation expression. This package parses
// that expression into a tree of Values (parse.go and the per-variant files)
// and evaluates it by asking the root to Run (ops.go drives the operator
// semantics). This file exposes the whole embedding surface:
//
//   - The Interpreter type with functional options: WithOutput redirects
//     OUTPUT/DUMP, WithInput feeds PROMPT, WithRandSeed makes RANDOM
//     deterministic.
//   - Run(src), the canonical entry point: parse one expression, evaluate it,
//     return the final Value or an error.
//   - Env(), exposing the flat variable environment for tooling.
//
// EXECUTION & SCOPING SEMANTICS
// -----------------------------
// There is exactly ONE environment per interpreter, flat and alive for the
// interpreter's whole lifetime. The language has no lexical scoping: an
// assignment made inside a called block is visible to everything that runs
// afterwards, and bindings persist across Run calls on the same Interpreter
// (which is what a REPL wants). A fresh Interpreter per program gives the
// usual one-environment-per-run behavior.
//
// ERRORS
// ------
// Run returns (Value, nil) on success. On failure it returns a *Error of
// parse or runtime class (see errors.go), or a *ExitError when the program
// executed QUIT. Runtime failures are raised inside operator bodies as
// panics and recovered here — the language has no catch construct, so the
// first failure aborts the whole program.
//
// A single *Interpreter must not be used from multiple goroutines.
package knight

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Version is the interpreter release, shown by the CLI banner.
const Version = "0.3.0"

// Interpreter evaluates Knight programs. The zero value is not usable;
// construct with New.
type Interpreter struct {
	env *Env
	out io.Writer
	in  *bufio.Reader
	rng *rand.Rand

	// Position of the innermost running operator, maintained by
	// (*Function).Run for runtime diagnostics.
	line int
	col  int
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput redirects OUTPUT and DUMP. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(ip *Interpreter) { ip.out = w }
}

// WithInput feeds PROMPT. Default: os.Stdin.
func WithInput(r io.Reader) Option {
	return func(ip *Interpreter) { ip.in = bufio.NewReader(r) }
}

// WithRandSeed seeds RANDOM so runs are reproducible.
func WithRandSeed(seed int64) Option {
	return func(ip *Interpreter) { ip.rng = rand.New(rand.NewSource(seed)) }
}

// New returns a ready interpreter with an empty environment.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{
		env: NewEnv(),
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Env exposes the interpreter's variable environment (REPL/tooling).
func (ip *Interpreter) Env() *Env { return ip.env }

// Run parses one expression from the start of src and evaluates it. Bindings
// made by the program stay in the environment for subsequent Run calls.
func (ip *Interpreter) Run(src string) (Value, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return ip.eval(node)
}

// Run is the one-shot form: a fresh interpreter, stdout/stdin wiring, one
// program.
func Run(src string) (Value, error) {
	return New().Run(src)
}

// eval runs the tree under the recover boundary that turns the internal
// panic signals into the public error types.
func (ip *Interpreter) eval(root Value) (out Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			switch sig := r.(type) {
			case exitSig:
				err = &ExitError{Code: sig.code}
			case rtErr:
				line, col := sig.line, sig.col
				if line <= 0 {
					line, col = ip.line, ip.col
				}
				err = &Error{Kind: DiagRuntime, Line: line, Col: col, Msg: sig.msg}
			case *Error:
				err = sig
			case error:
				err = &Error{Kind: DiagRuntime, Line: ip.line, Col: ip.col, Msg: sig.Error()}
			default:
				err = &Error{Kind: DiagRuntime, Line: ip.line, Col: ip.col, Msg: fmt.Sprintf("runtime panic: %v", r)}
			}
		}
	}()
	return root.Run(ip), nil
}
