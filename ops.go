// ops.go — PRIVATE: the operator catalogue and its evaluation bodies.
//
// This file:
//   - Defines the panic-based runtime failure signals (`fail`, `failAt`) that
//     every operator body uses; (*Interpreter).Run recovers them.
//   - Builds the closed operator table consulted by the parser. One entry per
//     operator: display name, fixed arity, evaluation body.
//   - Hosts the arithmetic/indexing helpers the bodies share.
//
// Operator bodies receive their operands UNEVALUATED and call Run themselves,
// which is what gives the language short-circuit booleans, lazy branches,
// deferred blocks and assignable names.
//
// Concurrency model:
//   - A single *Interpreter is not re-entrant; do not call it from multiple
//     goroutines. All mutable state lives on the Interpreter (env, output,
//     input, rng, position bookkeeping) — there are no package-level mutable
//     singletons. opTable is built once at package init and only read after.
package knight

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

////////////////////////////////////////////////////////////////////////////////
//                         PRIVATE PANIC / ERROR HELPERS
////////////////////////////////////////////////////////////////////////////////

// rtErr is the runtime failure signal. Raise it with fail/failAt only; the
// recover boundary in knight.go turns it into a *Error{Kind: DiagRuntime},
// filling in the innermost operator position when line/col are zero.
type rtErr struct {
	msg  string
	line int
	col  int
}

// exitSig is the QUIT signal, recovered into a *ExitError.
type exitSig struct {
	code int
}

func fail(msg string)                  { panic(rtErr{msg: msg}) }
func failAt(msg string, line, col int) { panic(rtErr{msg: msg, line: line, col: col}) }

////////////////////////////////////////////////////////////////////////////////
//                              OPERATOR TABLE
////////////////////////////////////////////////////////////////////////////////

// Operator is one entry of the closed operator set: a display name for
// diagnostics and dumps, a fixed operand count, and the evaluation body.
type Operator struct {
	name  string
	arity int
	run   func(ip *Interpreter, args []Value) Value
}

// opTable keys operators by their source byte: the symbol itself, or the
// first letter of an uppercase word (OUTPUT, O and OUT all read as OUTPUT).
// Built once at package init; read-only afterwards.
var opTable = buildOpTable()

func buildOpTable() map[byte]*Operator {
	t := make(map[byte]*Operator, 32)
	op := func(sym byte, name string, arity int, run func(*Interpreter, []Value) Value) {
		t[sym] = &Operator{name: name, arity: arity, run: run}
	}

	// --- nullary ---

	op('P', "PROMPT", 0, func(ip *Interpreter, _ []Value) Value {
		line, err := ip.in.ReadString('\n')
		if err != nil && line == "" {
			return Null{}
		}
		return Str(strings.TrimRight(line, "\r\n"))
	})

	op('R', "RANDOM", 0, func(ip *Interpreter, _ []Value) Value {
		return Int(ip.rng.Int63n(32768))
	})

	// --- unary ---

	op('B', "BLOCK", 1, func(_ *Interpreter, args []Value) Value {
		return args[0]
	})

	op('C', "CALL", 1, func(ip *Interpreter, args []Value) Value {
		return args[0].Run(ip).Run(ip)
	})

	op('Q', "QUIT", 1, func(ip *Interpreter, args []Value) Value {
		panic(exitSig{code: int(args[0].Run(ip).Number())})
	})

	op('D', "DUMP", 1, func(ip *Interpreter, args []Value) Value {
		v := args[0].Run(ip)
		fmt.Fprint(ip.out, v.Dump())
		return v
	})

	op('O', "OUTPUT", 1, func(ip *Interpreter, args []Value) Value {
		v := args[0].Run(ip)
		text := v.String()
		if strings.HasSuffix(text, `\`) {
			fmt.Fprint(ip.out, text[:len(text)-1])
		} else {
			fmt.Fprintln(ip.out, text)
		}
		return v
	})

	op('L', "LENGTH", 1, func(ip *Interpreter, args []Value) Value {
		return Int(int64(len(args[0].Run(ip).List())))
	})

	op('A', "ASCII", 1, func(ip *Interpreter, args []Value) Value {
		switch v := args[0].Run(ip).(type) {
		case Int:
			if v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
				fail(fmt.Sprintf("codepoint %d is out of range", int64(v)))
			}
			return Str(rune(v))
		case Str:
			if len(v) == 0 {
				fail("empty string has no first character")
			}
			r, _ := utf8.DecodeRuneInString(string(v))
			return Int(r)
		default:
			fail("cannot take ASCII of " + typeName(v))
			return nil
		}
	})

	op('E', "EVAL", 1, func(ip *Interpreter, args []Value) Value {
		node, err := Parse(args[0].Run(ip).String())
		if err != nil {
			panic(err)
		}
		return node.Run(ip)
	})

	op('!', "!", 1, func(ip *Interpreter, args []Value) Value {
		return Bool(!args[0].Run(ip).Truthy())
	})

	op('~', "~", 1, func(ip *Interpreter, args []Value) Value {
		return Int(-args[0].Run(ip).Number())
	})

	op(',', ",", 1, func(ip *Interpreter, args []Value) Value {
		return List{args[0].Run(ip)}
	})

	op('[', "[", 1, func(ip *Interpreter, args []Value) Value {
		switch v := args[0].Run(ip).(type) {
		case Str:
			rs := v.runes()
			if len(rs) == 0 {
				fail("head of empty string")
			}
			return Str(rs[0])
		case List:
			if len(v) == 0 {
				fail("head of empty list")
			}
			return v[0]
		default:
			fail("cannot take the head of " + typeName(v))
			return nil
		}
	})

	op(']', "]", 1, func(ip *Interpreter, args []Value) Value {
		switch v := args[0].Run(ip).(type) {
		case Str:
			rs := v.runes()
			if len(rs) == 0 {
				fail("tail of empty string")
			}
			return Str(rs[1:])
		case List:
			if len(v) == 0 {
				fail("tail of empty list")
			}
			return v[1:]
		default:
			fail("cannot take the tail of " + typeName(v))
			return nil
		}
	})

	// --- binary ---

	op('+', "+", 2, func(ip *Interpreter, args []Value) Value {
		switch l := args[0].Run(ip).(type) {
		case Int:
			return Int(int64(l) + args[1].Run(ip).Number())
		case Str:
			return Str(string(l) + args[1].Run(ip).String())
		case List:
			r := args[1].Run(ip).List()
			out := make(List, 0, len(l)+len(r))
			out = append(out, l...)
			return append(out, r...)
		default:
			fail("cannot add to " + typeName(l))
			return nil
		}
	})

	op('-', "-", 2, func(ip *Interpreter, args []Value) Value {
		l := mustInt(args[0].Run(ip), "subtract from")
		return Int(int64(l) - args[1].Run(ip).Number())
	})

	op('*', "*", 2, func(ip *Interpreter, args []Value) Value {
		switch l := args[0].Run(ip).(type) {
		case Int:
			return Int(int64(l) * args[1].Run(ip).Number())
		case Str:
			n := args[1].Run(ip).Number()
			if n <= 0 {
				return Str("")
			}
			return Str(strings.Repeat(string(l), int(n)))
		case List:
			n := args[1].Run(ip).Number()
			if n <= 0 {
				return List{}
			}
			out := make(List, 0, int(n)*len(l))
			for i := int64(0); i < n; i++ {
				out = append(out, l...)
			}
			return out
		default:
			fail("cannot multiply " + typeName(l))
			return nil
		}
	})

	op('/', "/", 2, func(ip *Interpreter, args []Value) Value {
		l := mustInt(args[0].Run(ip), "divide")
		r := args[1].Run(ip).Number()
		if r == 0 {
			fail("division by zero")
		}
		if r == -1 {
			// int64 min / -1 traps in Go; wraparound keeps the policy uniform.
			return Int(-int64(l))
		}
		return Int(int64(l) / r)
	})

	op('%', "%", 2, func(ip *Interpreter, args []Value) Value {
		l := mustInt(args[0].Run(ip), "take the remainder of")
		r := args[1].Run(ip).Number()
		if r == 0 {
			fail("modulo by zero")
		}
		if r == -1 {
			return Int(0)
		}
		return Int(int64(l) % r)
	})

	op('^', "^", 2, func(ip *Interpreter, args []Value) Value {
		switch l := args[0].Run(ip).(type) {
		case Int:
			return Int(ipow(int64(l), args[1].Run(ip).Number()))
		case List:
			sep := args[1].Run(ip).String()
			parts := make([]string, len(l))
			for i, v := range l {
				parts[i] = v.String()
			}
			return Str(strings.Join(parts, sep))
		default:
			fail("cannot raise " + typeName(l) + " to a power")
			return nil
		}
	})

	op('<', "<", 2, func(ip *Interpreter, args []Value) Value {
		return Bool(args[0].Run(ip).Compare(args[1].Run(ip)) < 0)
	})

	op('>', ">", 2, func(ip *Interpreter, args []Value) Value {
		return Bool(args[0].Run(ip).Compare(args[1].Run(ip)) > 0)
	})

	op('?', "?", 2, func(ip *Interpreter, args []Value) Value {
		return Bool(args[0].Run(ip).Equal(args[1].Run(ip)))
	})

	op('&', "&", 2, func(ip *Interpreter, args []Value) Value {
		l := args[0].Run(ip)
		if !l.Truthy() {
			return l
		}
		return args[1].Run(ip)
	})

	op('|', "|", 2, func(ip *Interpreter, args []Value) Value {
		l := args[0].Run(ip)
		if l.Truthy() {
			return l
		}
		return args[1].Run(ip)
	})

	op(';', ";", 2, func(ip *Interpreter, args []Value) Value {
		args[0].Run(ip)
		return args[1].Run(ip)
	})

	op('=', "=", 2, func(ip *Interpreter, args []Value) Value {
		target, ok := args[0].(*Variable)
		if !ok {
			fail("assignment target must be a variable, got " + typeName(args[0]))
		}
		v := args[1].Run(ip)
		ip.env.Define(target.name, v)
		return v
	})

	op('W', "WHILE", 2, func(ip *Interpreter, args []Value) Value {
		for args[0].Run(ip).Truthy() {
			args[1].Run(ip)
		}
		return Null{}
	})

	// --- ternary and up ---

	op('I', "IF", 3, func(ip *Interpreter, args []Value) Value {
		if args[0].Run(ip).Truthy() {
			return args[1].Run(ip)
		}
		return args[2].Run(ip)
	})

	op('G', "GET", 3, func(ip *Interpreter, args []Value) Value {
		v := args[0].Run(ip)
		start, length := rangeArgs(ip, args[1], args[2])
		switch x := v.(type) {
		case Str:
			rs := x.runes()
			lo, hi := clampRange(start, length, len(rs))
			return Str(rs[lo:hi])
		case List:
			lo, hi := clampRange(start, length, len(x))
			return x[lo:hi]
		default:
			fail("cannot index into " + typeName(v))
			return nil
		}
	})

	op('S', "SET", 4, func(ip *Interpreter, args []Value) Value {
		v := args[0].Run(ip)
		start, length := rangeArgs(ip, args[1], args[2])
		switch x := v.(type) {
		case Str:
			rs := x.runes()
			lo, hi := clampRange(start, length, len(rs))
			repl := args[3].Run(ip).String()
			return Str(string(rs[:lo]) + repl + string(rs[hi:]))
		case List:
			lo, hi := clampRange(start, length, len(x))
			repl := args[3].Run(ip).List()
			out := make(List, 0, len(x)-(hi-lo)+len(repl))
			out = append(out, x[:lo]...)
			out = append(out, repl...)
			return append(out, x[hi:]...)
		default:
			fail("cannot index into " + typeName(v))
			return nil
		}
	})

	return t
}

////////////////////////////////////////////////////////////////////////////////
//                              SHARED HELPERS
////////////////////////////////////////////////////////////////////////////////

// mustInt asserts the already-evaluated v is an Int; verb names the operation
// for the failure message.
func mustInt(v Value, verb string) Int {
	i, ok := v.(Int)
	if !ok {
		fail("cannot " + verb + " " + typeName(v))
	}
	return i
}

// ipow raises base to exp with int64 wraparound. Negative exponents truncate
// toward zero: only bases 0, 1 and -1 survive, and a zero base fails.
func ipow(base, exp int64) int64 {
	if exp < 0 {
		switch base {
		case 0:
			fail("zero cannot be raised to a negative power")
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := int64(1)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}

// rangeArgs evaluates the start/length operands of GET and SET. Negative
// values are failures; clamping happens later against the subject's size.
func rangeArgs(ip *Interpreter, startArg, lengthArg Value) (start, length int64) {
	start = startArg.Run(ip).Number()
	length = lengthArg.Run(ip).Number()
	if start < 0 {
		fail(fmt.Sprintf("negative start %d", start))
	}
	if length < 0 {
		fail(fmt.Sprintf("negative length %d", length))
	}
	return start, length
}

// clampRange fits [start, start+length) into [0, n).
func clampRange(start, length int64, n int) (int, int) {
	lo := start
	if lo > int64(n) {
		lo = int64(n)
	}
	hi := int64(n)
	if length < hi-lo {
		hi = lo + length
	}
	return int(lo), int(hi)
}
