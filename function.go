package knight

import (
	"fmt"
	"regexp"
)

// Function is a compound node: one operator plus exactly arity operands,
// captured unevaluated at parse time. Running it hands the raw operands to
// the operator, which decides what to evaluate, in what order, how often.
// BLOCK returns such a node as a first-class deferred value.
type Function struct {
	op   *Operator
	args []Value
	line int
	col  int
}

var wordOpPattern = regexp.MustCompile(`^([A-Z])[A-Z_]*`)

// probeFunction recognizes an operator — a single symbol, or an uppercase
// word read as its first letter — then parses its operands. Too few operands
// before end of input is a parse failure naming the operator.
func probeFunction(p *parser) (Value, error) {
	ch, ok := p.cur.Peek()
	if !ok {
		return nil, nil
	}
	line, col := p.cur.Pos()

	var op *Operator
	if ch >= 'A' && ch <= 'Z' {
		letter, _ := p.cur.Match(wordOpPattern)
		op = opTable[letter[0]]
		if op == nil {
			return nil, &Error{Kind: DiagParse, Line: line, Col: col, Msg: fmt.Sprintf("unknown function %q", letter)}
		}
	} else if op = opTable[ch]; op != nil {
		p.cur.Take()
	} else {
		return nil, nil
	}

	args := make([]Value, 0, op.arity)
	for i := 0; i < op.arity; i++ {
		arg, err := p.parseValue()
		if err != nil {
			// Only rewrite the plain ran-out-of-input case; a more specific
			// incomplete form (an unterminated string) keeps its own message.
			if e, ok := err.(*Error); ok && e.Kind == DiagIncomplete && p.cur.EOF() {
				return nil, &Error{
					Kind: DiagIncomplete,
					Line: e.Line,
					Col:  e.Col,
					Msg:  fmt.Sprintf("missing argument %d for %s", i+1, op.name),
				}
			}
			return nil, err
		}
		args = append(args, arg)
	}
	return &Function{op: op, args: args, line: line, col: col}, nil
}

func (f *Function) Run(ip *Interpreter) Value {
	// Track the innermost operator position so positionless runtime failures
	// point at the operator that raised them. Restore is skipped on panic: the
	// recover boundary then reads the innermost position, which is the one we
	// want reported.
	prevLine, prevCol := ip.line, ip.col
	ip.line, ip.col = f.line, f.col
	out := f.op.run(ip, f.args)
	ip.line, ip.col = prevLine, prevCol
	return out
}

func (f *Function) Number() int64 {
	fail("cannot convert a block to a number")
	return 0
}

func (f *Function) Truthy() bool {
	fail("cannot convert a block to a boolean")
	return false
}

func (f *Function) String() string {
	fail("cannot convert a block to a string")
	return ""
}

func (f *Function) List() []Value {
	fail("cannot convert a block to a list")
	return nil
}

func (f *Function) Dump() string { return "Function(" + f.op.name + ")" }

// Equal is identity: blocks compare equal only to themselves.
func (f *Function) Equal(other Value) bool { return f == other }

func (f *Function) Compare(Value) int {
	fail("cannot compare a block")
	return 0
}
