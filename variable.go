package knight

import "regexp"

// Variable is a name reference. Running it looks the name up in the
// interpreter's environment; the = operator consumes it unevaluated as its
// assignment target. It never results from evaluation, so the conversion
// methods are unreachable in well-formed programs and fail loudly otherwise.
type Variable struct {
	name string
	line int
	col  int
}

var variablePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*`)

func probeVariable(p *parser) (Value, error) {
	line, col := p.cur.Pos()
	name, ok := p.cur.Match(variablePattern)
	if !ok {
		return nil, nil
	}
	return &Variable{name: name, line: line, col: col}, nil
}

// Name returns the identifier this node refers to.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Run(ip *Interpreter) Value {
	val, ok := ip.env.Get(v.name)
	if !ok {
		failAt("undefined variable: "+v.name, v.line, v.col)
	}
	return val
}

func (v *Variable) Number() int64 {
	fail("cannot convert a variable to a number")
	return 0
}

func (v *Variable) Truthy() bool {
	fail("cannot convert a variable to a boolean")
	return false
}

func (v *Variable) String() string {
	fail("cannot convert a variable to a string")
	return ""
}

func (v *Variable) List() []Value {
	fail("cannot convert a variable to a list")
	return nil
}

func (v *Variable) Dump() string { return "Variable(" + v.name + ")" }

// Equal is identity: two occurrences of the same name are distinct nodes.
func (v *Variable) Equal(other Value) bool { return v == other }

func (v *Variable) Compare(Value) int {
	fail("cannot compare a variable")
	return 0
}
