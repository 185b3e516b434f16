package knight

import "regexp"

// Bool is the boolean variant, written T or F in source.
type Bool bool

var boolPattern = regexp.MustCompile(`^([TF])[A-Z_]*`)

// probeBool recognizes T or F plus any trailing keyword noise (TRUE, FALSE,
// T_END and the like all read as the single letter).
func probeBool(p *parser) (Value, error) {
	letter, ok := p.cur.Match(boolPattern)
	if !ok {
		return nil, nil
	}
	return Bool(letter == "T"), nil
}

func (b Bool) Run(*Interpreter) Value { return b }

func (b Bool) Number() int64 {
	if b {
		return 1
	}
	return 0
}

func (b Bool) Truthy() bool { return bool(b) }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// List yields [] for false and [true] for true.
func (b Bool) List() []Value {
	if b {
		return []Value{Bool(true)}
	}
	return nil
}

func (b Bool) Dump() string { return b.String() }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// Compare orders false before true against the other value's truthiness.
func (b Bool) Compare(other Value) int {
	return int(b.Number() - Bool(other.Truthy()).Number())
}
