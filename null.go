package knight

import "regexp"

// Null is the unit variant, written N in source.
type Null struct{}

var nullPattern = regexp.MustCompile(`^N[A-Z_]*`)

func probeNull(p *parser) (Value, error) {
	if _, ok := p.cur.Match(nullPattern); !ok {
		return nil, nil
	}
	return Null{}, nil
}

func (Null) Run(*Interpreter) Value { return Null{} }

func (Null) Number() int64  { return 0 }
func (Null) Truthy() bool   { return false }
func (Null) String() string { return "" }
func (Null) List() []Value  { return nil }
func (Null) Dump() string   { return "null" }

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// Compare always fails: Null has no ordering.
func (Null) Compare(Value) int {
	fail("cannot compare Null")
	return 0
}
