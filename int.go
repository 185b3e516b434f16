package knight

import (
	"regexp"
	"strconv"
)

// Int is the integer variant. Arithmetic is 64-bit two's-complement; overflow
// wraps rather than extending to arbitrary precision.
type Int int64

var intPattern = regexp.MustCompile(`^\d+`)

// probeInt recognizes a run of digits. Integer literals carry no sign; the ~
// operator negates at run time.
func probeInt(p *parser) (Value, error) {
	digits, ok := p.cur.Match(intPattern)
	if !ok {
		return nil, nil
	}
	var n int64
	for i := 0; i < len(digits); i++ {
		n = n*10 + int64(digits[i]-'0')
	}
	return Int(n), nil
}

func (i Int) Run(*Interpreter) Value { return i }

func (i Int) Number() int64  { return int64(i) }
func (i Int) Truthy() bool   { return i != 0 }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// List yields the decimal digits most significant first, each carrying the
// integer's sign. Zero yields [0].
func (i Int) List() []Value {
	n := int64(i)
	if n == 0 {
		return []Value{Int(0)}
	}
	var rev []int64
	for m := n; m != 0; m /= 10 {
		rev = append(rev, m%10)
	}
	out := make([]Value, len(rev))
	for k, d := range rev {
		out[len(rev)-1-k] = Int(d)
	}
	return out
}

func (i Int) Dump() string { return i.String() }

func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (i Int) Compare(other Value) int {
	o := other.Number()
	switch {
	case int64(i) < o:
		return -1
	case int64(i) > o:
		return 1
	}
	return 0
}
