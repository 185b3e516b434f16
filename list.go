package knight

import (
	"regexp"
	"strings"
)

// List is the sequence variant. The only list literal is @, the empty list;
// longer lists are built by , + * and the coercions of other variants.
type List []Value

var listPattern = regexp.MustCompile(`^@`)

func probeList(p *parser) (Value, error) {
	if _, ok := p.cur.Match(listPattern); !ok {
		return nil, nil
	}
	return List{}, nil
}

func (l List) Run(*Interpreter) Value { return l }

// Number converts to the length.
func (l List) Number() int64 { return int64(len(l)) }

func (l List) Truthy() bool { return len(l) > 0 }

// String joins the element texts with newlines.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return strings.Join(parts, "\n")
}

func (l List) List() []Value { return l }

func (l List) Dump() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Dump())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal is structural: same length, pairwise Equal elements.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Compare orders element-wise, each pair by the element's own ordering; an
// equal prefix makes the shorter list the smaller one.
func (l List) Compare(other Value) int {
	o := other.List()
	n := len(l)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if c := l[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	return len(l) - len(o)
}
