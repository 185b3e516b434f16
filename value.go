// value.go: the contract every runtime object satisfies.
//
// The value set is closed: Int, Str, Bool, List, Null, *Function and the
// internal *Variable are the only implementations, and the parser's dispatch
// table (parse.go) is the only producer. Literals run to themselves; compound
// nodes drive computation. All values are immutable once constructed — List
// operations copy, Str is a Go string, and a Function's operands are fixed at
// parse time — so values can be shared and re-run freely.
package knight

// Value is the single interface shared by every object a program can denote
// or compute. Conversions follow the language's coercion tables; Compare and
// the conversions raise a runtime failure (via fail) where the language
// leaves them undefined, e.g. comparing Null or converting a block.
type Value interface {
	// Run evaluates the value. Literals return themselves; a Variable looks
	// itself up; a Function applies its operator.
	Run(ip *Interpreter) Value

	// Number converts to an integer.
	Number() int64
	// Truthy converts to a boolean.
	Truthy() bool
	// String converts to text (also satisfies fmt.Stringer).
	String() string
	// List converts to an ordered sequence.
	List() []Value

	// Dump renders the value for debugging output (the D operator).
	Dump() string

	// Equal is strict: true only for the same variant with the same content.
	Equal(other Value) bool
	// Compare returns <0, 0 or >0 against other, coercing other to the
	// receiver's kind. It fails where the ordering is undefined.
	Compare(other Value) int
}

// typeName names a value's variant for diagnostics.
func typeName(v Value) string {
	switch v.(type) {
	case Int:
		return "Int"
	case Str:
		return "Str"
	case Bool:
		return "Bool"
	case List:
		return "List"
	case Null:
		return "Null"
	case *Function:
		return "Block"
	case *Variable:
		return "Variable"
	default:
		return "unknown"
	}
}
