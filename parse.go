// parse.go: token dispatch — source text in, one value tree out.
//
// The grammar is a single prefix-notation expression, so the whole parser is
// an ordered probe table: each variant contributes one recognizer (defined
// next to the variant it produces), the first probe that matches at the
// cursor wins, and a cursor position where nothing matches is the parse
// failure "no value found". The table is fixed at startup; there is no
// runtime registration.
package knight

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Parse reads exactly one value from the start of src, leaving any trailing
// text unread (the language defines a program as its first expression). The
// error, when non-nil, is a *Error of parse class.
func Parse(src string) (Value, error) {
	p := &parser{cur: NewCursor(src)}
	return p.parseValue()
}

//// END_OF_PUBLIC

// Probe order mirrors the literal table: numbers, strings, booleans, null,
// the empty-list literal, variables, then operators. Bool and Null must run
// before the operator probe or T/F/N would read as unknown word operators.
//
// Populated in init rather than declared inline: probeFunction reads the
// operator table, whose EVAL entry calls Parse, which reads this slice —
// an initializer expression here would close that loop into an
// initialization cycle.
var probes []func(*parser) (Value, error)

func init() {
	probes = []func(*parser) (Value, error){
		probeInt,
		probeStr,
		probeBool,
		probeNull,
		probeList,
		probeVariable,
		probeFunction,
	}
}

type parser struct {
	cur *Cursor
}

// parseValue skips soft material, then tries each probe in order. A probe
// returns (nil, nil) when its form is not present at the cursor.
func (p *parser) parseValue() (Value, error) {
	p.cur.SkipSoft()
	line, col := p.cur.Pos()
	if p.cur.EOF() {
		return nil, &Error{Kind: DiagIncomplete, Line: line, Col: col, Msg: "unexpected end of input"}
	}
	for _, probe := range probes {
		v, err := probe(p)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	ch, _ := p.cur.Peek()
	return nil, &Error{Kind: DiagParse, Line: line, Col: col, Msg: fmt.Sprintf("no value found (unexpected %q)", ch)}
}
