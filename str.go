package knight

import (
	"regexp"
	"strings"
)

// Str is the text variant. Indexing and length are rune-based.
type Str string

var (
	singleQuoted = regexp.MustCompile(`^'([^']*)'`)
	doubleQuoted = regexp.MustCompile(`^"([^"]*)"`)
)

// probeStr recognizes a string literal: a matching pair of single or double
// quotes with no escape sequences, spanning newlines freely. A quote with no
// partner before end of input is an incomplete-parse failure.
func probeStr(p *parser) (Value, error) {
	quote, ok := p.cur.Peek()
	if !ok || (quote != '\'' && quote != '"') {
		return nil, nil
	}
	line, col := p.cur.Pos()
	pat := singleQuoted
	if quote == '"' {
		pat = doubleQuoted
	}
	body, ok := p.cur.Match(pat)
	if !ok {
		return nil, &Error{Kind: DiagIncomplete, Line: line, Col: col, Msg: "unterminated string"}
	}
	return Str(body), nil
}

func (s Str) Run(*Interpreter) Value { return s }

// Number scans an optional run of leading whitespace, an optional sign and
// then digits; anything else (including the empty string) converts to 0.
func (s Str) Number() int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

func (s Str) Truthy() bool   { return len(s) > 0 }
func (s Str) String() string { return string(s) }

// List yields the characters as one-character strings.
func (s Str) List() []Value {
	out := make([]Value, 0, len(s))
	for _, r := range s {
		out = append(out, Str(r))
	}
	return out
}

func (s Str) Dump() string { return quoteString(string(s)) }

func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	return ok && s == o
}

func (s Str) Compare(other Value) int {
	return strings.Compare(string(s), other.String())
}

func (s Str) runes() []rune { return []rune(string(s)) }

// quoteString renders s inside double quotes with the dump escape set.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
