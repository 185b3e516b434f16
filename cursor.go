// cursor.go: positional view over program text used by the parser probes.
//
// The cursor owns all position bookkeeping: a byte offset plus a 1-based line
// and 0-based column, updated only through advance/Take/Match so diagnostics
// always agree with what was consumed. Probes recognize their form with
// anchored patterns (Match) or single-byte inspection (Peek/Take); between
// values SkipSoft elides everything the grammar treats as air: whitespace,
// '#' comments to end of line, and the soft punctuation '(', ')' and ':'.
package knight

import "regexp"

// Cursor walks source text left to right. It never backs up: a probe either
// consumes a full match or leaves the cursor untouched.
type Cursor struct {
	src  string
	pos  int
	line int // 1-based
	col  int // 0-based column within line
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, line: 1, col: 0}
}

// EOF reports whether the cursor has consumed all input.
func (c *Cursor) EOF() bool { return c.pos >= len(c.src) }

// Peek returns the byte at the cursor without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.src[c.pos], true
}

// Take consumes and returns the byte at the cursor.
func (c *Cursor) Take() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	ch := c.src[c.pos]
	c.advance(1)
	return ch, true
}

// Match probes the text at the cursor with an anchored pattern (the pattern
// must begin with "^"). On a hit the cursor advances past the whole match and
// Match returns the first capture group when the pattern has one, otherwise
// the full match. On a miss the cursor does not move.
func (c *Cursor) Match(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringSubmatchIndex(c.src[c.pos:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	out := c.src[c.pos+loc[0] : c.pos+loc[1]]
	if len(loc) > 2 && loc[2] >= 0 {
		out = c.src[c.pos+loc[2] : c.pos+loc[3]]
	}
	c.advance(loc[1])
	return out, true
}

// SkipSoft consumes the inter-token material: whitespace, '#' comments that
// run to end of line, and the soft punctuation '(', ')' and ':' which the
// grammar permits anywhere between values and ignores.
func (c *Cursor) SkipSoft() {
	for !c.EOF() {
		switch c.src[c.pos] {
		case ' ', '\t', '\r', '\n', '(', ')', ':':
			c.advance(1)
		case '#':
			for !c.EOF() && c.src[c.pos] != '\n' {
				c.advance(1)
			}
		default:
			return
		}
	}
}

// Pos returns the current 1-based line and 0-based column.
func (c *Cursor) Pos() (line, col int) { return c.line, c.col }

// advance consumes n bytes, keeping line/col in step.
func (c *Cursor) advance(n int) {
	for i := 0; i < n && c.pos < len(c.src); i++ {
		if c.src[c.pos] == '\n' {
			c.line++
			c.col = 0
		} else {
			c.col++
		}
		c.pos++
	}
}
