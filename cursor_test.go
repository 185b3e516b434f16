package knight

import (
	"regexp"
	"testing"
)

var wordPattern = regexp.MustCompile(`^[a-z]+`)

func Test_Cursor_Match_Advances_On_Hit_Only(t *testing.T) {
	c := NewCursor("abc 123")
	got, ok := c.Match(wordPattern)
	if !ok || got != "abc" {
		t.Fatalf("want abc, got %q ok=%v", got, ok)
	}
	// no match: position must not move
	if _, ok := c.Match(wordPattern); ok {
		t.Fatalf("matched at a space")
	}
	if ch, _ := c.Peek(); ch != ' ' {
		t.Fatalf("cursor moved on failed match, at %q", ch)
	}
}

func Test_Cursor_Match_Returns_Capture_Group(t *testing.T) {
	c := NewCursor("TRUE_X rest")
	got, ok := c.Match(boolPattern)
	if !ok || got != "T" {
		t.Fatalf("want capture T, got %q ok=%v", got, ok)
	}
	// the whole match was consumed, not just the capture
	if ch, _ := c.Peek(); ch != ' ' {
		t.Fatalf("noise not consumed, at %q", ch)
	}
}

func Test_Cursor_SkipSoft_Elides_Air(t *testing.T) {
	c := NewCursor("  \t\n ( : ) # comment\n  x")
	c.SkipSoft()
	if ch, _ := c.Peek(); ch != 'x' {
		t.Fatalf("want x, at %q", ch)
	}
}

func Test_Cursor_SkipSoft_Stops_At_EOF(t *testing.T) {
	c := NewCursor("# only a comment")
	c.SkipSoft()
	if !c.EOF() {
		t.Fatalf("want EOF")
	}
}

func Test_Cursor_Tracks_Line_And_Column(t *testing.T) {
	c := NewCursor("ab\ncd")
	c.Take()
	c.Take()
	if line, col := c.Pos(); line != 1 || col != 2 {
		t.Fatalf("want 1:2, got %d:%d", line, col)
	}
	c.Take() // newline
	if line, col := c.Pos(); line != 2 || col != 0 {
		t.Fatalf("want 2:0, got %d:%d", line, col)
	}
}

func Test_Cursor_Match_Counts_Lines_Inside_Match(t *testing.T) {
	c := NewCursor("'a\nb' rest")
	if _, ok := c.Match(singleQuoted); !ok {
		t.Fatalf("string did not match")
	}
	if line, col := c.Pos(); line != 2 || col != 2 {
		t.Fatalf("want 2:2 after multi-line match, got %d:%d", line, col)
	}
}

func Test_Cursor_Take_At_EOF(t *testing.T) {
	c := NewCursor("")
	if _, ok := c.Take(); ok {
		t.Fatalf("Take at EOF reported ok")
	}
	if _, ok := c.Peek(); ok {
		t.Fatalf("Peek at EOF reported ok")
	}
}
