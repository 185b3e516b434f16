package knight

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) Value {
	t.Helper()
	v, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return v
}

func parseErr(t *testing.T, src string) *Error {
	t.Helper()
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q): want error, got none", src)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("Parse(%q): want *Error, got %T", src, err)
	}
	return e
}

// --- literal forms -----------------------------------------------------------

func Test_Parser_Integer_Literal(t *testing.T) {
	wantInt(t, mustParse(t, "123"), 123)
	wantInt(t, mustParse(t, "0"), 0)
}

func Test_Parser_String_Literals_Both_Quotes(t *testing.T) {
	wantStr(t, mustParse(t, `'hello'`), "hello")
	wantStr(t, mustParse(t, `"hello"`), "hello")
	wantStr(t, mustParse(t, `''`), "")
}

func Test_Parser_String_Spans_Newlines_Without_Escapes(t *testing.T) {
	wantStr(t, mustParse(t, "'a\nb'"), "a\nb")
	// no escape sequences: backslash is a plain character
	wantStr(t, mustParse(t, `'a\nb'`), `a\nb`)
	// the other quote kind is plain content
	wantStr(t, mustParse(t, `"it's"`), "it's")
}

func Test_Parser_Unterminated_String_Is_Incomplete_Parse_Error(t *testing.T) {
	e := parseErr(t, `"abc`)
	if e.Kind != DiagIncomplete {
		t.Fatalf("want DiagIncomplete, got kind=%v msg=%q", e.Kind, e.Msg)
	}
	if !strings.Contains(e.Msg, "unterminated string") {
		t.Fatalf("unexpected message %q", e.Msg)
	}
	if !IsIncomplete(e) || !IsParseError(e) {
		t.Fatalf("classification helpers disagree: %v", e)
	}
}

func Test_Parser_Bool_And_Null_Consume_Keyword_Noise(t *testing.T) {
	wantBool(t, mustParse(t, "T"), true)
	wantBool(t, mustParse(t, "TRUE"), true)
	wantBool(t, mustParse(t, "F"), false)
	wantBool(t, mustParse(t, "FALSE_BRANCH"), false)
	wantNull(t, mustParse(t, "N"))
	wantNull(t, mustParse(t, "NULL"))
}

func Test_Parser_Empty_List_Literal(t *testing.T) {
	wantList(t, mustParse(t, "@"))
}

func Test_Parser_Variable_Names(t *testing.T) {
	v, ok := mustParse(t, "foo_bar2").(*Variable)
	if !ok || v.Name() != "foo_bar2" {
		t.Fatalf("want variable foo_bar2, got %#v", v)
	}
	v, ok = mustParse(t, "_x").(*Variable)
	if !ok || v.Name() != "_x" {
		t.Fatalf("want variable _x, got %#v", v)
	}
}

// --- soft material -----------------------------------------------------------

func Test_Parser_Skips_Whitespace_Comments_And_Soft_Punctuation(t *testing.T) {
	wantInt(t, mustParse(t, "   \t\n 42"), 42)
	wantInt(t, mustParse(t, "# leading comment\n42"), 42)
	wantInt(t, mustParse(t, "(((42)))"), 42)
	wantInt(t, mustParse(t, ": 42"), 42)
}

func Test_Parser_Comment_Inside_Expression(t *testing.T) {
	wantInt(t, evalSrc(t, "+ 1 # add\n 2"), 3)
}

// --- operators ---------------------------------------------------------------

func Test_Parser_Word_Operator_Reads_As_First_Letter(t *testing.T) {
	a := mustParse(t, "OUTPUT 'x'").(*Function)
	b := mustParse(t, "O 'x'").(*Function)
	if a.op != b.op {
		t.Fatalf("OUTPUT and O resolved to different operators")
	}
	if a.op.name != "OUTPUT" {
		t.Fatalf("want OUTPUT, got %q", a.op.name)
	}
}

func Test_Parser_Symbol_Operator_Consumes_One_Byte(t *testing.T) {
	f := mustParse(t, "+1 2").(*Function)
	if f.op.name != "+" || len(f.args) != 2 {
		t.Fatalf("want + with 2 args, got %q with %d", f.op.name, len(f.args))
	}
}

func Test_Parser_Unknown_Word_Operator(t *testing.T) {
	e := parseErr(t, "X 1")
	if e.Kind != DiagParse || !strings.Contains(e.Msg, "unknown function") {
		t.Fatalf("want unknown function error, got %v", e)
	}
}

func Test_Parser_Missing_Operand_Names_Operator(t *testing.T) {
	e := parseErr(t, "+ 1")
	if e.Kind != DiagIncomplete {
		t.Fatalf("want DiagIncomplete, got %v", e)
	}
	if !strings.Contains(e.Msg, "missing argument 2 for +") {
		t.Fatalf("unexpected message %q", e.Msg)
	}

	e = parseErr(t, "IF T 1")
	if !strings.Contains(e.Msg, "missing argument 3 for IF") {
		t.Fatalf("unexpected message %q", e.Msg)
	}
}

func Test_Parser_Empty_Source_Is_Incomplete(t *testing.T) {
	e := parseErr(t, "")
	if e.Kind != DiagIncomplete || !strings.Contains(e.Msg, "unexpected end of input") {
		t.Fatalf("want incomplete end-of-input, got %v", e)
	}
	e = parseErr(t, "  # just a comment")
	if e.Kind != DiagIncomplete {
		t.Fatalf("want incomplete for comment-only source, got %v", e)
	}
}

func Test_Parser_No_Value_At_Unknown_Byte(t *testing.T) {
	e := parseErr(t, "$")
	if e.Kind != DiagParse || !strings.Contains(e.Msg, "no value found") {
		t.Fatalf("want no-value error, got %v", e)
	}
	if e.Line != 1 || e.Col != 0 {
		t.Fatalf("want position 1:0, got %d:%d", e.Line, e.Col)
	}
}

func Test_Parser_Error_Position_On_Later_Line(t *testing.T) {
	e := parseErr(t, "+ 1\n $")
	if e.Line != 2 || e.Col != 1 {
		t.Fatalf("want position 2:1, got %d:%d (%v)", e.Line, e.Col, e)
	}
}

func Test_Parser_Operands_Captured_Unevaluated(t *testing.T) {
	f := mustParse(t, "= a / 1 0").(*Function)
	if f.op.name != "=" {
		t.Fatalf("want =, got %q", f.op.name)
	}
	if _, ok := f.args[0].(*Variable); !ok {
		t.Fatalf("want variable target, got %#v", f.args[0])
	}
	if inner, ok := f.args[1].(*Function); !ok || inner.op.name != "/" {
		t.Fatalf("want deferred / node, got %#v", f.args[1])
	}
}
