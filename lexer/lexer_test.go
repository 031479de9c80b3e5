package lexer

import (
	"testing"

	"github.com/voltsql/voltsql/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	pt, err := Tokenize("SELECT * FROM users WHERE id = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{
		token.KEYWORD, token.STAR, token.KEYWORD, token.IDENT, token.KEYWORD,
		token.IDENT, token.EQ, token.INTEGER, token.EOF,
	}
	got := kinds(pt.Tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestOffsetMonotonic is spec §8's law: offsets strictly non-decreasing.
func TestOffsetMonotonic(t *testing.T) {
	pt, err := Tokenize("SELECT\n  a,\r\nb  FROM\rt WHERE a > 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := -1
	for i, tok := range pt.Tokens {
		if tok.Pos.Offset < prev {
			t.Fatalf("token %d: offset %d < previous %d", i, tok.Pos.Offset, prev)
		}
		prev = tok.Pos.Offset
	}
}

func TestIdentifierPreservesCase(t *testing.T) {
	pt, err := Tokenize("SELECT FooBar FROM t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.Tokens[1].Kind != token.IDENT || pt.Tokens[1].Value != "FooBar" {
		t.Errorf("got %+v, want IDENT FooBar", pt.Tokens[1])
	}
}

func TestIntegerLeadingZeros(t *testing.T) {
	tests := []struct {
		input      string
		wantZeros  uint16
		wantHasNum bool
		wantNum    uint64
	}{
		{"123", 0, true, 123},
		{"007", 2, true, 7},
		{"000", 3, false, 0},
		{"0", 1, false, 0},
	}
	for _, tt := range tests {
		pt, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		tok := pt.Tokens[0]
		if tok.Kind != token.INTEGER {
			t.Fatalf("%q: expected INTEGER, got %v", tt.input, tok.Kind)
		}
		if tok.Zeros != tt.wantZeros || tok.HasNum != tt.wantHasNum || (tt.wantHasNum && tok.Num != tt.wantNum) {
			t.Errorf("%q: got zeros=%d hasNum=%v num=%d, want zeros=%d hasNum=%v num=%d",
				tt.input, tok.Zeros, tok.HasNum, tok.Num, tt.wantZeros, tt.wantHasNum, tt.wantNum)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	_, err := Tokenize("99999999999999999999")
	if err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`'hello'`, "hello"},
		{`'it''s'`, "it's"},
		{`'line\n'`, "line\n"},
		{`'tab\t'`, "tab\t"},
		{`'back\\slash'`, `back\slash`},
	}
	for _, tt := range tests {
		pt, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		tok := pt.Tokens[0]
		if tok.Kind != token.STRING_LITERAL {
			t.Fatalf("%q: expected STRING_LITERAL, got %v", tt.input, tok.Kind)
		}
		if tok.Value != tt.want {
			t.Errorf("%q: got %q, want %q", tt.input, tok.Value, tt.want)
		}
	}
}

func TestStringLiteralNewlineError(t *testing.T) {
	if _, err := Tokenize("'abc\ndef'"); err == nil {
		t.Fatal("expected error for raw newline in string literal")
	}
}

func TestStringLiteralUnterminated(t *testing.T) {
	if _, err := Tokenize("'abc"); err == nil {
		t.Fatal("expected error for unterminated string literal")
	}
}

// TestUnknownCharError reproduces spec §8 scenario 10 exactly.
func TestUnknownCharError(t *testing.T) {
	_, err := Tokenize("SELECT 1, @a FROM stu WHERE a > 1;")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `error unknown char @ as Ln 1, Col 11 near "SELECT 1, @a FROM stu WHERE a > "`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestLineBreakHandling(t *testing.T) {
	tests := []struct {
		input    string
		wantLine int
		wantCol  int
	}{
		{"a\nb", 2, 1},
		{"a\r\nb", 2, 1},
		{"a\rb", 2, 1},
		{"a\n\nb", 3, 1},
	}
	for _, tt := range tests {
		pt, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		// second token is the identifier "b"
		tok := pt.Tokens[1]
		if tok.Pos.Line != tt.wantLine || tok.Pos.Column != tt.wantCol {
			t.Errorf("%q: got Ln %d Col %d, want Ln %d Col %d", tt.input, tok.Pos.Line, tok.Pos.Column, tt.wantLine, tt.wantCol)
		}
	}
}

func TestBangRequiresEquals(t *testing.T) {
	if _, err := Tokenize("a ! b"); err == nil {
		t.Fatal("expected error for bare '!'")
	}
	pt, err := Tokenize("a != b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.Tokens[1].Kind != token.NEQ {
		t.Errorf("got %v, want NEQ", pt.Tokens[1].Kind)
	}
}

func TestLessGreaterDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"<", token.LT},
		{"<=", token.LE},
		{"<>", token.NEQ},
		{">", token.GT},
		{">=", token.GE},
	}
	for _, tt := range tests {
		pt, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if pt.Tokens[0].Kind != tt.want {
			t.Errorf("%q: got %v, want %v", tt.input, pt.Tokens[0].Kind, tt.want)
		}
	}
}

func TestPoolRoundTrip(t *testing.T) {
	l := Get("SELECT 1")
	defer Put(l)
	tok, err := l.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.KEYWORD || tok.Keyword != token.SELECT {
		t.Errorf("got %+v, want SELECT keyword", tok)
	}
}
