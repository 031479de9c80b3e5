// Package lexer turns raw SQL text into a sequence of located tokens.
package lexer

import (
	"fmt"
	"math"
	"sync"

	"github.com/voltsql/voltsql/token"
)

// ParsedTokens is the tokenizer's output: the located token stream plus the
// original source, retained so errors downstream (in the parser) can
// render their "near" snippet against the same text.
type ParsedTokens struct {
	Tokens []token.Token
	RawSQL string
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// Lexer drives a scanner over the input and produces tokens one at a time.
// Obtain one from the pool with Get and return it with Put; this mirrors
// the teacher's allocation-reuse pattern for hot-path parsing.
type Lexer struct {
	s      *scanner
	rawSQL string
}

// Get returns a Lexer from the pool, reset over sql.
func Get(sql string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.s = newScanner(sql)
	l.rawSQL = sql
	return l
}

// Put returns l to the pool. l must not be used afterward.
func Put(l *Lexer) {
	l.s = nil
	l.rawSQL = ""
	lexerPool.Put(l)
}

// Tokenize lexes sql in full and returns the resulting token stream, or the
// first TokenizeError encountered. There is no error recovery.
func Tokenize(sql string) (*ParsedTokens, error) {
	l := Get(sql)
	defer Put(l)

	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &ParsedTokens{Tokens: tokens, RawSQL: sql}, nil
}

func (l *Lexer) errorf(loc token.Pos, format string, args ...any) error {
	return &TokenizeError{Message: fmt.Sprintf(format, args...), Loc: loc, RawSQL: l.rawSQL}
}

// next scans and returns the next token, or a TokenizeError.
func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespace()
	loc := l.s.location()

	c, ok := l.s.peek()
	if !ok {
		return token.Token{Kind: token.EOF, Pos: loc}, nil
	}

	switch {
	case isIdentStart(c):
		return l.scanIdentOrKeyword(loc)
	case c == '\'':
		return l.scanString(loc)
	case isDigit(c):
		return l.scanNumber(loc)
	case c == '=' || c == ';' || c == '.' || c == ',' || c == '+' || c == '-' || c == '*' || c == '/' || c == '(' || c == ')':
		l.s.next()
		return token.Token{Kind: singleCharKind(c), Pos: loc}, nil
	case c == '<':
		return l.scanLess(loc)
	case c == '>':
		return l.scanGreater(loc)
	case c == '!':
		return l.scanBang(loc)
	default:
		l.s.next()
		return token.Token{}, l.errorf(loc, "unknown char %c", c)
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		c, ok := l.s.peek()
		if !ok {
			return
		}
		if c == ' ' || c == '\r' || c == '\n' || c == '\t' {
			l.s.next()
			continue
		}
		return
	}
}

func singleCharKind(c rune) token.Kind {
	switch c {
	case '=':
		return token.EQ
	case ';':
		return token.SEMI
	case '.':
		return token.DOT
	case ',':
		return token.COMMA
	case '+':
		return token.PLUS
	case '-':
		return token.MINUS
	case '*':
		return token.STAR
	case '/':
		return token.SLASH
	case '(':
		return token.LPAREN
	case ')':
		return token.RPAREN
	default:
		return token.ILLEGAL
	}
}

func (l *Lexer) scanLess(loc token.Pos) (token.Token, error) {
	l.s.next() // consume '<'
	if c, ok := l.s.peek(); ok {
		if c == '=' {
			l.s.next()
			return token.Token{Kind: token.LE, Pos: loc}, nil
		}
		if c == '>' {
			l.s.next()
			return token.Token{Kind: token.NEQ, Pos: loc}, nil
		}
	}
	return token.Token{Kind: token.LT, Pos: loc}, nil
}

func (l *Lexer) scanGreater(loc token.Pos) (token.Token, error) {
	l.s.next() // consume '>'
	if c, ok := l.s.peek(); ok && c == '=' {
		l.s.next()
		return token.Token{Kind: token.GE, Pos: loc}, nil
	}
	return token.Token{Kind: token.GT, Pos: loc}, nil
}

func (l *Lexer) scanBang(loc token.Pos) (token.Token, error) {
	l.s.next() // consume '!'
	if c, ok := l.s.peek(); ok && c == '=' {
		l.s.next()
		return token.Token{Kind: token.NEQ, Pos: loc}, nil
	}
	return token.Token{}, l.errorf(loc, "unknown char !")
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) scanIdentOrKeyword(loc token.Pos) (token.Token, error) {
	var sb []rune
	for {
		c, ok := l.s.peek()
		if !ok || !isIdentChar(c) {
			break
		}
		l.s.next()
		sb = append(sb, c)
	}
	word := string(sb)
	if kw, ok := token.LookupKeyword(word); ok {
		return token.Token{Kind: token.KEYWORD, Keyword: kw, Value: word, Pos: loc}, nil
	}
	return token.Token{Kind: token.IDENT, Value: word, Pos: loc}, nil
}

// scanNumber assembles an IntegerLiteral(leading_zeros, value?) per
// SPEC_FULL.md §4.2 / original_source's next_number.
func (l *Lexer) scanNumber(loc token.Pos) (token.Token, error) {
	var zeros uint16
	var value uint64
	haveValue := false

	for {
		c, ok := l.s.peek()
		if !ok || !isDigit(c) {
			break
		}
		l.s.next()
		d := uint64(c - '0')
		if d == 0 && !haveValue {
			if zeros == math.MaxUint16 {
				return token.Token{}, l.errorf(loc, "too many zeros")
			}
			zeros++
			continue
		}
		if !haveValue {
			value = d
			haveValue = true
			continue
		}
		if value > (math.MaxUint64-d)/10 {
			return token.Token{}, l.errorf(loc, "too large number")
		}
		value = value*10 + d
	}

	return token.Token{Kind: token.INTEGER, Zeros: zeros, HasNum: haveValue, Num: value, Pos: loc}, nil
}

// scanString implements §4.2's string-literal rules exactly: escapes,
// doubled-quote escaping, and the terminator lookahead.
func (l *Lexer) scanString(loc token.Pos) (token.Token, error) {
	l.s.next() // consume opening '
	var sb []rune
	for {
		c, ok := l.s.next()
		if !ok {
			return token.Token{}, l.errorf(loc, "unexpected end of input in string literal")
		}
		switch c {
		case '\\':
			e, ok := l.s.next()
			if !ok {
				return token.Token{}, l.errorf(loc, "unexpected end of input in string literal")
			}
			decoded, ok := decodeEscape(e)
			if !ok {
				return token.Token{}, l.errorf(loc, "unknown escape char %c", e)
			}
			sb = append(sb, decoded)
		case '\r', '\n':
			return token.Token{}, l.errorf(loc, "unexpected newline in string literal")
		case '\'':
			n, ok := l.s.peek()
			if ok && n == '\'' {
				l.s.next()
				sb = append(sb, '\'')
				continue
			}
			if !ok {
				return token.Token{Kind: token.STRING_LITERAL, Value: string(sb), Pos: loc}, nil
			}
			if isStringTerminatorFollow(n) {
				return token.Token{Kind: token.STRING_LITERAL, Value: string(sb), Pos: loc}, nil
			}
			if isWhitespace(n) {
				l.s.next()
				return token.Token{Kind: token.STRING_LITERAL, Value: string(sb), Pos: loc}, nil
			}
			return token.Token{}, l.errorf(loc, "unexpected char %c after text %s", n, string(sb))
		default:
			sb = append(sb, c)
		}
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}

func isStringTerminatorFollow(c rune) bool {
	switch c {
	case ';', '=', '>', '<', ',', '.':
		return true
	default:
		return false
	}
}

func decodeEscape(c rune) (rune, bool) {
	switch c {
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}
