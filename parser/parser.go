// Package parser implements a Pratt/precedence-climbing recursive-descent
// parser over a located token stream, producing an ast.Statements tree.
package parser

import (
	"fmt"
	"sync"

	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/lexer"
	"github.com/voltsql/voltsql/token"
)

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Parser holds an index into a token slice and the raw source, for error
// rendering.
type Parser struct {
	tokens []token.Token
	pos    int
	rawSQL string
}

// Get returns a Parser from the pool, reset over tokens.
func Get(tokens *lexer.ParsedTokens) *Parser {
	p := parserPool.Get().(*Parser)
	p.tokens = tokens.Tokens
	p.pos = 0
	p.rawSQL = tokens.RawSQL
	return p
}

// Put returns p to the pool. p must not be used afterward.
func Put(p *Parser) {
	p.tokens = nil
	p.pos = 0
	p.rawSQL = ""
	parserPool.Put(p)
}

// Parse tokenizes and parses sql in one call.
func Parse(sql string) (*ast.Statements, error) {
	toks, err := lexer.Tokenize(sql)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses an already-tokenized input.
func ParseTokens(toks *lexer.ParsedTokens) (*ast.Statements, error) {
	p := Get(toks)
	defer Put(p)
	return p.parseStatements()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) curIsKeyword(kw token.Keyword) bool {
	t := p.cur()
	return t.Kind == token.KEYWORD && t.Keyword == kw
}

func (p *Parser) curIs(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) errorf(loc token.Pos, format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Loc: loc, RawSQL: p.rawSQL}
}

func (p *Parser) expectKeyword(kw token.Keyword) (token.Token, error) {
	if !p.curIsKeyword(kw) {
		return token.Token{}, p.errorf(p.cur().Pos, "expected %s", kw)
	}
	return p.advance(), nil
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.curIs(k) {
		return token.Token{}, p.errorf(p.cur().Pos, "expected %s", k)
	}
	return p.advance(), nil
}

// parseStatements drives the top-level statement loop (SPEC_FULL.md §4.3,
// unchanged from spec.md).
func (p *Parser) parseStatements() (*ast.Statements, error) {
	var items []ast.Statement
	for p.cur().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		items = append(items, stmt)
		if p.curIs(token.SEMI) {
			p.advance()
		}
	}
	return &ast.Statements{Items: items, RawSQL: p.rawSQL}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	cur := p.cur()

	if cur.Kind == token.SEMI {
		loc := cur.Pos
		p.advance()
		return &ast.Empty{StartPos: loc, EndPos: loc}, nil
	}

	if cur.Kind == token.KEYWORD {
		switch cur.Keyword {
		case token.SELECT:
			return p.parseSelect()
		case token.INSERT, token.UPDATE, token.DELETE, token.CREATE, token.DROP:
			return nil, p.errorf(cur.Pos, "statement kind not supported: %s", cur.Keyword)
		}
	}

	return nil, p.errorf(cur.Pos, "invalid statement")
}
