// Package voltsql provides an embeddable SQL front-end: a tokenizer, a
// Pratt-style recursive-descent parser, and a small Volcano-model
// execution skeleton over in-memory tables.
//
// Basic usage:
//
//	stmts, err := voltsql.Parse("SELECT a, b FROM t WHERE a > 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(voltsql.String(stmts.Items[0]))
//
// Walking the AST:
//
//	voltsql.Walk(stmts.Items[0], func(node ast.Node) bool {
//	    if id, ok := node.(*ast.SingleIdent); ok {
//	        fmt.Println("found identifier", id.Name)
//	    }
//	    return true
//	})
package voltsql

import (
	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/format"
	"github.com/voltsql/voltsql/lexer"
	"github.com/voltsql/voltsql/parser"
	"github.com/voltsql/voltsql/visitor"
)

// Tokenize lexes sql in full, returning the located token stream or the
// first TokenizeError encountered.
func Tokenize(sql string) (*lexer.ParsedTokens, error) {
	return lexer.Tokenize(sql)
}

// Parse tokenizes and parses sql, returning every statement it contains.
func Parse(sql string) (*ast.Statements, error) {
	return parser.Parse(sql)
}

// String formats an AST node back to canonical SQL text (spec §6).
func String(node ast.Node) string {
	return format.String(node)
}

// Walk traverses the AST calling fn for each node; fn returning false
// skips that node's children.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Rewrite traverses the AST in post-order, allowing node replacement.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// Node, Statement, and Expr re-export the ast package's core interfaces
// for convenience at the library's top level.
type (
	Node      = ast.Node
	Statement = ast.Statement
	Expr      = ast.Expr
)
