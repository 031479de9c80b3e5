// Package ast defines the typed tree produced by the parser: statements,
// expressions, identifiers, and literals, each carrying a source Location.
package ast

import "github.com/voltsql/voltsql/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// Statement is a top-level parsed construct: Select, Empty, or one of the
// recognized-but-unexecuted statement shapes (InsertStmt, UpdateStmt, ...).
type Statement interface {
	Node
	statementNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// SelectItem is one entry in a SELECT's projection list.
type SelectItem interface {
	Node
	selectItemNode()
}

// Identifier is a (possibly qualified, possibly wildcard) name reference.
type Identifier interface {
	Expr
	identifierNode()
}

// Statements is the result of parsing: the statement list plus the
// original source text, retained so later error rendering can reproduce
// the exact "near" snippet.
type Statements struct {
	Items  []Statement
	RawSQL string
}

// Pos and End span the first through the last statement; both are the
// zero Pos when there are no statements.
func (s *Statements) Pos() token.Pos {
	if len(s.Items) == 0 {
		return token.Pos{}
	}
	return s.Items[0].Pos()
}

func (s *Statements) End() token.Pos {
	if len(s.Items) == 0 {
		return token.Pos{}
	}
	return s.Items[len(s.Items)-1].End()
}
