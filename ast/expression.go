package ast

import (
	"fmt"
	"strings"

	"github.com/voltsql/voltsql/token"
)

// BinaryOperator enumerates the binary operators and their priorities, per
// SPEC_FULL.md §3 (ties break left-associative; higher binds tighter).
type BinaryOperator int

const (
	OpOr BinaryOperator = iota
	OpAnd
	OpEq
	OpNeq
	OpGt
	OpLt
	OpGe
	OpLe
	OpPlus
	OpMinus
	OpMul
	OpDiv
)

// Priority returns the operator's binding priority from the table in
// SPEC_FULL.md §3.
func (op BinaryOperator) Priority() int {
	switch op {
	case OpOr:
		return 10
	case OpAnd:
		return 15
	case OpEq:
		return 100
	case OpNeq:
		return 105
	case OpGt, OpLt, OpGe, OpLe:
		return 110
	case OpPlus, OpMinus:
		return 1000
	case OpMul, OpDiv:
		return 1010
	default:
		return 0
	}
}

func (op BinaryOperator) String() string {
	switch op {
	case OpOr:
		return "OR"
	case OpAnd:
		return "AND"
	case OpEq:
		return "="
	case OpNeq:
		return "<>"
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGe:
		return ">="
	case OpLe:
		return "<="
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// UnaryOperator enumerates the prefix unary operators, which bind tighter
// than any binary operator.
type UnaryOperator int

const (
	UnaryPlus UnaryOperator = iota
	UnaryMinus
	UnaryNot
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryNot:
		return "NOT"
	default:
		return "?"
	}
}

// BinaryExpr is a binary operator expression.
type BinaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Left     Expr
	Op       BinaryOperator
	Right    Expr
}

func (*BinaryExpr) exprNode()        {}
func (b *BinaryExpr) Pos() token.Pos { return b.StartPos }
func (b *BinaryExpr) End() token.Pos { return b.EndPos }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(b.Left), b.Op, exprString(b.Right))
}

// UnaryExpr is a prefix unary operator expression.
type UnaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Op       UnaryOperator
	Operand  Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) Pos() token.Pos { return u.StartPos }
func (u *UnaryExpr) End() token.Pos { return u.EndPos }
func (u *UnaryExpr) String() string {
	if u.Op == UnaryNot {
		return "NOT " + exprString(u.Operand)
	}
	return fmt.Sprintf("%s%s", u.Op, exprString(u.Operand))
}

// FunctionCall is a named function invocation, e.g. foo(1, a+b).
// Distinct is set when DISTINCT appears as the first argument-list token
// (SPEC_FULL.md §4.3 DOMAIN extension).
type FunctionCall struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Distinct bool
	Args     []Expr
}

func (*FunctionCall) exprNode()        {}
func (f *FunctionCall) Pos() token.Pos { return f.StartPos }
func (f *FunctionCall) End() token.Pos { return f.EndPos }
func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = exprString(a)
	}
	distinct := ""
	if f.Distinct {
		distinct = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)", f.Name, distinct, strings.Join(parts, ", "))
}

// SubQueryExpr wraps a nested Select used in expression position (e.g. a
// scalar subquery, or an IN (...) subquery). It embeds the Select by
// value: the AST is a strict tree, never cyclic.
type SubQueryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Select   Select
}

func (*SubQueryExpr) exprNode()        {}
func (s *SubQueryExpr) Pos() token.Pos { return s.StartPos }
func (s *SubQueryExpr) End() token.Pos { return s.EndPos }
func (s *SubQueryExpr) String() string { return "(" + s.Select.String() + ")" }

// InExpr is "expr [NOT] IN (expr, ...)" — SPEC_FULL.md §3 DOMAIN extension.
type InExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr
	Not      bool
	List     []Expr
}

func (*InExpr) exprNode()        {}
func (i *InExpr) Pos() token.Pos { return i.StartPos }
func (i *InExpr) End() token.Pos { return i.EndPos }
func (i *InExpr) String() string {
	parts := make([]string, len(i.List))
	for idx, e := range i.List {
		parts[idx] = exprString(e)
	}
	not := ""
	if i.Not {
		not = "NOT "
	}
	return fmt.Sprintf("%s %sIN (%s)", exprString(i.Operand), not, strings.Join(parts, ", "))
}

// BetweenExpr is "expr [NOT] BETWEEN low AND high".
type BetweenExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr
	Not      bool
	Low      Expr
	High     Expr
}

func (*BetweenExpr) exprNode()        {}
func (b *BetweenExpr) Pos() token.Pos { return b.StartPos }
func (b *BetweenExpr) End() token.Pos { return b.EndPos }
func (b *BetweenExpr) String() string {
	not := ""
	if b.Not {
		not = "NOT "
	}
	return fmt.Sprintf("%s %sBETWEEN %s AND %s", exprString(b.Operand), not, exprString(b.Low), exprString(b.High))
}

// LikeExpr is "expr [NOT] LIKE pattern".
type LikeExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr
	Not      bool
	Pattern  Expr
}

func (*LikeExpr) exprNode()        {}
func (l *LikeExpr) Pos() token.Pos { return l.StartPos }
func (l *LikeExpr) End() token.Pos { return l.EndPos }
func (l *LikeExpr) String() string {
	not := ""
	if l.Not {
		not = "NOT "
	}
	return fmt.Sprintf("%s %sLIKE %s", exprString(l.Operand), not, exprString(l.Pattern))
}

// IsNullExpr is "expr IS [NOT] NULL".
type IsNullExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr
	Not      bool
}

func (*IsNullExpr) exprNode()        {}
func (e *IsNullExpr) Pos() token.Pos { return e.StartPos }
func (e *IsNullExpr) End() token.Pos { return e.EndPos }
func (e *IsNullExpr) String() string {
	not := ""
	if e.Not {
		not = " NOT"
	}
	return fmt.Sprintf("%s IS%s NULL", exprString(e.Operand), not)
}

// exprString renders a node's canonical form, matching spec §6's
// "binary expressions are parenthesized" requirement for nested operands.
func exprString(e Expr) string {
	switch n := e.(type) {
	case fmt.Stringer:
		return n.String()
	default:
		return "<expr>"
	}
}
