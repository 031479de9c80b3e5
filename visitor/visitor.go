// Package visitor provides AST traversal and rewriting utilities,
// retargeted at this module's AST node set. Grounded on the teacher's
// visitor/visitor.go.
package visitor

import "github.com/voltsql/voltsql/ast"

// Visitor is the interface for AST traversal.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, node ast.Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	walkChildren(v, node)
}

func walkChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {
	case *ast.Statements:
		for _, item := range n.Items {
			Walk(v, item)
		}

	case *ast.Select:
		for _, item := range n.Items {
			Walk(v, item)
		}
		for _, fi := range n.From {
			Walk(v, fi.Expr)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}
		for _, id := range n.GroupBy {
			Walk(v, id)
		}
		if n.Having != nil {
			Walk(v, n.Having)
		}
		for _, ob := range n.OrderBy {
			Walk(v, ob.Identifier)
		}

	case *ast.ExprItem:
		Walk(v, n.Expr)

	case *ast.AliasItem:
		Walk(v, n.Expr)

	case *ast.BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ast.UnaryExpr:
		Walk(v, n.Operand)

	case *ast.FunctionCall:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *ast.SubQueryExpr:
		Walk(v, &n.Select)

	case *ast.InExpr:
		Walk(v, n.Operand)
		for _, e := range n.List {
			Walk(v, e)
		}

	case *ast.BetweenExpr:
		Walk(v, n.Operand)
		Walk(v, n.Low)
		Walk(v, n.High)

	case *ast.LikeExpr:
		Walk(v, n.Operand)
		Walk(v, n.Pattern)

	case *ast.IsNullExpr:
		Walk(v, n.Operand)

	case *ast.InsertStmt:
		for _, row := range n.Values {
			for _, val := range row {
				Walk(v, val)
			}
		}

	case *ast.UpdateStmt:
		for _, ue := range n.Set {
			Walk(v, ue.Value)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}

	case *ast.DeleteStmt:
		if n.Where != nil {
			Walk(v, n.Where)
		}

	// Literal, SingleIdent, CombinedIdent, WithWildcardIdent, Wildcard,
	// Empty, CreateTableStmt, DropTableStmt, CreateIndexStmt are leaves
	// with no Node-typed children.
	default:
	}
}

// WalkFunc calls fn for each node; fn returning false stops descent into
// that node's children.
func WalkFunc(node ast.Node, fn func(ast.Node) bool) {
	Walk(&funcVisitor{fn: fn}, node)
}

type funcVisitor struct {
	fn func(ast.Node) bool
}

func (v *funcVisitor) Visit(node ast.Node) Visitor {
	if v.fn(node) {
		return v
	}
	return nil
}

// Inspect calls f for each node in the AST.
func Inspect(node ast.Node, f func(ast.Node) bool) {
	WalkFunc(node, f)
}
