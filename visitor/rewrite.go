package visitor

import "github.com/voltsql/voltsql/ast"

// ApplyFunc is called for each node during rewriting; return the
// replacement node or the original to keep it.
type ApplyFunc func(ast.Node) ast.Node

// Rewrite traverses the AST in post-order (children first, then parent),
// allowing node replacement. Grounded on the teacher's visitor/rewrite.go.
func Rewrite(node ast.Node, f ApplyFunc) ast.Node {
	if node == nil {
		return nil
	}
	rewriteChildren(node, f)
	return f(node)
}

func rewriteChildren(node ast.Node, f ApplyFunc) {
	switch n := node.(type) {
	case *ast.Statements:
		for i, item := range n.Items {
			if r := Rewrite(item, f); r != nil {
				n.Items[i] = r.(ast.Statement)
			}
		}

	case *ast.Select:
		for i, item := range n.Items {
			if r := Rewrite(item, f); r != nil {
				n.Items[i] = r.(ast.SelectItem)
			}
		}
		for _, fi := range n.From {
			if r := Rewrite(fi.Expr, f); r != nil {
				fi.Expr = r.(ast.Expr)
			}
		}
		if n.Where != nil {
			if r := Rewrite(n.Where, f); r != nil {
				n.Where = r.(ast.Expr)
			}
		}
		for i, id := range n.GroupBy {
			if r := Rewrite(id, f); r != nil {
				n.GroupBy[i] = r.(ast.Identifier)
			}
		}
		if n.Having != nil {
			if r := Rewrite(n.Having, f); r != nil {
				n.Having = r.(ast.Expr)
			}
		}
		for _, ob := range n.OrderBy {
			if r := Rewrite(ob.Identifier, f); r != nil {
				ob.Identifier = r.(ast.Identifier)
			}
		}

	case *ast.ExprItem:
		if r := Rewrite(n.Expr, f); r != nil {
			n.Expr = r.(ast.Expr)
		}

	case *ast.AliasItem:
		if r := Rewrite(n.Expr, f); r != nil {
			n.Expr = r.(ast.Expr)
		}

	case *ast.BinaryExpr:
		if r := Rewrite(n.Left, f); r != nil {
			n.Left = r.(ast.Expr)
		}
		if r := Rewrite(n.Right, f); r != nil {
			n.Right = r.(ast.Expr)
		}

	case *ast.UnaryExpr:
		if r := Rewrite(n.Operand, f); r != nil {
			n.Operand = r.(ast.Expr)
		}

	case *ast.FunctionCall:
		for i, a := range n.Args {
			if r := Rewrite(a, f); r != nil {
				n.Args[i] = r.(ast.Expr)
			}
		}

	case *ast.SubQueryExpr:
		if r := Rewrite(&n.Select, f); r != nil {
			n.Select = *r.(*ast.Select)
		}

	case *ast.InExpr:
		if r := Rewrite(n.Operand, f); r != nil {
			n.Operand = r.(ast.Expr)
		}
		for i, e := range n.List {
			if r := Rewrite(e, f); r != nil {
				n.List[i] = r.(ast.Expr)
			}
		}

	case *ast.BetweenExpr:
		if r := Rewrite(n.Operand, f); r != nil {
			n.Operand = r.(ast.Expr)
		}
		if r := Rewrite(n.Low, f); r != nil {
			n.Low = r.(ast.Expr)
		}
		if r := Rewrite(n.High, f); r != nil {
			n.High = r.(ast.Expr)
		}

	case *ast.LikeExpr:
		if r := Rewrite(n.Operand, f); r != nil {
			n.Operand = r.(ast.Expr)
		}
		if r := Rewrite(n.Pattern, f); r != nil {
			n.Pattern = r.(ast.Expr)
		}

	case *ast.IsNullExpr:
		if r := Rewrite(n.Operand, f); r != nil {
			n.Operand = r.(ast.Expr)
		}

	case *ast.InsertStmt:
		for i, row := range n.Values {
			for j, val := range row {
				if r := Rewrite(val, f); r != nil {
					n.Values[i][j] = r.(ast.Expr)
				}
			}
		}

	case *ast.UpdateStmt:
		for i, ue := range n.Set {
			if r := Rewrite(ue.Value, f); r != nil {
				n.Set[i].Value = r.(ast.Expr)
			}
		}
		if n.Where != nil {
			if r := Rewrite(n.Where, f); r != nil {
				n.Where = r.(ast.Expr)
			}
		}

	case *ast.DeleteStmt:
		if n.Where != nil {
			if r := Rewrite(n.Where, f); r != nil {
				n.Where = r.(ast.Expr)
			}
		}
	}
}

// RewriteExpr is a convenience wrapper for rewriting only expressions.
func RewriteExpr(expr ast.Expr, f func(ast.Expr) ast.Expr) ast.Expr {
	result := Rewrite(expr, func(n ast.Node) ast.Node {
		if e, ok := n.(ast.Expr); ok {
			return f(e)
		}
		return n
	})
	if result == nil {
		return nil
	}
	return result.(ast.Expr)
}
