package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/format"
	"github.com/voltsql/voltsql/parser"
)

func mustParseOne(t *testing.T, sql string) ast.Node {
	t.Helper()
	stmts, err := parser.Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts.Items, 1)
	return stmts.Items[0]
}

func TestWalkFuncVisitsEveryIdentifier(t *testing.T) {
	node := mustParseOne(t, "SELECT a, b FROM t WHERE a > 1;")
	var names []string
	WalkFunc(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.SingleIdent); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "t", "a"}, names)
}

func TestWalkFuncFalseSkipsChildren(t *testing.T) {
	node := mustParseOne(t, "SELECT 1+2*3;")
	var seenMul bool
	WalkFunc(node, func(n ast.Node) bool {
		if bin, ok := n.(*ast.BinaryExpr); ok && bin.Op == ast.OpPlus {
			return false // skip descending into the nested 2*3
		}
		if bin, ok := n.(*ast.BinaryExpr); ok && bin.Op == ast.OpMul {
			seenMul = true
		}
		return true
	})
	assert.False(t, seenMul)
}

func TestInspectFalseOnLeafNodes(t *testing.T) {
	node := mustParseOne(t, "SELECT a, b, c FROM t;")
	var visited int
	Inspect(node, func(n ast.Node) bool {
		if _, ok := n.(*ast.SingleIdent); ok {
			visited++
			return false
		}
		return true
	})
	// a, b, c (select items) and t (from) — all leaves, so returning false
	// on each doesn't affect the count, only demonstrates no panic on a
	// childless node.
	assert.Equal(t, 4, visited)
}

func TestRewriteReplacesLiteral(t *testing.T) {
	node := mustParseOne(t, "SELECT 1;")
	rewritten := Rewrite(node, func(n ast.Node) ast.Node {
		if lit, ok := n.(*ast.Literal); ok && lit.Kind == ast.LiteralInteger {
			return &ast.Literal{Kind: ast.LiteralInteger, Int: lit.Int + 1}
		}
		return n
	})
	assert.Equal(t, "SELECT 2", format.String(rewritten))
}

func TestRewriteExprRenamesIdentifiers(t *testing.T) {
	node := mustParseOne(t, "SELECT a FROM t WHERE a > 1;")
	sel := node.(*ast.Select)

	renamed := RewriteExpr(sel.Where, func(e ast.Expr) ast.Expr {
		if id, ok := e.(*ast.SingleIdent); ok && id.Name == "a" {
			return &ast.SingleIdent{Name: "renamed"}
		}
		return e
	})
	sel.Where = renamed
	assert.Contains(t, format.String(sel), "renamed")
}
