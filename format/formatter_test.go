package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltsql/voltsql/ast"
	"github.com/voltsql/voltsql/parser"
)

func mustParseOne(t *testing.T, sql string) ast.Node {
	t.Helper()
	stmts, err := parser.Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts.Items, 1)
	return stmts.Items[0]
}

func TestStringUppercasesKeywordsByDefault(t *testing.T) {
	node := mustParseOne(t, "select a from t where a > 1;")
	got := String(node)
	assert.Equal(t, "SELECT a FROM t WHERE (a > 1)", got)
}

func TestFormatterLowercase(t *testing.T) {
	node := mustParseOne(t, "SELECT a FROM t;")
	f := New(Options{Uppercase: false})
	f.Format(node)
	assert.Equal(t, "select a from t", f.String())
}

func TestFormatBinaryAlwaysParenthesizes(t *testing.T) {
	node := mustParseOne(t, "SELECT 1+2*3;")
	assert.Equal(t, "SELECT (1 + (2 * 3))", String(node))
}

func TestFormatStringLiteralEscapesQuote(t *testing.T) {
	node := mustParseOne(t, `SELECT 'it''s';`)
	assert.Equal(t, `SELECT 'it''s'`, String(node))
}

func TestFormatFunctionCallDistinct(t *testing.T) {
	node := mustParseOne(t, "SELECT count(DISTINCT a);")
	assert.Equal(t, "SELECT count(DISTINCT a)", String(node))
}

func TestFormatQualifiedIdentifierAndWildcard(t *testing.T) {
	node := mustParseOne(t, "SELECT t.a, t.* FROM t;")
	assert.Equal(t, "SELECT t.a, t.* FROM t", String(node))
}

func TestFormatAliasItem(t *testing.T) {
	node := mustParseOne(t, "SELECT a AS b FROM t;")
	assert.Equal(t, "SELECT a AS b FROM t", String(node))
}

func TestFormatPredicates(t *testing.T) {
	node := mustParseOne(t, "SELECT * FROM t WHERE a IS NOT NULL;")
	assert.Equal(t, "SELECT * FROM t WHERE a IS NOT NULL", String(node))

	node = mustParseOne(t, "SELECT * FROM t WHERE a BETWEEN 1 AND 10;")
	assert.Equal(t, "SELECT * FROM t WHERE a BETWEEN 1 AND 10", String(node))

	node = mustParseOne(t, "SELECT * FROM t WHERE a IN (1, 2);")
	assert.Equal(t, "SELECT * FROM t WHERE a IN (1, 2)", String(node))
}

func TestFormatSelectWithAllClauses(t *testing.T) {
	node := mustParseOne(t, "SELECT a FROM t WHERE a>1 GROUP BY a HAVING a>2 ORDER BY a DESC LIMIT 5 OFFSET 10;")
	want := "SELECT a FROM t WHERE (a > 1) GROUP BY a HAVING (a > 2) ORDER BY a DESC LIMIT 5 OFFSET 10"
	assert.Equal(t, want, String(node))
}

func TestFormatEmptyStatement(t *testing.T) {
	node := mustParseOne(t, ";")
	assert.Equal(t, ";", String(node))
}

func TestFormatSubquery(t *testing.T) {
	node := mustParseOne(t, "SELECT t.a FROM (SELECT b FROM c) AS t;")
	assert.Equal(t, "SELECT t.a FROM (SELECT b FROM c) AS t", String(node))
}
