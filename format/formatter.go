// Package format generates canonical SQL text from AST nodes, per spec
// §6: keywords uppercase, binary expressions parenthesized, strings
// single-quoted, qualified identifiers dot-joined, aliases printed with
// " AS ". Grounded on the teacher's format/formatter.go, retargeted at
// this module's smaller AST.
package format

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/voltsql/voltsql/ast"
)

// Options controls formatting behavior.
type Options struct {
	Uppercase bool // uppercase keywords
}

// DefaultOptions matches spec §6's canonical form.
var DefaultOptions = Options{Uppercase: true}

// Formatter generates SQL from AST nodes.
type Formatter struct {
	buf  bytes.Buffer
	opts Options
}

// New creates a Formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// String formats node using DefaultOptions.
func String(node ast.Node) string {
	f := New(DefaultOptions)
	f.Format(node)
	return f.String()
}

// String returns the buffered output.
func (f *Formatter) String() string { return f.buf.String() }

func (f *Formatter) write(s string) { f.buf.WriteString(s) }

func (f *Formatter) keyword(kw string) {
	if f.opts.Uppercase {
		f.write(strings.ToUpper(kw))
	} else {
		f.write(strings.ToLower(kw))
	}
}

// Format writes node's canonical textual form to the buffer.
func (f *Formatter) Format(node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.Statements:
		f.formatStatements(n)
	case *ast.Select:
		f.formatSelect(n)
	case *ast.Empty:
		f.write(";")
	case *ast.BinaryExpr:
		f.formatBinary(n)
	case *ast.UnaryExpr:
		f.formatUnary(n)
	case *ast.FunctionCall:
		f.formatFunction(n)
	case *ast.SubQueryExpr:
		f.write("(")
		f.formatSelect(&n.Select)
		f.write(")")
	case *ast.InExpr:
		f.formatIn(n)
	case *ast.BetweenExpr:
		f.formatBetween(n)
	case *ast.LikeExpr:
		f.formatLike(n)
	case *ast.IsNullExpr:
		f.formatIsNull(n)
	case *ast.Literal:
		f.formatLiteral(n)
	case *ast.SingleIdent:
		f.write(n.Name)
	case *ast.CombinedIdent:
		f.writeJoined(n.Parts)
	case *ast.WithWildcardIdent:
		f.writeJoined(n.Parts)
		f.write(".*")
	case *ast.Wildcard:
		f.write("*")
	case *ast.ExprItem:
		f.Format(n.Expr)
	case *ast.AliasItem:
		f.Format(n.Expr)
		f.write(" ")
		f.keyword("AS")
		f.write(" ")
		f.write(n.Name)
	}
}

func (f *Formatter) formatStatements(s *ast.Statements) {
	for i, item := range s.Items {
		if i > 0 {
			f.write("; ")
		}
		f.Format(item)
	}
}

func (f *Formatter) formatSelect(s *ast.Select) {
	f.keyword("SELECT")
	f.write(" ")
	for i, item := range s.Items {
		if i > 0 {
			f.write(", ")
		}
		f.Format(item)
	}
	if len(s.From) > 0 {
		f.write(" ")
		f.keyword("FROM")
		f.write(" ")
		for i, fi := range s.From {
			if i > 0 {
				f.write(", ")
			}
			f.Format(fi.Expr)
			if fi.Alias != "" {
				f.write(" ")
				f.keyword("AS")
				f.write(" ")
				f.write(fi.Alias)
			}
		}
	}
	if s.Where != nil {
		f.write(" ")
		f.keyword("WHERE")
		f.write(" ")
		f.Format(s.Where)
	}
	if len(s.GroupBy) > 0 {
		f.write(" ")
		f.keyword("GROUP BY")
		f.write(" ")
		for i, id := range s.GroupBy {
			if i > 0 {
				f.write(", ")
			}
			f.Format(id)
		}
	}
	if s.Having != nil {
		f.write(" ")
		f.keyword("HAVING")
		f.write(" ")
		f.Format(s.Having)
	}
	if len(s.OrderBy) > 0 {
		f.write(" ")
		f.keyword("ORDER BY")
		f.write(" ")
		for i, ob := range s.OrderBy {
			if i > 0 {
				f.write(", ")
			}
			f.Format(ob.Identifier)
			f.write(" ")
			if ob.Asc {
				f.keyword("ASC")
			} else {
				f.keyword("DESC")
			}
		}
	}
	if s.Limit != nil {
		f.write(" ")
		f.keyword("LIMIT")
		f.write(" ")
		f.write(strconv.FormatUint(s.Limit.Value, 10))
	}
	if s.Offset != nil {
		f.write(" ")
		f.keyword("OFFSET")
		f.write(" ")
		f.write(strconv.FormatUint(s.Offset.Value, 10))
	}
}

func (f *Formatter) formatBinary(b *ast.BinaryExpr) {
	f.write("(")
	f.Format(b.Left)
	f.write(" ")
	f.keyword(b.Op.String())
	f.write(" ")
	f.Format(b.Right)
	f.write(")")
}

func (f *Formatter) formatUnary(u *ast.UnaryExpr) {
	f.keyword(u.Op.String())
	if u.Op == ast.UnaryNot {
		f.write(" ")
	}
	f.Format(u.Operand)
}

func (f *Formatter) formatFunction(fn *ast.FunctionCall) {
	f.write(fn.Name)
	f.write("(")
	if fn.Distinct {
		f.keyword("DISTINCT")
		f.write(" ")
	}
	for i, a := range fn.Args {
		if i > 0 {
			f.write(", ")
		}
		f.Format(a)
	}
	f.write(")")
}

func (f *Formatter) formatIn(e *ast.InExpr) {
	f.Format(e.Operand)
	if e.Not {
		f.write(" ")
		f.keyword("NOT")
	}
	f.write(" ")
	f.keyword("IN")
	f.write(" (")
	for i, v := range e.List {
		if i > 0 {
			f.write(", ")
		}
		f.Format(v)
	}
	f.write(")")
}

func (f *Formatter) formatBetween(e *ast.BetweenExpr) {
	f.Format(e.Operand)
	if e.Not {
		f.write(" ")
		f.keyword("NOT")
	}
	f.write(" ")
	f.keyword("BETWEEN")
	f.write(" ")
	f.Format(e.Low)
	f.write(" ")
	f.keyword("AND")
	f.write(" ")
	f.Format(e.High)
}

func (f *Formatter) formatLike(e *ast.LikeExpr) {
	f.Format(e.Operand)
	if e.Not {
		f.write(" ")
		f.keyword("NOT")
	}
	f.write(" ")
	f.keyword("LIKE")
	f.write(" ")
	f.Format(e.Pattern)
}

func (f *Formatter) formatIsNull(e *ast.IsNullExpr) {
	f.Format(e.Operand)
	f.write(" ")
	f.keyword("IS")
	if e.Not {
		f.write(" ")
		f.keyword("NOT")
	}
	f.write(" ")
	f.keyword("NULL")
}

func (f *Formatter) formatLiteral(l *ast.Literal) {
	switch l.Kind {
	case ast.LiteralString:
		f.formatStringLiteral(l.Str)
	case ast.LiteralInteger:
		f.write(strconv.FormatUint(l.Int, 10))
	case ast.LiteralFloat:
		f.write(strconv.FormatFloat(l.Float, 'g', -1, 64))
	}
}

func (f *Formatter) formatStringLiteral(s string) {
	f.buf.WriteByte('\'')
	for _, c := range s {
		switch c {
		case '\'':
			f.buf.WriteString("''")
		case '\\':
			f.buf.WriteString(`\\`)
		case '\n':
			f.buf.WriteString(`\n`)
		case '\r':
			f.buf.WriteString(`\r`)
		case 0:
			f.buf.WriteString(`\0`)
		default:
			f.buf.WriteRune(c)
		}
	}
	f.buf.WriteByte('\'')
}

func (f *Formatter) writeJoined(parts []string) {
	for i, p := range parts {
		if i > 0 {
			f.write(".")
		}
		f.write(p)
	}
}
