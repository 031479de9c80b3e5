package ast

import (
	"strings"

	"github.com/voltsql/voltsql/token"
)

// ExprItem is a SelectItem that is a bare expression (no alias).
type ExprItem struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
}

func (*ExprItem) selectItemNode()  {}
func (e *ExprItem) Pos() token.Pos { return e.StartPos }
func (e *ExprItem) End() token.Pos { return e.EndPos }
func (e *ExprItem) String() string { return exprString(e.Expr) }

// AliasItem is a SelectItem with an explicit or implicit alias.
type AliasItem struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Name     string
}

func (*AliasItem) selectItemNode()  {}
func (a *AliasItem) Pos() token.Pos { return a.StartPos }
func (a *AliasItem) End() token.Pos { return a.EndPos }
func (a *AliasItem) String() string { return exprString(a.Expr) + " AS " + a.Name }

// FromItem is one entry in a FROM clause: an expression (identifier or
// subquery) with an optional alias.
type FromItem struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Alias    string // "" if absent
}

func (f *FromItem) Pos() token.Pos { return f.StartPos }
func (f *FromItem) End() token.Pos { return f.EndPos }
func (f *FromItem) String() string {
	s := exprString(f.Expr)
	if f.Alias != "" {
		s += " AS " + f.Alias
	}
	return s
}

// OrderByItem is one ORDER BY term.
type OrderByItem struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Identifier Identifier
	Asc        bool
}

func (o *OrderByItem) Pos() token.Pos { return o.StartPos }
func (o *OrderByItem) End() token.Pos { return o.EndPos }
func (o *OrderByItem) String() string {
	dir := "ASC"
	if !o.Asc {
		dir = "DESC"
	}
	return exprString(o.Identifier) + " " + dir
}

// Limit is a LIMIT clause value (SPEC_FULL.md §4.3 SUPPLEMENT).
type Limit struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    uint64
}

func (l *Limit) Pos() token.Pos { return l.StartPos }
func (l *Limit) End() token.Pos { return l.EndPos }

// Offset is an OFFSET clause value (SPEC_FULL.md §4.3 SUPPLEMENT).
type Offset struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    uint64
}

func (o *Offset) Pos() token.Pos { return o.StartPos }
func (o *Offset) End() token.Pos { return o.EndPos }

// Select is a SELECT statement.
type Select struct {
	StartPos token.Pos
	EndPos   token.Pos
	Items    []SelectItem
	From     []*FromItem
	Where    Expr // nil if absent
	GroupBy  []Identifier
	Having   Expr // nil if absent
	OrderBy  []*OrderByItem
	Limit    *Limit  // nil if absent
	Offset   *Offset // nil if absent
}

func (*Select) statementNode()    {}
func (*Select) exprNode()         {} // usable as a scalar/IN subquery operand
func (s *Select) Pos() token.Pos  { return s.StartPos }
func (s *Select) End() token.Pos  { return s.EndPos }
func (s *Select) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	items := make([]string, len(s.Items))
	for i, it := range s.Items {
		items[i] = itemString(it)
	}
	b.WriteString(strings.Join(items, ", "))
	if len(s.From) > 0 {
		b.WriteString(" FROM ")
		parts := make([]string, len(s.From))
		for i, f := range s.From {
			parts[i] = f.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(exprString(s.Where))
	}
	if len(s.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		parts := make([]string, len(s.GroupBy))
		for i, g := range s.GroupBy {
			parts[i] = exprString(g)
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Having != nil {
		b.WriteString(" HAVING ")
		b.WriteString(exprString(s.Having))
	}
	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		parts := make([]string, len(s.OrderBy))
		for i, o := range s.OrderBy {
			parts[i] = o.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(uitoa(s.Limit.Value))
	}
	if s.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(uitoa(s.Offset.Value))
	}
	return b.String()
}

func itemString(it SelectItem) string {
	switch n := it.(type) {
	case *ExprItem:
		return n.String()
	case *AliasItem:
		return n.String()
	default:
		return "<item>"
	}
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Empty is the statement produced by a bare ";".
type Empty struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*Empty) statementNode()    {}
func (e *Empty) Pos() token.Pos  { return e.StartPos }
func (e *Empty) End() token.Pos  { return e.EndPos }
