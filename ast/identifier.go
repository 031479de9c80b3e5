package ast

import (
	"strings"

	"github.com/voltsql/voltsql/token"
)

// SingleIdent is a one-part identifier ("a").
type SingleIdent struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*SingleIdent) exprNode()        {}
func (*SingleIdent) identifierNode()  {}
func (i *SingleIdent) Pos() token.Pos { return i.StartPos }
func (i *SingleIdent) End() token.Pos { return i.EndPos }
func (i *SingleIdent) String() string { return i.Name }

// CombinedIdent is a dot-separated multi-part identifier ("a.b.c").
type CombinedIdent struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []string
}

func (*CombinedIdent) exprNode()        {}
func (*CombinedIdent) identifierNode()  {}
func (i *CombinedIdent) Pos() token.Pos { return i.StartPos }
func (i *CombinedIdent) End() token.Pos { return i.EndPos }
func (i *CombinedIdent) String() string { return strings.Join(i.Parts, ".") }

// WithWildcardIdent is a qualified identifier ending in "*" ("a.b.*").
type WithWildcardIdent struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []string // qualifier parts only, not including the trailing "*"
}

func (*WithWildcardIdent) exprNode()        {}
func (*WithWildcardIdent) identifierNode()  {}
func (i *WithWildcardIdent) Pos() token.Pos { return i.StartPos }
func (i *WithWildcardIdent) End() token.Pos { return i.EndPos }
func (i *WithWildcardIdent) String() string {
	return strings.Join(i.Parts, ".") + ".*"
}

// Wildcard is the bare "*" identifier.
type Wildcard struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*Wildcard) exprNode()        {}
func (*Wildcard) identifierNode()  {}
func (w *Wildcard) Pos() token.Pos { return w.StartPos }
func (w *Wildcard) End() token.Pos { return w.EndPos }
func (w *Wildcard) String() string { return "*" }
