package ast

import (
	"fmt"
	"strconv"

	"github.com/voltsql/voltsql/token"
)

// LiteralKind distinguishes the payload carried by a Literal.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInteger
	LiteralFloat
)

// Literal is a string/integer/float constant.
type Literal struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     LiteralKind
	Str      string
	Int      uint64
	Float    float64
}

func (*Literal) exprNode()        {}
func (l *Literal) Pos() token.Pos { return l.StartPos }
func (l *Literal) End() token.Pos { return l.EndPos }

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralString:
		return "'" + escapeForDisplay(l.Str) + "'"
	case LiteralInteger:
		return strconv.FormatUint(l.Int, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	default:
		return fmt.Sprintf("<invalid literal kind %d>", l.Kind)
	}
}

func escapeForDisplay(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '\'' {
			out = append(out, '\'', '\'')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
