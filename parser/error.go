package parser

import (
	"github.com/voltsql/voltsql/internal/srcloc"
	"github.com/voltsql/voltsql/token"
)

// ParseError is returned when the token stream cannot be parsed.
type ParseError struct {
	Message string
	Loc     token.Pos
	RawSQL  string
}

func (e *ParseError) Error() string {
	return srcloc.Format(e.Message, e.Loc.Line, e.Loc.Column, e.Loc.Offset, e.RawSQL)
}
