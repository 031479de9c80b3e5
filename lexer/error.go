package lexer

import (
	"github.com/voltsql/voltsql/internal/srcloc"
	"github.com/voltsql/voltsql/token"
)

// TokenizeError is returned when the input cannot be lexed.
type TokenizeError struct {
	Message string
	Loc     token.Pos
	RawSQL  string
}

func (e *TokenizeError) Error() string {
	return srcloc.Format(e.Message, e.Loc.Line, e.Loc.Column, e.Loc.Offset, e.RawSQL)
}
