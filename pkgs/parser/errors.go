package parser

import (
	"fmt"

	"github.com/aledsdavies/hoonlint/pkgs/lexer"
)

// ParseError is a syntax error encountered while parsing, reported in the
// teacher's compiler-style "line:col: error: message" form (grounded on
// pkgs/parser/errors.go's formatCompilerError), since the parser has no
// file name of its own — the CLI layer prepends the file path.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: error: %s", e.Token.Line, e.Token.Column, e.Message)
}
