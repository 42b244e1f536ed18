package parser

import (
	"fmt"

	"github.com/weft-lang/weft/internal/diag"
	"github.com/weft-lang/weft/internal/lexer"
)

// Error is the parser's single error kind: a structural/syntax error
// carrying a source position and a human-readable message. It propagates by
// early return through every production; the caller observes the first
// error only.
type Error struct {
	Message string
	Span    lexer.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// ToDiagnostic converts the error into the shared diagnostic structure.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseSyntax,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

func (p *Parser) errorAt(span lexer.Span, msg string) *Error {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}

	return &Error{Message: msg, Span: span}
}

func (p *Parser) errorf(span lexer.Span, format string, args ...any) *Error {
	return p.errorAt(span, fmt.Sprintf(format, args...))
}
