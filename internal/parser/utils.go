package parser

import (
	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/lexer"
)

// FIRST-set predicates. Every choice point in the grammar dispatches on one
// of these with a single token of lookahead.

// isCallStart reports whether tt can begin a function invocation: a user
// identifier or an intrinsic name.
func isCallStart(tt lexer.TokenType) bool {
	return tt == lexer.IDENT || lexer.IsIntrinsic(tt)
}

// isStringStart reports whether tt opens one of the five literal forms.
func isStringStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.QUOTE, lexer.DOUBLEQUOTE, lexer.HEX, lexer.BIN, lexer.SMART, lexer.BACKTICK:
		return true
	default:
		return false
	}
}

// isExprStart reports whether tt can begin an expression.
func isExprStart(tt lexer.TokenType) bool {
	if isCallStart(tt) || isStringStart(tt) {
		return true
	}
	switch tt {
	case lexer.LBRACE, lexer.MAP, lexer.EQUAL:
		return true
	default:
		return false
	}
}

// isStmtStart reports whether tt can begin a statement.
func isStmtStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.LET, lexer.VAR, lexer.DROP, lexer.PREFIX:
		return true
	default:
		return isExprStart(tt)
	}
}

// intrinsicKinds maps an intrinsic token type to its node kind.
var intrinsicKinds = map[lexer.TokenType]ast.IntrinsicKind{
	lexer.RUN:    ast.IntrinsicRun,
	lexer.EVAL:   ast.IntrinsicEval,
	lexer.FILE:   ast.IntrinsicFile,
	lexer.ASSERT: ast.IntrinsicAssert,
	lexer.PIPE:   ast.IntrinsicPipe,
	lexer.ERROR:  ast.IntrinsicError,
	lexer.LOG:    ast.IntrinsicLog,
	lexer.ESCAPE: ast.IntrinsicEscape,
	lexer.SOURCE: ast.IntrinsicSource,
	lexer.SLICE:  ast.IntrinsicSlice,
	lexer.FIND:   ast.IntrinsicFind,
	lexer.LENGTH: ast.IntrinsicLength,
}
