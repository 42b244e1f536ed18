package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // byte index into the source
	End      int    // exclusive end index
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token represents a lexical token
type Token struct {
	Type TokenType
	Raw  string // exact bytes from source
	Value string // payload where it differs from Raw: hex/bin digits without
	// the 0x/0b prefix, escape payloads without the backslash introducer
	Span Span // source location information
}

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT"

	// Keywords
	LET    TokenType = "LET"
	VAR    TokenType = "VAR"
	DROP   TokenType = "DROP"
	PREFIX TokenType = "PREFIX"
	MAP    TokenType = "MAP"

	// Intrinsics. Lexed as distinct token types so the parser can classify a
	// callee with a single type check and so reserved-name collisions are
	// visible at the token level.
	RUN    TokenType = "RUN"
	EVAL   TokenType = "EVAL"
	FILE   TokenType = "FILE"
	ASSERT TokenType = "ASSERT"
	PIPE   TokenType = "PIPE"
	ERROR  TokenType = "ERROR"
	LOG    TokenType = "LOG"
	ESCAPE TokenType = "ESCAPE"
	SOURCE TokenType = "SOURCE"
	SLICE  TokenType = "SLICE"
	FIND   TokenType = "FIND"
	LENGTH TokenType = "LENGTH"

	// Delimiters and operators
	LPAREN      TokenType = "("
	RPAREN      TokenType = ")"
	LBRACE      TokenType = "{"
	RBRACE      TokenType = "}"
	COMMA       TokenType = ","
	STAR        TokenType = "*"
	ARROW       TokenType = "->"
	EQUAL       TokenType = "="
	CAT         TokenType = ".."
	BACKTICK    TokenType = "`"
	QUOTE       TokenType = "'"
	DOUBLEQUOTE TokenType = "\""

	// Literal openers
	HEX   TokenType = "HEX"   // 0x…, Value holds the digits
	BIN   TokenType = "BIN"   // 0b…, Value holds the digits
	SMART TokenType = "SMART" // type byte + user delimiter byte

	// String-mode tokens
	CONTENT             TokenType = "CONTENT" // run of ordinary literal bytes
	ESCAPE_QUOTE        TokenType = `\'`
	ESCAPE_DOUBLEQUOTE  TokenType = `\"`
	ESCAPE_BACKSLASH    TokenType = `\\`
	ESCAPE_NEWLINE      TokenType = `\n`
	ESCAPE_TAB          TokenType = `\t`
	ESCAPE_CARRIAGERETURN TokenType = `\r`
	ESCAPE_HEX          TokenType = `\x` // Value holds the two hex digits
	ESCAPE_BIN          TokenType = `\b` // Value holds the binary digits

	// Character-mode token: exactly one raw byte
	CHAR TokenType = "CHAR"
)

var keywords = map[string]TokenType{
	"let":    LET,
	"var":    VAR,
	"drop":   DROP,
	"prefix": PREFIX,
	"map":    MAP,

	"run":    RUN,
	"eval":   EVAL,
	"file":   FILE,
	"assert": ASSERT,
	"pipe":   PIPE,
	"error":  ERROR,
	"log":    LOG,
	"escape": ESCAPE,
	"source": SOURCE,
	"slice":  SLICE,
	"find":   FIND,
	"length": LENGTH,
}

// LookupIdent maps an identifier to its keyword or intrinsic token type,
// falling back to IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// IsIntrinsic reports whether the token type names a built-in operation.
func IsIntrinsic(tt TokenType) bool {
	switch tt {
	case RUN, EVAL, FILE, ASSERT, PIPE, ERROR, LOG, ESCAPE, SOURCE, SLICE, FIND, LENGTH:
		return true
	default:
		return false
	}
}

// IsReserved reports whether the token type is a keyword or an intrinsic
// name. Reserved names cannot be used as parameters.
func IsReserved(tt TokenType) bool {
	switch tt {
	case LET, VAR, DROP, PREFIX, MAP:
		return true
	default:
		return IsIntrinsic(tt)
	}
}
