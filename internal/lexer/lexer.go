package lexer

// Mode selects how the next bytes are tokenized. The same byte sequence
// tokenizes differently inside a quoted literal than outside one, so the
// parser chooses the mode per Peek/Advance call.
type Mode int

const (
	// ModeNormal lexes grammar tokens and skips whitespace and comments.
	ModeNormal Mode = iota
	// ModeString lexes a literal body: quotes, escapes and content runs.
	ModeString
	// ModeCharacter lexes exactly the next raw byte. Used to check a
	// user-chosen delimiter immediately after a quote.
	ModeCharacter
)

// Lexer is a mode-switching scanner over a byte buffer. It exposes a single
// token of lookahead: Peek lexes (and caches) the token at the current
// offset under the requested mode without consuming it, Advance consumes it.
type Lexer struct {
	src      []byte
	pos      int // byte offset of the scan head
	line     int // 1-based line of the scan head
	column   int // 1-based column of the scan head
	filename string

	cache peekCache
}

// peekCache memoizes the last Peek. It is keyed by offset and mode because
// re-peeking under a different mode must re-lex the same bytes.
type peekCache struct {
	valid bool
	mode  Mode
	pos   int

	tok     Token
	nextPos int
	nextLn  int
	nextCol int
}

// New creates a lexer for the given source text.
func New(input string) *Lexer {
	return &Lexer{
		src:    []byte(input),
		line:   1,
		column: 1,
	}
}

// SetFilename attributes all emitted spans to the provided filename.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
	l.cache.valid = false
}

// Position returns the location of the scan head, for error attachment.
func (l *Lexer) Position() Span {
	return Span{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Start:    l.pos,
		End:      l.pos,
	}
}

// Peek returns the next token under the given mode without consuming it.
func (l *Lexer) Peek(mode Mode) Token {
	if l.cache.valid && l.cache.mode == mode && l.cache.pos == l.pos {
		return l.cache.tok
	}

	s := scanner{src: l.src, pos: l.pos, line: l.line, column: l.column, filename: l.filename}
	tok := s.scan(mode)

	l.cache = peekCache{
		valid:   true,
		mode:    mode,
		pos:     l.pos,
		tok:     tok,
		nextPos: s.pos,
		nextLn:  s.line,
		nextCol: s.column,
	}

	return tok
}

// Advance consumes and returns the next token under the given mode.
func (l *Lexer) Advance(mode Mode) Token {
	tok := l.Peek(mode)

	l.pos = l.cache.nextPos
	l.line = l.cache.nextLn
	l.column = l.cache.nextCol
	l.cache.valid = false

	return tok
}

// scanner holds the transient state of a single scan so that Peek never
// mutates the lexer head.
type scanner struct {
	src      []byte
	pos      int
	line     int
	column   int
	filename string
}

func (s *scanner) scan(mode Mode) Token {
	switch mode {
	case ModeString:
		return s.scanString()
	case ModeCharacter:
		return s.scanCharacter()
	default:
		return s.scanNormal()
	}
}

func (s *scanner) eofToken() Token {
	return Token{Type: EOF, Span: s.spanFrom(s.pos, s.line, s.column)}
}

func (s *scanner) spanFrom(start, line, column int) Span {
	return Span{
		Filename: s.filename,
		Line:     line,
		Column:   column,
		Start:    start,
		End:      s.pos,
	}
}

// bump consumes one byte, tracking line/column.
func (s *scanner) bump() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *scanner) peekByte() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) byteAt(off int) (byte, bool) {
	if s.pos+off >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+off], true
}

func (s *scanner) scanCharacter() Token {
	if s.pos >= len(s.src) {
		return s.eofToken()
	}

	start, line, col := s.pos, s.line, s.column
	s.bump()

	return Token{
		Type: CHAR,
		Raw:  string(s.src[start:s.pos]),
		Span: s.spanFrom(start, line, col),
	}
}

func (s *scanner) scanNormal() Token {
	s.skipTrivia()

	if s.pos >= len(s.src) {
		return s.eofToken()
	}

	start, line, col := s.pos, s.line, s.column
	mk := func(tt TokenType) Token {
		return Token{
			Type: tt,
			Raw:  string(s.src[start:s.pos]),
			Span: s.spanFrom(start, line, col),
		}
	}

	c := s.src[s.pos]

	switch c {
	case '(':
		s.bump()
		return mk(LPAREN)
	case ')':
		s.bump()
		return mk(RPAREN)
	case '{':
		s.bump()
		return mk(LBRACE)
	case '}':
		s.bump()
		return mk(RBRACE)
	case ',':
		s.bump()
		return mk(COMMA)
	case '*':
		s.bump()
		return mk(STAR)
	case '=':
		s.bump()
		return mk(EQUAL)
	case '`':
		s.bump()
		return mk(BACKTICK)
	case '\'':
		s.bump()
		return mk(QUOTE)
	case '"':
		s.bump()
		return mk(DOUBLEQUOTE)
	case '-':
		if b, ok := s.byteAt(1); ok && b == '>' {
			s.bump()
			s.bump()
			return mk(ARROW)
		}
		s.bump()
		return mk(ILLEGAL)
	case '.':
		if b, ok := s.byteAt(1); ok && b == '.' {
			s.bump()
			s.bump()
			return mk(CAT)
		}
		s.bump()
		return mk(ILLEGAL)
	}

	// Packed literals. The token's Value carries the digit run so the decoder
	// never sees the 0x/0b prefix.
	if c == '0' {
		if b, ok := s.byteAt(1); ok && (b == 'x' || b == 'b') {
			s.bump()
			s.bump()
			digits := s.pos
			if b == 'x' {
				for p, ok := s.peekByte(); ok && (isHexDigit(p) || p == '_'); p, ok = s.peekByte() {
					s.bump()
				}
			} else {
				for p, ok := s.peekByte(); ok && (p == '0' || p == '1' || p == '_'); p, ok = s.peekByte() {
					s.bump()
				}
			}
			tok := mk(HEX)
			if b == 'b' {
				tok.Type = BIN
			}
			tok.Value = string(s.src[digits:s.pos])
			return tok
		}
	}

	// Smart-string opener: a type byte and a user delimiter byte, valid only
	// when the byte after them is a quote. The quote lexes as its own token.
	if c == 'r' || c == 'p' || c == 'c' {
		if b, ok := s.byteAt(2); ok && (b == '\'' || b == '"') {
			s.bump()
			s.bump()
			tok := mk(SMART)
			tok.Value = tok.Raw
			return tok
		}
	}

	if isIdentByte(c) {
		for p, ok := s.peekByte(); ok && isIdentByte(p); p, ok = s.peekByte() {
			s.bump()
		}
		tok := mk(IDENT)
		tok.Type = LookupIdent(tok.Raw)
		return tok
	}

	s.bump()
	return mk(ILLEGAL)
}

// skipTrivia consumes whitespace and nestable #[ … ] comments.
func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		if isWhitespace(c) {
			s.bump()
			continue
		}

		if c == '#' {
			if b, ok := s.byteAt(1); ok && b == '[' {
				s.bump()
				s.bump()
				depth := 1
				for s.pos < len(s.src) && depth > 0 {
					if s.src[s.pos] == '#' {
						if b, ok := s.byteAt(1); ok && b == '[' {
							s.bump()
							s.bump()
							depth++
							continue
						}
					}
					if s.bump() == ']' {
						depth--
					}
				}
				continue
			}
		}

		return
	}
}

func (s *scanner) scanString() Token {
	if s.pos >= len(s.src) {
		return s.eofToken()
	}

	start, line, col := s.pos, s.line, s.column
	mk := func(tt TokenType) Token {
		return Token{
			Type: tt,
			Raw:  string(s.src[start:s.pos]),
			Span: s.spanFrom(start, line, col),
		}
	}

	switch s.src[s.pos] {
	case '\'':
		s.bump()
		return mk(QUOTE)
	case '"':
		s.bump()
		return mk(DOUBLEQUOTE)
	case '\\':
		return s.scanEscape(mk)
	}

	// Content run: everything up to the next backslash, quote or EOF is one
	// catchall token. Whitespace is preserved.
	for p, ok := s.peekByte(); ok && p != '\\' && p != '\'' && p != '"'; p, ok = s.peekByte() {
		s.bump()
	}

	tok := mk(CONTENT)
	tok.Value = tok.Raw
	return tok
}

func (s *scanner) scanEscape(mk func(TokenType) Token) Token {
	// A backslash that introduces no recognized escape is emitted as content
	// so the parser appends it verbatim.
	b, ok := s.byteAt(1)
	if !ok {
		s.bump()
		return mk(CONTENT)
	}

	switch b {
	case '\'':
		s.bump()
		s.bump()
		return mk(ESCAPE_QUOTE)
	case '"':
		s.bump()
		s.bump()
		return mk(ESCAPE_DOUBLEQUOTE)
	case '\\':
		s.bump()
		s.bump()
		return mk(ESCAPE_BACKSLASH)
	case 'n':
		s.bump()
		s.bump()
		return mk(ESCAPE_NEWLINE)
	case 't':
		s.bump()
		s.bump()
		return mk(ESCAPE_TAB)
	case 'r':
		s.bump()
		s.bump()
		return mk(ESCAPE_CARRIAGERETURN)
	case 'x':
		h1, ok1 := s.byteAt(2)
		h2, ok2 := s.byteAt(3)
		if !ok1 || !ok2 || !isHexDigit(h1) || !isHexDigit(h2) {
			s.bump()
			s.bump()
			return mk(CONTENT)
		}
		for i := 0; i < 4; i++ {
			s.bump()
		}
		tok := mk(ESCAPE_HEX)
		tok.Value = tok.Raw[2:]
		return tok
	case 'b':
		s.bump()
		s.bump()
		digits := s.pos
		for i := 0; i < 8; i++ {
			p, ok := s.peekByte()
			if !ok || (p != '0' && p != '1') {
				break
			}
			s.bump()
		}
		if s.pos == digits {
			return mk(CONTENT)
		}
		tok := mk(ESCAPE_BIN)
		tok.Value = string(s.src[digits:s.pos])
		return tok
	default:
		s.bump()
		s.bump()
		return mk(CONTENT)
	}
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// isIdentByte reports whether c can appear in an identifier. Identifiers are
// any run of bytes that is not whitespace and not a grammar delimiter.
func isIdentByte(c byte) bool {
	if isWhitespace(c) {
		return false
	}
	switch c {
	case '(', ')', '{', '}', ',', '*', '-', '=', '.', '\'', '"', '`', '#':
		return false
	default:
		return true
	}
}
