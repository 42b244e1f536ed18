package parser

import (
	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/lexer"
	"github.com/weft-lang/weft/internal/literal"
)

// stringLit parses any of the five literal forms into a single String node
// holding the fully decoded byte sequence.
func (p *Parser) stringLit() (ast.NodeID, error) {
	tok := p.peek()
	node := p.tree.Add(&ast.String{Pos: tok.Span})

	var (
		buf []byte
		err error
	)

	switch tok.Type {
	case lexer.HEX:
		p.advance()
		buf = literal.DecodeHex(tok.Value)
	case lexer.BIN:
		p.advance()
		buf = literal.DecodeBin(tok.Value)
	case lexer.SMART:
		buf, err = p.smartString()
	case lexer.BACKTICK:
		buf, err = p.stringifyString()
	case lexer.QUOTE, lexer.DOUBLEQUOTE:
		buf, err = p.quotedString()
	}
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.String](p.tree, node).Bytes = buf

	return node, nil
}

// appendPart appends one string-mode token to the literal buffer, mapping
// escape tokens to their single decoded byte. With escapes disabled (raw
// smart strings) every token appends its raw text.
func appendPart(buf []byte, part lexer.Token, escapes bool) []byte {
	if !escapes {
		return append(buf, part.Raw...)
	}

	switch part.Type {
	case lexer.ESCAPE_DOUBLEQUOTE:
		return append(buf, '"')
	case lexer.ESCAPE_QUOTE:
		return append(buf, '\'')
	case lexer.ESCAPE_BACKSLASH:
		return append(buf, '\\')
	case lexer.ESCAPE_NEWLINE:
		return append(buf, '\n')
	case lexer.ESCAPE_TAB:
		return append(buf, '\t')
	case lexer.ESCAPE_CARRIAGERETURN:
		return append(buf, '\r')
	case lexer.ESCAPE_HEX:
		// First nibble in the high four bits, second in the low four.
		return append(buf, literal.HexDigit(part.Value[0])<<4|literal.HexDigit(part.Value[1]))
	case lexer.ESCAPE_BIN:
		// Fold the bits left to right.
		var v byte
		for i := 0; i < len(part.Value); i++ {
			v = v<<1 | (part.Value[i] - '0')
		}
		return append(buf, v)
	default:
		return append(buf, part.Raw...)
	}
}

// quotedString parses '…' or "…". The opening quote kind is the terminator;
// the other quote kind is ordinary content.
func (p *Parser) quotedString() ([]byte, error) {
	delim := p.lx.Advance(lexer.ModeString)

	var buf []byte
	for {
		tok := p.lx.Peek(lexer.ModeString)
		if tok.Type == delim.Type {
			break
		}
		if tok.Type == lexer.EOF {
			return nil, p.errorAt(p.lx.Position(), "reached EOF while parsing string")
		}

		buf = appendPart(buf, p.lx.Advance(lexer.ModeString), true)
	}

	p.lx.Advance(lexer.ModeString) // terminating quote

	return buf, nil
}

// stringifyString parses `` `identifier ``: the identifier's literal text,
// unevaluated, becomes the string's content.
func (p *Parser) stringifyString() ([]byte, error) {
	p.advance() // `

	tok := p.peek()
	if tok.Type != lexer.IDENT {
		return nil, p.errorAt(tok.Span, "expected an identifier to follow !")
	}
	p.advance()

	return []byte(tok.Raw), nil
}

// smartString parses a delimiter-customizable literal. The opening token
// carries the type tag (raw/paragraph/code) and the user delimiter; the body
// only terminates at a quote immediately followed by that delimiter, so a
// bare matching quote inside the body is content.
func (p *Parser) smartString() ([]byte, error) {
	open := p.advance()
	styp := open.Raw[0]  // 'r', 'p' or 'c'
	delim := open.Raw[1] // user-chosen delimiter byte

	quote := p.lx.Advance(lexer.ModeString) // ' or "

	var buf []byte
	for {
		tok := p.lx.Peek(lexer.ModeString)

		if tok.Type == lexer.EOF {
			return nil, p.errorAt(p.lx.Position(), "reached EOF while parsing string")
		}

		if tok.Type == quote.Type {
			// Consume the quote tentatively: it is content unless the next
			// raw character is the user delimiter.
			buf = appendPart(buf, p.lx.Advance(lexer.ModeString), true)

			ch := p.lx.Peek(lexer.ModeCharacter)
			if ch.Type == lexer.CHAR && ch.Raw[0] == delim {
				p.lx.Advance(lexer.ModeCharacter)
				buf = buf[:len(buf)-1] // drop the quote byte
				break
			}
			continue
		}

		buf = appendPart(buf, p.lx.Advance(lexer.ModeString), styp != 'r')
	}

	switch styp {
	case 'p':
		buf = literal.Paragraph(buf)
	case 'c':
		buf = literal.Code(buf)
	}

	return buf, nil
}
