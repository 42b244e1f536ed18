// Package literal holds the pure byte-level decoders and normalizers behind
// weft's string-literal forms. Everything here is a context-free
// transformation from raw token text to bytes, kept separate from the
// grammar parser so it can be unit-tested without a token stream.
package literal

// IsWhitespace reports whether c is a whitespace byte.
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// HexDigit converts a hex digit byte to its value. Input must already be
// validated as a hex digit.
func HexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// DecodeHex decodes the digit run of a 0x literal into bytes. Digits pair up
// into bytes from the least-significant end, so an odd leading digit becomes
// its own byte; underscores are skipped.
func DecodeHex(digits string) []byte {
	var out []byte
	counter := 0

	for i := len(digits); i > 0; i-- {
		c := digits[i-1]
		if c == '_' {
			continue
		}

		if counter&1 == 1 {
			out[len(out)-1] |= HexDigit(c) << 4
		} else {
			out = append(out, HexDigit(c))
		}
		counter++
	}

	reverse(out)
	return out
}

// DecodeBin decodes the digit run of a 0b literal into bytes, eight bits per
// byte from the least-significant end; underscores are skipped.
func DecodeBin(digits string) []byte {
	var out []byte
	counter := 0

	for i := len(digits); i > 0; i-- {
		c := digits[i-1]
		if c == '_' {
			continue
		}

		bit := c - '0'
		if counter&7 != 0 {
			out[len(out)-1] |= bit << (counter & 7)
		} else {
			out = append(out, bit)
		}
		counter++
	}

	reverse(out)
	return out
}

// Paragraph normalizes a paragraph-type smart string: each maximal run of
// whitespace collapses to its first byte, remaining whitespace becomes a
// plain space, and exactly one leading and one trailing whitespace byte are
// stripped if present.
func Paragraph(in []byte) []byte {
	out := make([]byte, 0, len(in))
	for i, c := range in {
		if i > 0 && IsWhitespace(c) && len(out) > 0 && IsWhitespace(out[len(out)-1]) {
			continue
		}
		out = append(out, c)
	}

	for i := range out {
		if IsWhitespace(out[i]) {
			out[i] = ' '
		}
	}

	if len(out) > 0 && out[0] == ' ' {
		out = out[1:]
	}
	if len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return out
}

// Code normalizes a code-type smart string: trailing whitespace is stripped,
// leading whitespace is stripped up to and including the last newline before
// the first content byte, and the common indentation measured after every
// newline is removed from the start of the string and of every line.
// Indentation beyond the common amount is kept.
func Code(in []byte) []byte {
	s := in

	// Trailing whitespace.
	end := len(s)
	for end > 0 && IsWhitespace(s[end-1]) {
		end--
	}
	s = s[:end]

	// Leading whitespace through the last newline before content.
	start := 0
	for i := 0; i < len(s) && IsWhitespace(s[i]); i++ {
		if s[i] == '\n' {
			start = i + 1
		}
	}
	s = s[start:]

	// Common indentation: the smallest run of whitespace following any
	// newline. Runs may span blank lines, which then fold into the
	// measurement exactly once.
	common := int(^uint(0) >> 1)
	for j := 0; j < len(s); j++ {
		if s[j] != '\n' {
			continue
		}
		j++
		indent := 0
		for j < len(s) && IsWhitespace(s[j]) {
			j++
			indent++
		}
		if indent < common {
			common = indent
		}
	}

	strip := func(j int) int {
		c := 0
		for j < len(s) && IsWhitespace(s[j]) && c != common {
			j++
			c++
		}
		return j
	}

	out := make([]byte, 0, len(s))
	j := 0

	if len(s) > 0 && IsWhitespace(s[0]) {
		j = strip(j)
	}

	for j < len(s) {
		if s[j] == '\n' {
			out = append(out, s[j])
			j = strip(j + 1)
			// The first byte after a stripped indent is kept as-is, even if
			// it is itself a newline.
			if j < len(s) {
				out = append(out, s[j])
				j++
			}
			continue
		}
		out = append(out, s[j])
		j++
	}

	return out
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
