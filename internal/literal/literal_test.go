package literal_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-lang/weft/internal/literal"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   []byte
	}{
		{name: "single byte", digits: "41", want: []byte{0x41}},
		{name: "underscore ignored", digits: "4_1", want: []byte{0x41}},
		{name: "multiple bytes", digits: "dead", want: []byte{0xde, 0xad}},
		{name: "odd digit count pairs from the right", digits: "123", want: []byte{0x01, 0x23}},
		{name: "single digit", digits: "f", want: []byte{0x0f}},
		{name: "uppercase digits", digits: "FF", want: []byte{0xff}},
		{name: "empty", digits: "", want: nil},
		{name: "only underscores", digits: "___", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := literal.DecodeHex(tt.digits)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("DecodeHex(%q) mismatch (-want +got):\n%s", tt.digits, diff)
			}
		})
	}
}

func TestDecodeBin(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   []byte
	}{
		{name: "one byte", digits: "01000001", want: []byte{0x41}},
		{name: "underscore ignored", digits: "0100_0001", want: []byte{0x41}},
		{name: "short run", digits: "101", want: []byte{0x05}},
		{name: "nine bits spill into a second byte", digits: "101000001", want: []byte{0x01, 0x41}},
		{name: "two bytes", digits: "0100000101000010", want: []byte{0x41, 0x42}},
		{name: "empty", digits: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := literal.DecodeBin(tt.digits)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("DecodeBin(%q) mismatch (-want +got):\n%s", tt.digits, diff)
			}
		})
	}
}

func TestParagraph(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed run collapses to one space", in: "a \n\t b", want: "a b"},
		{name: "tabs and newlines become spaces", in: "a\tb\nc", want: "a b c"},
		{name: "leading and trailing stripped once", in: " a  b ", want: "a b"},
		{name: "already normal", in: "a b", want: "a b"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(literal.Paragraph([]byte(tt.in))))
		})
	}
}

func TestCodeDedent(t *testing.T) {
	in := "\n    aaa\n    bbb\n      ccc\n"
	want := "aaa\nbbb\n  ccc"

	got := string(literal.Code([]byte(in)))
	require.Equal(t, want, got)
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing whitespace stripped", in: "a  \n\t", want: "a"},
		{name: "leading stripped through last newline", in: "  \n  \nabc", want: "abc"},
		{name: "no newline strips all leading whitespace", in: "   abc", want: "abc"},
		{name: "extra indent beyond common kept", in: "\n    a\n  b\n      c", want: "  a\nb\n    c"},
		{name: "empty", in: "", want: ""},
		{name: "single line untouched", in: "abc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(literal.Code([]byte(tt.in))))
		})
	}
}

func TestHexDigit(t *testing.T) {
	assert.Equal(t, byte(0), literal.HexDigit('0'))
	assert.Equal(t, byte(9), literal.HexDigit('9'))
	assert.Equal(t, byte(10), literal.HexDigit('a'))
	assert.Equal(t, byte(15), literal.HexDigit('F'))
}

func TestIsWhitespace(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\n', '\r', '\v', '\f'} {
		assert.True(t, literal.IsWhitespace(c), "byte %q", c)
	}
	for _, c := range []byte{'a', '0', '_', 0} {
		assert.False(t, literal.IsWhitespace(c), "byte %q", c)
	}
}
