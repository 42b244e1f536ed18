package diag_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-lang/weft/internal/diag"
)

func TestSpanString(t *testing.T) {
	assert.Equal(t, "doc.wf:2:7", diag.Span{Filename: "doc.wf", Line: 2, Column: 7}.String())
	assert.Equal(t, "2:7", diag.Span{Line: 2, Column: 7}.String())
}

func TestSpanIsValid(t *testing.T) {
	assert.True(t, diag.Span{Line: 1, Column: 1}.IsValid())
	assert.False(t, diag.Span{}.IsValid())
}

func TestDiagnosticError(t *testing.T) {
	d := diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "expecting a statement",
		Span:     diag.Span{Filename: "doc.wf", Line: 3, Column: 1},
	}

	assert.Equal(t, "doc.wf:3:1: error: expecting a statement", d.Error())
}

func TestFormatterSnippet(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	src := "var x \"v\"\nbroken }\n"
	d := diag.Diagnostic{
		Severity: diag.SeverityError,
		Code:     diag.CodeParseSyntax,
		Message:  "expecting an expression",
		Span:     diag.Span{Filename: "doc.wf", Line: 2, Column: 8, Start: 17, End: 18},
	}

	var buf bytes.Buffer
	diag.NewFormatter(&buf).Format(d, src)
	out := buf.String()

	require.Contains(t, out, "error[PARSE_SYNTAX]: expecting an expression")
	assert.Contains(t, out, "--> doc.wf:2:8")
	assert.Contains(t, out, "2 | broken }")
	assert.Contains(t, out, "^")
}

func TestFormatterWithoutSource(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	d := diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "boom",
		Span:     diag.Span{Line: 1, Column: 1},
	}

	var buf bytes.Buffer
	diag.NewFormatter(&buf).Format(d, "")

	assert.Contains(t, buf.String(), "error: boom")
	assert.Contains(t, buf.String(), "--> 1:1")
}
