package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders diagnostics with a source snippet and a caret line.
type Formatter struct {
	out io.Writer

	severityColors map[Severity]*color.Color
	gutter         *color.Color
	bold           *color.Color
}

// NewFormatter creates a formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out: out,
		severityColors: map[Severity]*color.Color{
			SeverityError:   color.New(color.FgRed, color.Bold),
			SeverityWarning: color.New(color.FgYellow, color.Bold),
			SeverityNote:    color.New(color.FgCyan, color.Bold),
		},
		gutter: color.New(color.FgBlue, color.Bold),
		bold:   color.New(color.Bold),
	}
}

// Format renders a diagnostic. src is the source text the diagnostic's span
// points into; pass "" to omit the snippet.
func (f *Formatter) Format(d Diagnostic, src string) {
	sev := f.severityColors[d.Severity]
	if sev == nil {
		sev = f.bold
	}

	header := string(d.Severity)
	if d.Code != "" {
		header = fmt.Sprintf("%s[%s]", d.Severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s%s %s\n", sev.Sprint(header), f.bold.Sprint(":"), f.bold.Sprint(d.Message))

	if !d.Span.IsValid() {
		return
	}

	fmt.Fprintf(f.out, "  %s %s\n", f.gutter.Sprint("-->"), d.Span)

	if src == "" {
		return
	}

	lineText, ok := sourceLine(src, d.Span.Line)
	if !ok {
		return
	}

	lineNo := fmt.Sprintf("%d", d.Span.Line)
	pad := strings.Repeat(" ", len(lineNo))

	fmt.Fprintf(f.out, "%s %s\n", pad, f.gutter.Sprint("|"))
	fmt.Fprintf(f.out, "%s %s %s\n", f.gutter.Sprint(lineNo), f.gutter.Sprint("|"), lineText)

	caretCol := d.Span.Column
	if caretCol < 1 {
		caretCol = 1
	}
	width := d.Span.End - d.Span.Start
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(f.out, "%s %s %s%s\n",
		pad,
		f.gutter.Sprint("|"),
		strings.Repeat(" ", caretCol-1),
		sev.Sprint(strings.Repeat("^", width)))
}

func sourceLine(src string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}
