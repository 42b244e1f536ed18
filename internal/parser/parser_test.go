package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/parser"
)

// parseDoc parses src and returns the tree plus the root document node.
func parseDoc(t *testing.T, src string) (*ast.Tree, *ast.Document) {
	t.Helper()

	p := parser.New(src)
	root, err := p.ParseDocument()
	require.NoError(t, err)

	doc := ast.Get[*ast.Document](p.Tree(), root)
	require.NotNil(t, doc)

	return p.Tree(), doc
}

// parseErr parses src expecting a syntax error and returns it.
func parseErr(t *testing.T, src string) *parser.Error {
	t.Helper()

	p := parser.New(src)
	_, err := p.ParseDocument()
	require.Error(t, err)

	perr, ok := err.(*parser.Error)
	require.True(t, ok, "expected *parser.Error, got %T", err)

	return perr
}

func TestEmptyDocument(t *testing.T) {
	_, doc := parseDoc(t, "")
	assert.Empty(t, doc.Stmts)
}

func TestDocumentStatementOrder(t *testing.T) {
	tree, doc := parseDoc(t, `var a "1" var b "2" var c "3"`)
	require.Len(t, doc.Stmts, 3)

	var names []string
	for _, id := range doc.Stmts {
		v := ast.Get[*ast.Var](tree, id)
		require.NotNil(t, v)
		names = append(names, v.Name)
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestLetDecl(t *testing.T) {
	tree, doc := parseDoc(t, `let greet "hello"`)
	require.Len(t, doc.Stmts, 1)

	fn := ast.Get[*ast.Fn](tree, doc.Stmts[0])
	require.NotNil(t, fn)
	assert.Equal(t, "greet", fn.Name)
	assert.Empty(t, fn.Params)

	body := ast.Get[*ast.String](tree, fn.Body)
	require.NotNil(t, body)
	assert.Equal(t, "hello", string(body.Bytes))
}

func TestLetDeclParams(t *testing.T) {
	tree, doc := parseDoc(t, `let f(a, b) "v"`)

	fn := ast.Get[*ast.Fn](tree, doc.Stmts[0])
	require.NotNil(t, fn)

	if diff := cmp.Diff([]string{"a", "b"}, fn.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestLetDeclEmptyParams(t *testing.T) {
	tree, doc := parseDoc(t, `let f() "v"`)

	fn := ast.Get[*ast.Fn](tree, doc.Stmts[0])
	require.NotNil(t, fn)
	assert.Empty(t, fn.Params)
}

func TestVarDecl(t *testing.T) {
	tree, doc := parseDoc(t, `var x "value"`)

	v := ast.Get[*ast.Var](tree, doc.Stmts[0])
	require.NotNil(t, v)
	assert.Equal(t, "x", v.Name)

	body := ast.Get[*ast.String](tree, v.Body)
	require.NotNil(t, body)
	assert.Equal(t, "value", string(body.Bytes))
}

func TestDropStmt(t *testing.T) {
	tree, doc := parseDoc(t, `drop f("x")`)

	d := ast.Get[*ast.Drop](tree, doc.Stmts[0])
	require.NotNil(t, d)

	call := ast.Get[*ast.FnInvoke](tree, d.Call)
	require.NotNil(t, call)
	assert.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 1)
}

func TestDropIntrinsicKeepsHandle(t *testing.T) {
	// The drop node references the invocation before it is replaced in
	// place; the handle must resolve to the intrinsic afterwards.
	tree, doc := parseDoc(t, `drop run("ls")`)

	d := ast.Get[*ast.Drop](tree, doc.Stmts[0])
	require.NotNil(t, d)

	intr := ast.Get[*ast.Intrinsic](tree, d.Call)
	require.NotNil(t, intr)
	assert.Equal(t, ast.IntrinsicRun, intr.Kind)
	require.Len(t, intr.Args, 1)

	arg := ast.Get[*ast.String](tree, intr.Args[0])
	require.NotNil(t, arg)
	assert.Equal(t, "ls", string(arg.Bytes))
}

func TestPrefixBlock(t *testing.T) {
	tree, doc := parseDoc(t, `prefix "ns_" { let a "1" var b "2" }`)

	pre := ast.Get[*ast.Pre](tree, doc.Stmts[0])
	require.NotNil(t, pre)
	require.Len(t, pre.Exprs, 1)
	require.Len(t, pre.Stmts, 2)

	val := ast.Get[*ast.String](tree, pre.Exprs[0])
	require.NotNil(t, val)
	assert.Equal(t, "ns_", string(val.Bytes))

	assert.NotNil(t, ast.Get[*ast.Fn](tree, pre.Stmts[0]))
	assert.NotNil(t, ast.Get[*ast.Var](tree, pre.Stmts[1]))
}

func TestSprintIntegration(t *testing.T) {
	p := parser.New(`let greet(name) "hello, "..name`)
	root, err := p.ParseDocument()
	require.NoError(t, err)

	want := `(document (fn greet (name) (cat (string "hello, ") (call name))))`
	assert.Equal(t, want, ast.Sprint(p.Tree(), root))
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{name: "let without name", src: `let`, msg: "function declaration does not have a name"},
		{name: "let name is keyword", src: `let map "v"`, msg: "function declaration does not have a name"},
		{name: "var without name", src: `var`, msg: "variable declaration does not have a name"},
		{name: "missing comma", src: `let f(a b) "v"`, msg: "expecting comma to follow parameter name"},
		{name: "trailing comma in params", src: `let f(a,) "v"`, msg: "expecting a parameter name"},
		{name: "reserved parameter", src: `let f(map) "v"`, msg: "parameter name 'map' conflicts with keyword"},
		{name: "intrinsic parameter", src: `let f(run) "v"`, msg: "parameter name 'run' conflicts with keyword"},
		{name: "duplicate parameter", src: `let f(a, a) "v"`, msg: "duplicate parameter name 'a'"},
		{name: "unterminated argument list", src: `f(`, msg: "expecting ')' to follow argument list"},
		{name: "argument list missing comma", src: `f(a`, msg: "expecting comma to follow parameter name"},
		{name: "trailing comma in args", src: `f(a,)`, msg: "expecting an expression"},
		{name: "drop of non-call", src: `drop "x"`, msg: "expecting an expression"},
		{name: "prefix without expression", src: `prefix`, msg: "prefix does not have a name"},
		{name: "prefix missing brace", src: `prefix "p" var x "v"`, msg: "expecting '{' to follow prefix expression"},
		{name: "prefix empty body", src: `prefix "p" { }`, msg: "expecting a statement"},
		{name: "prefix unterminated", src: `prefix "p" { var x "v"`, msg: "prefix is unterminated"},
		{name: "stray closing paren", src: `)`, msg: "expecting a statement"},
		{name: "codeify without expression", src: `=`, msg: "expecting an expression to follow ="},
		{name: "missing body", src: `let f(a) ..`, msg: "expecting an expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.src)
			assert.Equal(t, tt.msg, perr.Message)
		})
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	p := parser.New("var x \nlet", parser.WithFilename("doc.wf"))
	_, err := p.ParseDocument()
	require.Error(t, err)

	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, "doc.wf", perr.Span.Filename)
	assert.Equal(t, 2, perr.Span.Line)
	assert.Contains(t, perr.Error(), "doc.wf:2:")
}

func TestErrorToDiagnostic(t *testing.T) {
	perr := parseErr(t, `let`)

	d := perr.ToDiagnostic()
	assert.Equal(t, perr.Message, d.Message)
	assert.NotEmpty(t, string(d.Severity))
	assert.Equal(t, perr.Span.Line, d.Span.Line)
	assert.Equal(t, perr.Span.Column, d.Span.Column)
}
