// Package parser implements the grammar-driven recursive-descent parser for
// weft documents. Each production is a function of the token stream and the
// node arena; recursion depth mirrors the nesting depth of the source text.
package parser

import (
	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/lexer"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser consumes tokens from a mode-switching lexer and builds nodes into
// an arena. Invariants:
//   - Lookahead: every choice point is resolved by a single Peek classified
//     into FIRST-set membership. There is no backtracking.
//   - Arena discipline: node links are handles; after any call that parses a
//     subnode, a previously fetched parent node must be re-fetched by handle
//     before being read or written.
//   - Errors: parsing is fail-fast. The first structural violation aborts
//     the whole parse; the partially built tree must then be discarded.
type Parser struct {
	lx   *lexer.Lexer
	tree *ast.Tree

	filename string
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:       lexer.New(input),
		tree:     ast.NewTree(),
		filename: cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	return p
}

// Tree returns the arena the parser builds into. It is only meaningful
// after ParseDocument returned without error.
func (p *Parser) Tree() *ast.Tree {
	return p.tree
}

// ParseDocument parses a whole document: statements until end of input. It
// returns the root Document handle. Parsing depth follows source nesting
// with no depth guard; pathologically nested input exhausts the stack.
func (p *Parser) ParseDocument() (ast.NodeID, error) {
	node := p.tree.Add(&ast.Document{Pos: p.peek().Span})

	for p.peek().Type != lexer.EOF {
		stmt, err := p.statement()
		if err != nil {
			return ast.None, err
		}

		doc := ast.Get[*ast.Document](p.tree, node)
		doc.Stmts = append(doc.Stmts, stmt)
	}

	return node, nil
}

// statement := FnDecl | VarDecl | DropStmt | PrefixBlock | Expression
func (p *Parser) statement() (ast.NodeID, error) {
	lookahead := p.peek()

	switch {
	case lookahead.Type == lexer.LET:
		return p.letDecl()
	case lookahead.Type == lexer.VAR:
		return p.varDecl()
	case lookahead.Type == lexer.DROP:
		return p.dropStmt()
	case lookahead.Type == lexer.PREFIX:
		return p.prefixBlock()
	case isExprStart(lookahead.Type):
		return p.expression()
	}

	return ast.None, p.errorAt(lookahead.Span, "expecting a statement")
}

func (p *Parser) peek() lexer.Token {
	return p.lx.Peek(lexer.ModeNormal)
}

func (p *Parser) advance() lexer.Token {
	return p.lx.Advance(lexer.ModeNormal)
}
