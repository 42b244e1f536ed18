package parser

import (
	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/lexer"
)

// letDecl parses `let name(params…) body`. The parameter list is optional;
// the body is exactly one expression.
func (p *Parser) letDecl() (ast.NodeID, error) {
	node := p.tree.Add(&ast.Fn{Body: ast.None, Pos: p.peek().Span})

	p.advance() // let

	name := p.peek()
	if name.Type != lexer.IDENT {
		return ast.None, p.errorAt(name.Span, "function declaration does not have a name")
	}
	p.advance()

	ast.Get[*ast.Fn](p.tree, node).Name = name.Raw

	if p.peek().Type == lexer.LPAREN {
		params, err := p.paramList()
		if err != nil {
			return ast.None, err
		}
		ast.Get[*ast.Fn](p.tree, node).Params = params
	}

	body, err := p.expression()
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.Fn](p.tree, node).Body = body

	return node, nil
}

// varDecl parses `var name body`. Same as letDecl but never takes a
// parameter list.
func (p *Parser) varDecl() (ast.NodeID, error) {
	node := p.tree.Add(&ast.Var{Body: ast.None, Pos: p.peek().Span})

	p.advance() // var

	name := p.peek()
	if name.Type != lexer.IDENT {
		return ast.None, p.errorAt(name.Span, "variable declaration does not have a name")
	}
	p.advance()

	ast.Get[*ast.Var](p.tree, node).Name = name.Raw

	body, err := p.expression()
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.Var](p.tree, node).Body = body

	return node, nil
}

// paramList parses `( a, b, c )`. The opening paren is the current token.
// Parameters must be unique plain identifiers; reserved names and trailing
// commas are rejected.
func (p *Parser) paramList() ([]string, error) {
	p.advance() // (

	var params []string
	seen := make(map[string]struct{})

	if p.peek().Type != lexer.RPAREN {
		for {
			tok := p.peek()

			if lexer.IsReserved(tok.Type) {
				return nil, p.errorf(tok.Span, "parameter name '%s' conflicts with keyword", tok.Raw)
			}
			if tok.Type != lexer.IDENT {
				return nil, p.errorAt(tok.Span, "expecting a parameter name")
			}
			p.advance()

			if _, ok := seen[tok.Raw]; ok {
				return nil, p.errorf(tok.Span, "duplicate parameter name '%s'", tok.Raw)
			}
			seen[tok.Raw] = struct{}{}
			params = append(params, tok.Raw)

			next := p.peek()
			if next.Type == lexer.COMMA {
				p.advance()
				continue
			}
			if next.Type != lexer.RPAREN {
				return nil, p.errorAt(next.Span, "expecting comma to follow parameter name")
			}
			break
		}
	}

	if p.peek().Type != lexer.RPAREN {
		return nil, p.errorAt(p.peek().Span, "expecting ')' to follow argument list")
	}
	p.advance()

	return params, nil
}

// dropStmt parses `drop target(…)`. The target must be a function
// invocation, not an arbitrary expression.
func (p *Parser) dropStmt() (ast.NodeID, error) {
	node := p.tree.Add(&ast.Drop{Call: ast.None, Pos: p.peek().Span})

	p.advance() // drop

	call, err := p.fnInvoke()
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.Drop](p.tree, node).Call = call

	return node, nil
}

// prefixBlock parses `prefix expr { stmts… }`. At least one statement is
// required inside the braces.
func (p *Parser) prefixBlock() (ast.NodeID, error) {
	node := p.tree.Add(&ast.Pre{Pos: p.peek().Span})

	p.advance() // prefix

	if !isExprStart(p.peek().Type) {
		return ast.None, p.errorAt(p.peek().Span, "prefix does not have a name")
	}

	expr, err := p.expression()
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.Pre](p.tree, node).Exprs = []ast.NodeID{expr}

	if p.peek().Type != lexer.LBRACE {
		return ast.None, p.errorAt(p.peek().Span, "expecting '{' to follow prefix expression")
	}
	p.advance()

	// Statements are parsed one at a time and committed by handle, so the
	// Pre node is re-fetched after every recursive parse.
	for {
		stmt, err := p.statement()
		if err != nil {
			return ast.None, err
		}

		pre := ast.Get[*ast.Pre](p.tree, node)
		pre.Stmts = append(pre.Stmts, stmt)

		if !isStmtStart(p.peek().Type) {
			break
		}
	}

	if p.peek().Type != lexer.RBRACE {
		return ast.None, p.errorAt(p.peek().Span, "prefix is unterminated")
	}
	p.advance()

	return node, nil
}
