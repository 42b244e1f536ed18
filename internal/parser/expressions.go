package parser

import (
	"github.com/weft-lang/weft/internal/ast"
	"github.com/weft-lang/weft/internal/lexer"
)

// expression := exprAtom ('..' expression)?
//
// Concatenation is right-associative and lowest-precedence: the left atom is
// parsed first and the recursion happens on the right, so a..b..c groups as
// a..(b..c).
func (p *Parser) expression() (ast.NodeID, error) {
	var (
		lhs ast.NodeID
		err error
	)

	lookahead := p.peek()

	switch {
	case isCallStart(lookahead.Type):
		lhs, err = p.fnInvoke()
	case isStringStart(lookahead.Type):
		lhs, err = p.stringLit()
	case lookahead.Type == lexer.LBRACE:
		lhs, err = p.block()
	case lookahead.Type == lexer.MAP:
		lhs, err = p.mapExpr()
	case lookahead.Type == lexer.EQUAL:
		lhs, err = p.codeify()
	default:
		return ast.None, p.errorAt(lookahead.Span, "expecting an expression")
	}
	if err != nil {
		return ast.None, err
	}

	if p.peek().Type == lexer.CAT {
		node := p.tree.Add(&ast.Concat{LHS: ast.None, RHS: ast.None, Pos: p.peek().Span})

		p.advance() // ..

		rhs, err := p.expression()
		if err != nil {
			return ast.None, err
		}

		cat := ast.Get[*ast.Concat](p.tree, node)
		cat.LHS = lhs
		cat.RHS = rhs

		return node, nil
	}

	return lhs, nil
}

// fnInvoke parses `callee` or `callee(arg, …)`. After the generic invocation
// node is built, an intrinsic callee converts the node in place: the handle
// is unchanged, so references taken before the replacement (for example by a
// drop statement) still resolve.
func (p *Parser) fnInvoke() (ast.NodeID, error) {
	callee := p.peek()
	if !isCallStart(callee.Type) {
		return ast.None, p.errorAt(callee.Span, "expecting an expression")
	}

	node := p.tree.Add(&ast.FnInvoke{Pos: callee.Span})
	p.advance()

	if p.peek().Type == lexer.LPAREN {
		p.advance()

		for isExprStart(p.peek().Type) {
			arg, err := p.expression()
			if err != nil {
				return ast.None, err
			}

			fn := ast.Get[*ast.FnInvoke](p.tree, node)
			fn.Args = append(fn.Args, arg)

			next := p.peek()
			if next.Type == lexer.COMMA {
				p.advance()
				if !isExprStart(p.peek().Type) {
					return ast.None, p.errorAt(p.peek().Span, "expecting an expression")
				}
				continue
			}
			if next.Type != lexer.RPAREN {
				return ast.None, p.errorAt(next.Span, "expecting comma to follow parameter name")
			}
			break
		}

		if p.peek().Type != lexer.RPAREN {
			return ast.None, p.errorAt(p.peek().Span, "expecting ')' to follow argument list")
		}
		p.advance()
	}

	if kind, ok := intrinsicKinds[callee.Type]; ok {
		args := ast.Get[*ast.FnInvoke](p.tree, node).Args
		p.tree.Replace(node, &ast.Intrinsic{
			Kind: kind,
			Name: callee.Raw,
			Args: args,
			Pos:  callee.Span,
		})
	} else {
		ast.Get[*ast.FnInvoke](p.tree, node).Name = callee.Raw
	}

	return node, nil
}

// block parses `{ stmts… tail }`. The only accepted termination is a final
// bare-expression statement, which is reclassified as the block's trailing
// expression and removed from the statement list.
func (p *Parser) block() (ast.NodeID, error) {
	open := p.peek()
	node := p.tree.Add(&ast.Block{Tail: ast.None, Pos: open.Span})

	p.advance() // {

	// lastIsExpr tracks whether the most recently parsed statement was a
	// bare expression, so it can be promoted to the trailing expression once
	// the statement loop ends.
	lastIsExpr := false

	for isStmtStart(p.peek().Type) {
		lastIsExpr = isExprStart(p.peek().Type)

		stmt, err := p.statement()
		if err != nil {
			return ast.None, err
		}

		blk := ast.Get[*ast.Block](p.tree, node)
		blk.Stmts = append(blk.Stmts, stmt)
	}

	if !isExprStart(p.peek().Type) && lastIsExpr {
		blk := ast.Get[*ast.Block](p.tree, node)
		blk.Tail = blk.Stmts[len(blk.Stmts)-1]
		blk.Stmts = blk.Stmts[:len(blk.Stmts)-1]
	} else {
		return ast.None, p.errorAt(p.peek().Span, "expecting a trailing expression at the end of a block")
	}

	// Arrow syntax directly inside a plain block means the author wrote map
	// arms without the map keyword and test expression.
	if p.peek().Type == lexer.ARROW {
		return ast.None, p.errorAt(open.Span, "map is missing test expression")
	}

	if p.peek().Type != lexer.RBRACE {
		return ast.None, p.errorAt(p.peek().Span, "block is unterminated")
	}
	p.advance()

	return node, nil
}

// mapExpr parses `map test { arm -> result … * -> default }`. Arm order is
// preserved; evaluation is first-match-wins in a later stage. Without a `*`
// arm the default slot is the None sentinel.
func (p *Parser) mapExpr() (ast.NodeID, error) {
	p.advance() // map

	node := p.tree.Add(&ast.Map{Test: ast.None, Default: ast.None, Pos: p.peek().Span})

	if !isExprStart(p.peek().Type) {
		return ast.None, p.errorAt(p.peek().Span, "expected an expression to follow `map` keyword")
	}

	test, err := p.expression()
	if err != nil {
		return ast.None, err
	}
	ast.Get[*ast.Map](p.tree, node).Test = test

	if p.peek().Type != lexer.LBRACE {
		return ast.None, p.errorAt(p.peek().Span, "expected '{'")
	}
	p.advance()

	for isExprStart(p.peek().Type) {
		arm, err := p.expression()
		if err != nil {
			return ast.None, err
		}

		if p.peek().Type != lexer.ARROW {
			return ast.None, p.errorAt(p.peek().Span, "expected '->'")
		}
		p.advance()

		if !isExprStart(p.peek().Type) {
			return ast.None, p.errorAt(p.peek().Span, "expecting an expression")
		}

		result, err := p.expression()
		if err != nil {
			return ast.None, err
		}

		m := ast.Get[*ast.Map](p.tree, node)
		m.Cases = append(m.Cases, ast.MapCase{Arm: arm, Result: result})
	}

	if p.peek().Type == lexer.STAR {
		p.advance()

		if p.peek().Type != lexer.ARROW {
			return ast.None, p.errorAt(p.peek().Span, "expected '->'")
		}
		p.advance()

		if !isExprStart(p.peek().Type) {
			return ast.None, p.errorAt(p.peek().Span, "expecting an expression")
		}

		deflt, err := p.expression()
		if err != nil {
			return ast.None, err
		}
		ast.Get[*ast.Map](p.tree, node).Default = deflt
	}

	if p.peek().Type != lexer.RBRACE {
		return ast.None, p.errorAt(p.peek().Span, "expected '}'")
	}
	p.advance()

	return node, nil
}

// codeify parses `= expr`.
func (p *Parser) codeify() (ast.NodeID, error) {
	eq := p.advance() // =

	if !isExprStart(p.peek().Type) {
		return ast.None, p.errorAt(p.peek().Span, "expecting an expression to follow =")
	}

	node := p.tree.Add(&ast.Codeify{Expr: ast.None, Pos: eq.Span})

	expr, err := p.expression()
	if err != nil {
		return ast.None, err
	}

	ast.Get[*ast.Codeify](p.tree, node).Expr = expr

	return node, nil
}
