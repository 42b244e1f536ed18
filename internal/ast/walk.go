package ast

// Walk traverses the tree depth-first starting from id, calling fn for each
// node. If fn returns false, Walk stops traversing that branch. The None
// sentinel is never visited.
func Walk(t *Tree, id NodeID, fn func(NodeID, Node) bool) {
	if id == None {
		return
	}

	n := t.Node(id)
	if n == nil || !fn(id, n) {
		return
	}

	switch n := n.(type) {
	case *Document:
		for _, stmt := range n.Stmts {
			Walk(t, stmt, fn)
		}

	case *Fn:
		Walk(t, n.Body, fn)

	case *Var:
		Walk(t, n.Body, fn)

	case *Drop:
		Walk(t, n.Call, fn)

	case *Pre:
		for _, expr := range n.Exprs {
			Walk(t, expr, fn)
		}
		for _, stmt := range n.Stmts {
			Walk(t, stmt, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(t, stmt, fn)
		}
		Walk(t, n.Tail, fn)

	case *Map:
		Walk(t, n.Test, fn)
		for _, c := range n.Cases {
			Walk(t, c.Arm, fn)
			Walk(t, c.Result, fn)
		}
		Walk(t, n.Default, fn)

	case *FnInvoke:
		for _, arg := range n.Args {
			Walk(t, arg, fn)
		}

	case *Intrinsic:
		for _, arg := range n.Args {
			Walk(t, arg, fn)
		}

	case *Codeify:
		Walk(t, n.Expr, fn)
	}
}
