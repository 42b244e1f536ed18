package ast

import (
	"fmt"
	"io"
	"strings"
)

// Sprint renders the subtree at id as a stable s-expression, one form per
// node. Used by the CLI dump and by tests.
func Sprint(t *Tree, id NodeID) string {
	var b strings.Builder
	Fprint(&b, t, id)
	return b.String()
}

// Fprint writes the s-expression rendering of the subtree at id to w.
func Fprint(w io.Writer, t *Tree, id NodeID) {
	if id == None {
		fmt.Fprint(w, "()")
		return
	}

	switch n := t.Node(id).(type) {
	case *Document:
		fmt.Fprint(w, "(document")
		printChildren(w, t, n.Stmts)
		fmt.Fprint(w, ")")

	case *Fn:
		fmt.Fprintf(w, "(fn %s (", n.Name)
		fmt.Fprint(w, strings.Join(n.Params, " "))
		fmt.Fprint(w, ") ")
		Fprint(w, t, n.Body)
		fmt.Fprint(w, ")")

	case *Var:
		fmt.Fprintf(w, "(var %s ", n.Name)
		Fprint(w, t, n.Body)
		fmt.Fprint(w, ")")

	case *Drop:
		fmt.Fprint(w, "(drop ")
		Fprint(w, t, n.Call)
		fmt.Fprint(w, ")")

	case *Pre:
		fmt.Fprint(w, "(prefix")
		printChildren(w, t, n.Exprs)
		printChildren(w, t, n.Stmts)
		fmt.Fprint(w, ")")

	case *Block:
		fmt.Fprint(w, "(block")
		printChildren(w, t, n.Stmts)
		fmt.Fprint(w, " ")
		Fprint(w, t, n.Tail)
		fmt.Fprint(w, ")")

	case *Map:
		fmt.Fprint(w, "(map ")
		Fprint(w, t, n.Test)
		for _, c := range n.Cases {
			fmt.Fprint(w, " (case ")
			Fprint(w, t, c.Arm)
			fmt.Fprint(w, " ")
			Fprint(w, t, c.Result)
			fmt.Fprint(w, ")")
		}
		if n.Default != None {
			fmt.Fprint(w, " (default ")
			Fprint(w, t, n.Default)
			fmt.Fprint(w, ")")
		}
		fmt.Fprint(w, ")")

	case *FnInvoke:
		fmt.Fprintf(w, "(call %s", n.Name)
		printChildren(w, t, n.Args)
		fmt.Fprint(w, ")")

	case *Intrinsic:
		fmt.Fprintf(w, "(intrinsic %s", n.Kind)
		printChildren(w, t, n.Args)
		fmt.Fprint(w, ")")

	case *Codeify:
		fmt.Fprint(w, "(codeify ")
		Fprint(w, t, n.Expr)
		fmt.Fprint(w, ")")

	case *String:
		fmt.Fprintf(w, "(string %q)", n.Bytes)

	case *Concat:
		fmt.Fprint(w, "(cat ")
		Fprint(w, t, n.LHS)
		fmt.Fprint(w, " ")
		Fprint(w, t, n.RHS)
		fmt.Fprint(w, ")")

	default:
		fmt.Fprintf(w, "(?%d)", id)
	}
}

func printChildren(w io.Writer, t *Tree, ids []NodeID) {
	for _, id := range ids {
		fmt.Fprint(w, " ")
		Fprint(w, t, id)
	}
}
