package ast

import "github.com/weft-lang/weft/internal/lexer"

// NodeID is a stable handle into a Tree. Handles stay valid for the lifetime
// of the tree: nodes are never removed, and Replace swaps a slot's content
// without changing its handle.
type NodeID int32

// None is the "no node" sentinel, used for an absent map default case.
const None NodeID = -1

// Node represents any syntax node with an associated source span.
type Node interface {
	Span() lexer.Span
	node()
}

// Tree is the append-only arena that owns every node of a parse. All
// cross-node links are NodeIDs, never direct references; code that parses a
// child node must re-fetch its parent by handle afterwards rather than hold
// on to a previously obtained node value.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make([]Node, 0, 64)}
}

// Add appends a node and returns its handle.
func (t *Tree) Add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node for a handle, or nil for None.
func (t *Tree) Node(id NodeID) Node {
	if id == None {
		return nil
	}
	return t.nodes[id]
}

// Replace overwrites the node stored at id, preserving the handle. The
// parser uses this to convert a FnInvoke into an Intrinsic in place so that
// earlier references to the handle remain valid.
func (t *Tree) Replace(id NodeID, n Node) {
	t.nodes[id] = n
}

// Len reports how many nodes the tree holds.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Get fetches the node for a handle as a concrete variant. It returns the
// zero value if the node is absent or of a different variant.
func Get[T Node](t *Tree, id NodeID) T {
	n, _ := t.Node(id).(T)
	return n
}

// Document is the root node: an ordered list of top-level statements.
type Document struct {
	Stmts []NodeID
	Pos   lexer.Span
}

// Fn is a function declaration: `let name(params…) body`.
type Fn struct {
	Name   string
	Params []string
	Body   NodeID
	Pos    lexer.Span
}

// Var is a variable declaration: `var name body`.
type Var struct {
	Name string
	Body NodeID
	Pos  lexer.Span
}

// Drop discards a function: `drop target(…)`. Call always refers to a
// FnInvoke or Intrinsic node.
type Drop struct {
	Call NodeID
	Pos  lexer.Span
}

// Pre is a prefix block: `prefix expr { stmts… }`.
type Pre struct {
	Exprs []NodeID
	Stmts []NodeID
	Pos   lexer.Span
}

// Block is a scoped expression: `{ stmts… tail }`. Tail is mandatory and is
// never duplicated in Stmts.
type Block struct {
	Stmts []NodeID
	Tail  NodeID
	Pos   lexer.Span
}

// MapCase is one `arm -> result` pair. Source order is significant: a later
// stage evaluates arms first-match-wins.
type MapCase struct {
	Arm    NodeID
	Result NodeID
}

// Map is a pattern expression: `map test { arm -> result … * -> default }`.
// Default is None when no `*` arm is present.
type Map struct {
	Test    NodeID
	Cases   []MapCase
	Default NodeID
	Pos     lexer.Span
}

// FnInvoke is a call to a user-defined function, resolved by name later.
type FnInvoke struct {
	Name string
	Args []NodeID
	Pos  lexer.Span
}

// IntrinsicKind identifies a built-in operation recognized at parse time.
type IntrinsicKind int

const (
	IntrinsicRun IntrinsicKind = iota
	IntrinsicEval
	IntrinsicFile
	IntrinsicAssert
	IntrinsicPipe
	IntrinsicError
	IntrinsicLog
	IntrinsicEscape
	IntrinsicSource
	IntrinsicSlice
	IntrinsicFind
	IntrinsicLength
)

var intrinsicNames = [...]string{
	IntrinsicRun:    "run",
	IntrinsicEval:   "eval",
	IntrinsicFile:   "file",
	IntrinsicAssert: "assert",
	IntrinsicPipe:   "pipe",
	IntrinsicError:  "error",
	IntrinsicLog:    "log",
	IntrinsicEscape: "escape",
	IntrinsicSource: "source",
	IntrinsicSlice:  "slice",
	IntrinsicFind:   "find",
	IntrinsicLength: "length",
}

func (k IntrinsicKind) String() string {
	if int(k) < len(intrinsicNames) {
		return intrinsicNames[k]
	}
	return "unknown"
}

// Intrinsic is a call to a built-in, produced by in-place replacement of a
// FnInvoke whose callee matched the reserved intrinsic set.
type Intrinsic struct {
	Kind IntrinsicKind
	Name string
	Args []NodeID
	Pos  lexer.Span
}

// Codeify wraps `= expr`: the expression's result is re-parsed as code by a
// later stage.
type Codeify struct {
	Expr NodeID
	Pos  lexer.Span
}

// String is a fully decoded literal. Bytes holds the final value after
// escape processing and normalization.
type String struct {
	Bytes []byte
	Pos   lexer.Span
}

// Concat joins two expressions with `..`. The operator is right-associative,
// so `a..b..c` parses with a Concat of b and c on the right.
type Concat struct {
	LHS NodeID
	RHS NodeID
	Pos lexer.Span
}

func (n *Document) Span() lexer.Span  { return n.Pos }
func (n *Fn) Span() lexer.Span        { return n.Pos }
func (n *Var) Span() lexer.Span       { return n.Pos }
func (n *Drop) Span() lexer.Span      { return n.Pos }
func (n *Pre) Span() lexer.Span       { return n.Pos }
func (n *Block) Span() lexer.Span     { return n.Pos }
func (n *Map) Span() lexer.Span       { return n.Pos }
func (n *FnInvoke) Span() lexer.Span  { return n.Pos }
func (n *Intrinsic) Span() lexer.Span { return n.Pos }
func (n *Codeify) Span() lexer.Span   { return n.Pos }
func (n *String) Span() lexer.Span    { return n.Pos }
func (n *Concat) Span() lexer.Span    { return n.Pos }

func (*Document) node()  {}
func (*Fn) node()        {}
func (*Var) node()       {}
func (*Drop) node()      {}
func (*Pre) node()       {}
func (*Block) node()     {}
func (*Map) node()       {}
func (*FnInvoke) node()  {}
func (*Intrinsic) node() {}
func (*Codeify) node()   {}
func (*String) node()    {}
func (*Concat) node()    {}
