package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a thin facade over *sitter.Node. The rest of the engine
// (internal/discovery, internal/operators) only ever sees this type, never
// sitter.Node, so grammar details stay confined to this package.
type Node struct {
	raw    *sitter.Node
	source []byte
}

// IsNil reports whether the wrapped node is absent (e.g. Child past
// ChildCount, or a tree that failed to produce a root).
func (n Node) IsNil() bool {
	return n.raw == nil
}

// Kind is the grammar's node type tag, e.g. "binary_operator", "call".
func (n Node) Kind() string {
	if n.raw == nil {
		return ""
	}

	return n.raw.Type()
}

// StartByte and EndByte give the half-open byte range of the node within
// the source this tree was parsed from.
func (n Node) StartByte() uint32 {
	if n.raw == nil {
		return 0
	}

	return n.raw.StartByte()
}

func (n Node) EndByte() uint32 {
	if n.raw == nil {
		return 0
	}

	return n.raw.EndByte()
}

// StartLine and StartColumn are 1-indexed human coordinates for display,
// matching Mutation's line/column convention.
func (n Node) StartLine() int {
	if n.raw == nil {
		return 0
	}

	return int(n.raw.StartPoint().Row) + 1
}

func (n Node) StartColumn() int {
	if n.raw == nil {
		return 0
	}

	return int(n.raw.StartPoint().Column) + 1
}

// ChildCount is the number of named+anonymous children.
func (n Node) ChildCount() int {
	if n.raw == nil {
		return 0
	}

	return int(n.raw.ChildCount())
}

// Child returns the i-th child, or the nil Node if out of range.
func (n Node) Child(i int) Node {
	if n.raw == nil || i < 0 || i >= int(n.raw.ChildCount()) {
		return Node{}
	}

	return Node{raw: n.raw.Child(i), source: n.source}
}

// Children materializes all children as a slice, for callers that want to
// range over them rather than index.
func (n Node) Children() []Node {
	count := n.ChildCount()
	out := make([]Node, count)

	for i := 0; i < count; i++ {
		out[i] = n.Child(i)
	}

	return out
}

// Content returns the exact source bytes this node spans.
func (n Node) Content() string {
	if n.raw == nil {
		return ""
	}

	return string(n.source[n.raw.StartByte():n.raw.EndByte()])
}

// Walk calls visit for every node in the subtree rooted at n, depth-first,
// pre-order. visit returning false skips that node's children.
func (n Node) Walk(visit func(Node) bool) {
	if n.raw == nil {
		return
	}

	if !visit(n) {
		return
	}

	for _, child := range n.Children() {
		child.Walk(visit)
	}
}

// Tree is a parsed syntax tree plus the source bytes it was parsed from.
type Tree struct {
	raw    *sitter.Tree
	Source []byte
}

// RootNode returns the tree's root Node.
func (t *Tree) RootNode() Node {
	if t.raw == nil {
		return Node{}
	}

	return Node{raw: t.raw.RootNode(), source: t.Source}
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.raw != nil {
		t.raw.Close()
	}
}
