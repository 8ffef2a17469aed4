// Package schematree models a database schema as a rooted tree of named
// items (schema, table, column) and supports pre/post-order traversal and
// minimal-subtree search.
package schematree

import (
	"fmt"
	"io"
	"strings"
)

// rootID addresses the unlabeled sentinel root. It exists in every tree
// and is never printed.
const rootID = 0

type node struct {
	name     string
	parent   int
	children []int
}

// Tree is an arena of nodes addressed by stable indices. Every non-root
// node has exactly one parent and children keep insertion order, so the
// structure is acyclic by construction.
type Tree struct {
	nodes []node
}

// New returns a tree holding only the sentinel root.
func New() *Tree {
	return &Tree{nodes: []node{{parent: -1}}}
}

// Root returns the index of the sentinel root.
func (t *Tree) Root() int { return rootID }

// Add inserts a named node under parent and returns its index.
func (t *Tree) Add(parent int, name string) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{name: name, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Name returns the name stored at id.
func (t *Tree) Name(id int) string { return t.nodes[id].name }

// Children returns the ordered child indices of id.
func (t *Tree) Children(id int) []int { return t.nodes[id].children }

// Len returns the number of nodes excluding the sentinel root.
func (t *Tree) Len() int { return len(t.nodes) - 1 }

// depth counts ancestors up to and excluding the root, so direct children
// of the root are at depth 0.
func (t *Tree) depth(id int) int {
	d := -1
	for id != rootID {
		id = t.nodes[id].parent
		d++
	}
	return d
}

// ancestors returns the ancestor chain of id ordered root-first,
// excluding the sentinel root and id itself.
func (t *Tree) ancestors(id int) []int {
	var chain []int
	for p := t.nodes[id].parent; p != rootID; p = t.nodes[p].parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Print writes the tree in pre-order, each node indented by four spaces
// per level below the root. The root contributes no line and no
// indentation.
func (t *Tree) Print(w io.Writer) {
	var visit func(id int)
	visit = func(id int) {
		if id != rootID {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", 4*t.depth(id)), t.nodes[id].name)
		}
		for _, child := range t.nodes[id].children {
			visit(child)
		}
	}
	visit(rootID)
}

// SubtreeMatching returns the minimal tree containing every node accepted
// by the matcher plus all of its ancestors, so a matching column still
// shows its schema and table path. Node data is copied; the result never
// aliases the receiver. The operation is idempotent: filtering a filtered
// tree with the same matcher returns an equal tree.
func (t *Tree) SubtreeMatching(m *Matcher) *Tree {
	out := New()
	// source index -> result index; the root maps to itself.
	mapping := map[int]int{rootID: rootID}
	insert := func(id int) {
		if _, ok := mapping[id]; ok {
			return
		}
		mapping[id] = out.Add(mapping[t.nodes[id].parent], t.nodes[id].name)
	}
	// Post-order, so a node's descendants are evaluated before its own
	// ancestors get inserted on the node's behalf.
	var visit func(id int)
	visit = func(id int) {
		for _, child := range t.nodes[id].children {
			visit(child)
		}
		if id == rootID || !m.Matches(t.nodes[id].name) {
			return
		}
		for _, ancestor := range t.ancestors(id) {
			insert(ancestor)
		}
		insert(id)
	}
	visit(rootID)
	return out
}
