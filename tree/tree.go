// File: tree.go
// Title: Formula Tree Arena
// Description: Implements the vertex arena backing the graph view of a
//              formula: conversion from and to the recursive AST,
//              payload relabeling and subtree splicing.

package tree

import (
	"fmt"
	"strings"

	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
)

// Vertex is a stable integer handle for one node of a Tree
type Vertex int

// NoVertex marks the absence of a vertex, such as the parent of the root
const NoVertex Vertex = -1

// Tree is an arena of formula nodes connected by ordered edges. The
// zero value is not usable; build trees with FromRecursiveAST.
type Tree struct {
	nodes    []ast.Node // Payload per vertex, nil when removed
	children [][]Vertex // Ordered child handles, edge position = operand position
	parents  []Vertex   // Parent handle per vertex
	root     Vertex
	count    int // Live vertex count
}

// FromRecursiveAST builds the graph view of a recursive AST. Every node
// must implement either ast.Terminal or ast.Operator; anything else
// yields a structure error.
func FromRecursiveAST(root ast.Node) (*Tree, error) {
	t := &Tree{root: NoVertex}

	v, err := t.insert(root)
	if err != nil {
		return nil, err
	}
	t.root = v

	return t, nil
}

// insert adds node and its operands to the arena and returns the
// vertex of node
func (t *Tree) insert(node ast.Node) (Vertex, error) {
	switch n := node.(type) {
	case ast.Terminal:
		return t.add(n), nil

	case ast.Operator:
		v := t.add(n)
		for _, operand := range n.Operands() {
			child, err := t.insert(operand)
			if err != nil {
				return NoVertex, err
			}
			t.children[v] = append(t.children[v], child)
			t.parents[child] = v
		}
		return v, nil

	default:
		return NoVertex, lterror.Newf("node %T is neither terminal nor operator", node).
			WithCode(lterror.CodeStructure).
			WithOperation("tree.FromRecursiveAST")
	}
}

// add appends a fresh vertex carrying node
func (t *Tree) add(node ast.Node) Vertex {
	v := Vertex(len(t.nodes))
	t.nodes = append(t.nodes, node)
	t.children = append(t.children, nil)
	t.parents = append(t.parents, NoVertex)
	t.count++
	return v
}

// remove detaches v from the arena. The handle is never reused.
func (t *Tree) remove(v Vertex) {
	t.nodes[v] = nil
	t.children[v] = nil
	t.parents[v] = NoVertex
	t.count--
}

// live reports whether v is a valid, non-removed vertex
func (t *Tree) live(v Vertex) bool {
	return v >= 0 && int(v) < len(t.nodes) && t.nodes[v] != nil
}

// Root returns the root vertex
func (t *Tree) Root() Vertex {
	return t.root
}

// Node returns the payload of v, or nil for a removed or invalid handle
func (t *Tree) Node(v Vertex) ast.Node {
	if !t.live(v) {
		return nil
	}
	return t.nodes[v]
}

// Children returns the ordered child handles of v. The slice is a copy
// and safe to keep.
func (t *Tree) Children(v Vertex) []Vertex {
	if !t.live(v) || len(t.children[v]) == 0 {
		return nil
	}
	out := make([]Vertex, len(t.children[v]))
	copy(out, t.children[v])
	return out
}

// Parent returns the parent handle of v, or NoVertex for the root
func (t *Tree) Parent(v Vertex) Vertex {
	if !t.live(v) {
		return NoVertex
	}
	return t.parents[v]
}

// Len returns the number of live vertices
func (t *Tree) Len() int {
	return t.count
}

// Vertices returns the live vertex handles in insertion order
func (t *Tree) Vertices() []Vertex {
	out := make([]Vertex, 0, t.count)
	for i := range t.nodes {
		if t.nodes[i] != nil {
			out = append(out, Vertex(i))
		}
	}
	return out
}

// Variables returns the live vertices carrying a variable payload, in
// insertion order
func (t *Tree) Variables() []Vertex {
	var out []Vertex
	for i, node := range t.nodes {
		if node == nil {
			continue
		}
		if _, ok := node.(*ast.Var); ok {
			out = append(out, Vertex(i))
		}
	}
	return out
}

// Relabel swaps the payload of v in place. Edges are untouched, so the
// new payload must have the same arity as the old one when v has
// children.
func (t *Tree) Relabel(v Vertex, node ast.Node) {
	if !t.live(v) {
		panic(lterror.Newf("relabel of invalid vertex %d", v).
			WithCode(lterror.CodeStructure).
			WithOperation("tree.Relabel"))
	}
	t.nodes[v] = node
}

// ToRecursiveAST rebuilds the recursive AST from the whole tree
func (t *Tree) ToRecursiveAST() ast.Node {
	return t.ToRecursiveASTFrom(t.root)
}

// ToRecursiveASTFrom rebuilds the recursive AST of the subtree rooted
// at v. Terminal leaves are returned as-is; operator vertices are
// shallow-copied with their operands converted in edge order. A leaf
// carrying an operator payload means the tree was corrupted by its
// caller, which is a programming error, so it panics.
func (t *Tree) ToRecursiveASTFrom(v Vertex) ast.Node {
	if !t.live(v) {
		panic(lterror.Newf("conversion from invalid vertex %d", v).
			WithCode(lterror.CodeStructure).
			WithOperation("tree.ToRecursiveAST"))
	}

	node := t.nodes[v]
	edges := t.children[v]

	if len(edges) == 0 {
		if _, ok := node.(ast.Operator); ok {
			panic(lterror.Newf("operator %s has no operands", node).
				WithCode(lterror.CodeStructure).
				WithOperation("tree.ToRecursiveAST"))
		}
		return node
	}

	operands := make([]ast.Node, len(edges))
	for i, child := range edges {
		operands[i] = t.ToRecursiveASTFrom(child)
	}

	return node.(ast.Operator).WithOperands(operands...)
}

// AddSubtree splices sub over the childless vertex leaf: sub's vertices
// are merged into the arena under fresh handles, the edge that pointed
// at leaf is redirected to sub's root at the same operand position (or
// the root is replaced when leaf was the root), and leaf is removed.
// sub is not modified; its payloads are shared.
func (t *Tree) AddSubtree(leaf Vertex, sub *Tree) error {
	if !t.live(leaf) {
		return lterror.Newf("splice target %d is not a vertex", leaf).
			WithCode(lterror.CodeStructure).
			WithOperation("tree.AddSubtree")
	}
	if len(t.children[leaf]) != 0 {
		return lterror.Newf("splice target %s has children", t.nodes[leaf]).
			WithCode(lterror.CodeStructure).
			WithOperation("tree.AddSubtree").
			WithDetail("vertex", int(leaf))
	}
	if sub == nil || !sub.live(sub.root) {
		return lterror.New("splice source is empty").
			WithCode(lterror.CodeStructure).
			WithOperation("tree.AddSubtree")
	}

	// Merge sub's vertices under fresh handles
	remap := make(map[Vertex]Vertex, sub.count)
	for _, w := range sub.Vertices() {
		remap[w] = t.add(sub.nodes[w])
	}
	for _, w := range sub.Vertices() {
		v := remap[w]
		for _, child := range sub.children[w] {
			t.children[v] = append(t.children[v], remap[child])
		}
		if p := sub.parents[w]; p != NoVertex {
			t.parents[v] = remap[p]
		}
	}

	newRoot := remap[sub.root]

	if leaf == t.root {
		t.root = newRoot
	} else {
		p := t.parents[leaf]
		for i, child := range t.children[p] {
			if child == leaf {
				t.children[p][i] = newRoot
				break
			}
		}
		t.parents[newRoot] = p
	}

	t.remove(leaf)
	return nil
}

// Clone returns an independent copy of the tree. Payloads are shared;
// they are treated as immutable by all rewrite passes, which replace
// rather than mutate them.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes:    make([]ast.Node, len(t.nodes)),
		children: make([][]Vertex, len(t.children)),
		parents:  make([]Vertex, len(t.parents)),
		root:     t.root,
		count:    t.count,
	}
	copy(c.nodes, t.nodes)
	copy(c.parents, t.parents)
	for i, edges := range t.children {
		if len(edges) > 0 {
			c.children[i] = make([]Vertex, len(edges))
			copy(c.children[i], edges)
		}
	}
	return c
}

// String renders one line per live vertex for debugging
func (t *Tree) String() string {
	var b strings.Builder
	for _, v := range t.Vertices() {
		fmt.Fprintf(&b, "%d: %s", v, t.nodes[v])
		if len(t.children[v]) > 0 {
			fmt.Fprintf(&b, " %v", t.children[v])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
