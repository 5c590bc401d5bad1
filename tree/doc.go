// File: doc.go
// Title: Tree Package Documentation
// Description: Package overview for the graph view of parsed formulas.

/*
Package tree provides a graph view of a parsed formula for rewriting.

The recursive AST built by the parser is convenient to construct and
render but awkward to splice. A Tree stores the same structure in an
arena: every node occupies a numbered Vertex, edges are ordered child
slices (the edge position is the operand position) and every vertex
knows its parent. Rewrite passes relabel vertices or splice whole
subtrees without touching the recursive form, then convert back:

	tr, err := tree.FromRecursiveAST(node)
	if err != nil {
	    // node was not built from the ast node model
	}
	tr.Relabel(v, &ast.Num{Value: 1})
	node = tr.ToRecursiveAST()

Vertex handles stay valid across relabeling and splicing; removed
vertices are never reused. A Tree has a single owner: callers that want
to rewrite concurrently must Clone first.
*/
package tree
