// File: pairing.go
// Title: Variable/Constant Pairing
// Description: Locates the variable governed by the same comparison or
//              arithmetic operator as a given constant leaf.

package transform

import (
	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	"github.com/tlforge/ltlspec/tree"
)

// PairWithVariable finds the variable compared against the constant at
// leaf. It walks parent edges up to the first comparison or arithmetic
// vertex, takes that operator's other operand and descends through its
// first operands until a variable terminal is reached. Returns the
// variable vertex and the governing operator vertex.
//
// Between the governing operator and both the constant and the
// variable only unary operators are expected; a formula that compares
// two constants or wraps the variable side in a binary operator fails
// with a structure error.
func PairWithVariable(t *tree.Tree, leaf tree.Vertex) (variable, operator tree.Vertex, err error) {
	// Up to the governing comparison
	cur := leaf
	parent := t.Parent(cur)
	for parent != tree.NoVertex && !ast.IsMath(t.Node(parent)) {
		cur = parent
		parent = t.Parent(cur)
	}
	if parent == tree.NoVertex {
		return tree.NoVertex, tree.NoVertex,
			lterror.Newf("constant %s is not under a comparison", t.Node(leaf)).
				WithCode(lterror.CodeStructure).
				WithOperation("transform.PairWithVariable").
				WithDetail("constant", t.Node(leaf).String())
	}

	// Across to the operand that does not contain the constant
	operands := t.Children(parent)
	side := operands[0]
	if side == cur {
		side = operands[1]
	}

	// Down to the variable
	for {
		node := t.Node(side)
		if _, ok := node.(*ast.Var); ok {
			return side, parent, nil
		}
		children := t.Children(side)
		if len(children) == 0 {
			return tree.NoVertex, tree.NoVertex,
				lterror.Newf("no variable opposite constant %s", t.Node(leaf)).
					WithCode(lterror.CodeStructure).
					WithOperation("transform.PairWithVariable").
					WithDetails(map[string]interface{}{
						"constant": t.Node(leaf).String(),
						"operator": t.Node(parent).String(),
					})
		}
		side = children[0]
	}
}
