// File: visitor.go
// Title: AST Traversal Helpers
// Description: Provides read-only traversal over recursive ASTs: a
//              generic pre-order walk and collectors built on it.

package ast

// Inspect traverses the AST rooted at n in pre-order, calling fn for
// every node. If fn returns false the node's operands are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	if op, ok := n.(Operator); ok {
		for _, operand := range op.Operands() {
			Inspect(operand, fn)
		}
	}
}

// Variables returns every Var node in the AST, in pre-order
func Variables(n Node) []*Var {
	var vars []*Var
	Inspect(n, func(node Node) bool {
		if v, ok := node.(*Var); ok {
			vars = append(vars, v)
		}
		return true
	})
	return vars
}

// VariableNames returns the set of variable names appearing in the AST
func VariableNames(n Node) map[string]struct{} {
	names := make(map[string]struct{})
	Inspect(n, func(node Node) bool {
		if v, ok := node.(*Var); ok {
			names[v.Name] = struct{}{}
		}
		return true
	})
	return names
}

// Count returns the number of nodes in the AST
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
