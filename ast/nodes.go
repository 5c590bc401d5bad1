// File: nodes.go
// Title: LTL AST Node Definitions
// Description: Defines all AST node types for representing LTL formulas:
//              typed terminals and the operator variants with their
//              capability interfaces and parseable string rendering.

package ast

import (
	"fmt"
	"strconv"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns parseable formula text for the node
	String() string
}

// Terminal is a node that carries a value and has no operands
type Terminal interface {
	Node

	// terminalNode is a marker method
	terminalNode()
}

// Operator is a node that carries an operator symbol and an ordered
// sequence of operand nodes
type Operator interface {
	Node

	// Op returns the operator symbol
	Op() string

	// Operands returns the ordered operand nodes
	Operands() []Node

	// WithOperands returns a shallow copy of the operator carrying the
	// given operands. Panics if the operand count does not match the
	// operator's arity; that is a programming error, not user input.
	WithOperands(operands ...Node) Operator
}

// Terminal node types

// Var represents a variable reference
type Var struct {
	Name string
}

func (v *Var) String() string { return v.Name }
func (v *Var) terminalNode()  {}

// Num represents an integer literal
type Num struct {
	Value int
}

func (n *Num) String() string { return strconv.Itoa(n.Value) }
func (n *Num) terminalNode()  {}

// Str represents a string constant (a quoted literal)
type Str struct {
	Value string
}

func (s *Str) String() string { return "'" + s.Value + "'" }
func (s *Str) terminalNode()  {}

// Bool represents a boolean literal
type Bool struct {
	Value bool
}

func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) terminalNode() {}

// Operator node types

// Unary represents negation and the unary temporal operators
// (!, X, [], <>)
type Unary struct {
	Symbol  string
	Operand Node
}

func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Symbol, u.Operand.String())
}

func (u *Unary) Op() string { return u.Symbol }

func (u *Unary) Operands() []Node { return []Node{u.Operand} }

func (u *Unary) WithOperands(operands ...Node) Operator {
	if len(operands) != 1 {
		panic(fmt.Sprintf("unary operator %s requires 1 operand, got %d",
			u.Symbol, len(operands)))
	}
	return &Unary{Symbol: u.Symbol, Operand: operands[0]}
}

// Binary represents the boolean connectives and the binary temporal
// operators (&&, ||, ^, ->, <->, U, R)
type Binary struct {
	Symbol string
	Left   Node
	Right  Node
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Symbol, b.Right.String())
}

func (b *Binary) Op() string { return b.Symbol }

func (b *Binary) Operands() []Node { return []Node{b.Left, b.Right} }

func (b *Binary) WithOperands(operands ...Node) Operator {
	if len(operands) != 2 {
		panic(fmt.Sprintf("binary operator %s requires 2 operands, got %d",
			b.Symbol, len(operands)))
	}
	return &Binary{Symbol: b.Symbol, Left: operands[0], Right: operands[1]}
}

// Comparator represents the relational operators (=, !=, <, <=, >, >=)
type Comparator struct {
	Symbol string
	Left   Node
	Right  Node
}

func (c *Comparator) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.String(), c.Symbol, c.Right.String())
}

func (c *Comparator) Op() string { return c.Symbol }

func (c *Comparator) Operands() []Node { return []Node{c.Left, c.Right} }

func (c *Comparator) WithOperands(operands ...Node) Operator {
	if len(operands) != 2 {
		panic(fmt.Sprintf("comparator %s requires 2 operands, got %d",
			c.Symbol, len(operands)))
	}
	return &Comparator{Symbol: c.Symbol, Left: operands[0], Right: operands[1]}
}

// Arithmetic represents the arithmetic operators (*, /, +, -)
type Arithmetic struct {
	Symbol string
	Left   Node
	Right  Node
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left.String(), a.Symbol, a.Right.String())
}

func (a *Arithmetic) Op() string { return a.Symbol }

func (a *Arithmetic) Operands() []Node { return []Node{a.Left, a.Right} }

func (a *Arithmetic) WithOperands(operands ...Node) Operator {
	if len(operands) != 2 {
		panic(fmt.Sprintf("arithmetic operator %s requires 2 operands, got %d",
			a.Symbol, len(operands)))
	}
	return &Arithmetic{Symbol: a.Symbol, Left: operands[0], Right: operands[1]}
}

// IsMath returns true for operators that relate a variable to a constant
// or number: comparators and arithmetic. These are the operators the
// pairing algorithm stops at when walking up from a constant leaf.
func IsMath(n Node) bool {
	switch n.(type) {
	case *Comparator, *Arithmetic:
		return true
	default:
		return false
	}
}

// Equal reports structural equality: same node kinds, operator symbols,
// operand order and terminal values. Node identity is ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Num:
		y, ok := b.(*Num)
		return ok && x.Value == y.Value
	case *Str:
		y, ok := b.(*Str)
		return ok && x.Value == y.Value
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value
	case Operator:
		y, ok := b.(Operator)
		if !ok || x.Op() != y.Op() {
			return false
		}
		// Operator class must match, not just the symbol
		if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
			return false
		}
		xs, ys := x.Operands(), y.Operands()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
