// File: value.go
// Title: Substitution Value Union
// Description: Defines the closed value union accepted by the value
//              substitution pass: boolean, integer or string.

package transform

import (
	"github.com/tlforge/ltlspec/ast"
)

// valueKind discriminates the value union
type valueKind int

const (
	valueBool valueKind = iota
	valueInt
	valueString
)

// Value is one substitutable value: a boolean, an integer or a string.
// The kind decides which terminal replaces the variable. The zero
// value is the boolean false.
type Value struct {
	kind valueKind
	b    bool
	n    int
	s    string
}

// BoolValue returns a boolean substitution value
func BoolValue(v bool) Value {
	return Value{kind: valueBool, b: v}
}

// IntValue returns an integer substitution value
func IntValue(n int) Value {
	return Value{kind: valueInt, n: n}
}

// StringValue returns a string substitution value
func StringValue(s string) Value {
	return Value{kind: valueString, s: s}
}

// terminal builds the AST terminal carrying the value
func (v Value) terminal() ast.Node {
	switch v.kind {
	case valueInt:
		return &ast.Num{Value: v.n}
	case valueString:
		return &ast.Str{Value: v.s}
	default:
		return &ast.Bool{Value: v.b}
	}
}

// String renders the value the way the replacement terminal would
func (v Value) String() string {
	return v.terminal().String()
}
