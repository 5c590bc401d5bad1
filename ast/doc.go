// File: doc.go
// Title: AST Package Documentation
// Description: Documents the abstract syntax tree node model for LTL
//              formulas.

/*
Package ast defines the abstract syntax tree node model for LTL formulas.

Nodes split into two capability classes:

  - Terminal nodes carry a value and have no operands: Var (a variable
    name), Num (an integer literal), Str (a string constant), Bool (a
    boolean literal).
  - Operator nodes carry an operator symbol and an ordered operand list:
    Unary (negation and the unary temporal operators), Binary (boolean
    connectives and the binary temporal operators), Comparator
    (relational operators) and Arithmetic.

The recursive form built by the parser is a strict tree: every node has
exactly one parent and operand counts always match operator arity. The
String method of every node renders parseable formula text, so a tree
can be re-serialized and parsed back to an identical structure.
*/
package ast
