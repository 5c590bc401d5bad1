// File: doc.go
// Title: ltlspec Package Documentation
// Description: Top-level documentation for the LTL front-end toolkit.

/*
Package ltlspec is the front end of a temporal-logic specification
toolkit: it parses textual LTL formulas into an abstract syntax tree
and rewrites that tree before it is handed to a synthesis or
model-checking backend.

The work splits across focused packages:

  - parser lexes and parses formula text into the recursive AST.
  - ast defines the terminal and operator node model.
  - tree wraps the AST in a graph arena for in-place rewriting.
  - transform implements substitution, domain checking, pairing and
    constant inference passes.
  - domain models variable domains and loads them from YAML.

This package re-exports the common entry points so most callers need
only one import:

	err := ltlspec.CheckDomains("[](x = 3 -> <> door)", domains)

The cmd/ltlspec tool wraps the same calls for the command line.
*/
package ltlspec
