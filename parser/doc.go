// File: doc.go
// Title: Parser Package Documentation
// Description: Package overview for the LTL lexer and parser.

// Package parser turns textual LTL formulas into recursive AST form.
//
// Lexing and parsing are two explicit phases. The lexer scans the
// input byte by byte and produces a flat token stream together with a
// list of diagnostics for characters it could not recognize; it never
// aborts. The parser consumes the token stream with precedence
// climbing over a fixed operator table and either returns a complete
// AST or fails on the first token it cannot place.
//
// Basic usage:
//
//	node, err := parser.Parse("[](req -> <> ack)")
//	if err != nil {
//	    // err carries lterror.CodeSyntax with token position details
//	}
//	fmt.Println(node) // ([] (req -> (<> ack)))
//
// The parser keeps no state between calls and may be used from
// multiple goroutines concurrently.
package parser
