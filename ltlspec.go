// File: ltlspec.go
// Title: ltlspec High-Level API
// Description: Provides the convenience entry points of the toolkit:
//              parsing formulas, building trees and running the common
//              check and inference passes in one call.

package ltlspec

import (
	"github.com/tlforge/ltlspec/ast"
	"github.com/tlforge/ltlspec/domain"
	"github.com/tlforge/ltlspec/parser"
	"github.com/tlforge/ltlspec/transform"
	"github.com/tlforge/ltlspec/tree"
)

// Parse parses an LTL formula into its recursive AST
func Parse(formula string) (ast.Node, error) {
	return parser.Parse(formula)
}

// ParseTree parses an LTL formula and builds the graph view used by
// the rewrite passes
func ParseTree(formula string) (*tree.Tree, error) {
	node, err := parser.Parse(formula)
	if err != nil {
		return nil, err
	}
	return tree.FromRecursiveAST(node)
}

// Validate checks that formula is syntactically well formed
func Validate(formula string) error {
	_, err := parser.Parse(formula)
	return err
}

// CheckDomains parses formula and validates every variable and
// constant against domains
func CheckDomains(formula string, domains domain.Map) error {
	t, err := ParseTree(formula)
	if err != nil {
		return err
	}
	return transform.CheckDomains(t, domains)
}

// InferConstants parses formula, quotes every name that is not a
// declared variable so it reads as a string constant, and returns the
// re-rendered formula
func InferConstants(formula string, domains domain.Map) (string, error) {
	return transform.InferConstants(formula, domains)
}
