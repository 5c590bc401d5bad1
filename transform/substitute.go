// File: substitute.go
// Title: Substitution Passes
// Description: Implements the in-place rewrites that replace variables
//              by values or subtrees and lower string constants to
//              their integer encoding.

package transform

import (
	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	"github.com/tlforge/ltlspec/tree"
)

// SubstituteValues relabels every variable named in assignment to the
// terminal matching its value kind. Variables not named in assignment
// are left untouched.
func SubstituteValues(t *tree.Tree, assignment map[string]Value) {
	for _, v := range t.Variables() {
		name := t.Node(v).(*ast.Var).Name
		if value, ok := assignment[name]; ok {
			t.Relabel(v, value.terminal())
		}
	}
}

// SubstituteStringConstants relabels every string constant to the
// number equal to its position in the enumeration of its governing
// variable. A variable without an enumeration table fails with an
// undefined-variable error; a value absent from the table fails with
// an out-of-domain error.
func SubstituteStringConstants(t *tree.Tree, enums map[string][]string) error {
	for _, v := range t.Vertices() {
		str, ok := t.Node(v).(*ast.Str)
		if !ok {
			continue
		}

		variable, _, err := PairWithVariable(t, v)
		if err != nil {
			return err
		}
		name := t.Node(variable).(*ast.Var).Name

		table, ok := enums[name]
		if !ok {
			return lterror.Newf("no enumeration for variable %s", name).
				WithCode(lterror.CodeUndefinedVariable).
				WithOperation("transform.SubstituteStringConstants").
				WithDetail("variable", name)
		}

		index := -1
		for i, value := range table {
			if value == str.Value {
				index = i
				break
			}
		}
		if index < 0 {
			return lterror.Newf("value '%s' is not in the enumeration of %s", str.Value, name).
				WithCode(lterror.CodeOutOfDomain).
				WithOperation("transform.SubstituteStringConstants").
				WithDetails(map[string]interface{}{
					"variable": name,
					"value":    str.Value,
				})
		}

		t.Relabel(v, &ast.Num{Value: index})
	}
	return nil
}

// SubstituteSubtrees splices a clone of the matching replacement tree
// over every variable named in replacements
func SubstituteSubtrees(t *tree.Tree, replacements map[string]*tree.Tree) error {
	for _, v := range t.Variables() {
		name := t.Node(v).(*ast.Var).Name
		sub, ok := replacements[name]
		if !ok {
			continue
		}
		if err := t.AddSubtree(v, sub.Clone()); err != nil {
			return err
		}
	}
	return nil
}
