// File: infer.go
// Title: Constant Inference and Name Conflict Checks
// Description: Quotes free names in a formula so they read as string
//              constants, and guards candidate names against collisions
//              with variables and enumeration values.

package transform

import (
	"sort"

	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	ltlog "github.com/tlforge/ltlspec/core/log"
	"github.com/tlforge/ltlspec/domain"
	"github.com/tlforge/ltlspec/parser"
	"github.com/tlforge/ltlspec/tree"
)

// InferConstants parses formula and encloses every name that is not a
// declared variable in quotes, so it reads as a string constant, then
// re-renders the formula. Before rewriting, every variable name is
// checked against the enumerations of the other variables, since a
// name that doubles as an enumeration value would make the result
// ambiguous. The operation is idempotent.
func InferConstants(formula string, domains domain.Map) (string, error) {
	for name := range domains {
		for other, dom := range domains {
			if other == name {
				continue
			}
			if dom.HasValue(name) {
				return "", lterror.Newf("variable %s is also a value of %s", name, other).
					WithCode(lterror.CodeNameConflict).
					WithOperation("transform.InferConstants").
					WithDetails(map[string]interface{}{
						"variable": name,
						"other":    other,
					})
			}
		}
	}

	known := make(map[string]struct{}, len(domains))
	for name := range domains {
		known[name] = struct{}{}
	}
	return inferConstants(formula, known)
}

// InferConstantsFromNames is InferConstants with only the variable
// names known. Ambiguities against enumeration values cannot be
// detected without the domains, so a warning is logged instead.
func InferConstantsFromNames(formula string, names []string) (string, error) {
	ltlog.GetDefault().Warn("inferring constants without variable domains, cannot check for ambiguous names")

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}
	return inferConstants(formula, known)
}

// inferConstants relabels unknown variables to string constants and
// re-renders the formula
func inferConstants(formula string, known map[string]struct{}) (string, error) {
	node, err := parser.Parse(formula)
	if err != nil {
		return "", err
	}

	t, err := tree.FromRecursiveAST(node)
	if err != nil {
		return "", err
	}

	for _, v := range t.Variables() {
		name := t.Node(v).(*ast.Var).Name
		if _, ok := known[name]; ok {
			continue
		}
		t.Relabel(v, &ast.Str{Value: name})
	}

	return t.ToRecursiveAST().String(), nil
}

// CheckNameConflicts fails when any candidate name already names a
// variable or appears as a value in any enumeration domain. Names and
// enumeration values must be globally unique for formulas to stay
// unambiguous.
func CheckNameConflicts(names []string, domains domain.Map) error {
	for _, name := range names {
		if _, ok := domains[name]; ok {
			return lterror.Newf("name %s already names a variable", name).
				WithCode(lterror.CodeNameConflict).
				WithOperation("transform.CheckNameConflicts").
				WithDetail("name", name)
		}
		for variable, dom := range domains {
			if dom.HasValue(name) {
				return lterror.Newf("name %s is already a value of %s", name, variable).
					WithCode(lterror.CodeNameConflict).
					WithOperation("transform.CheckNameConflicts").
					WithDetails(map[string]interface{}{
						"name":     name,
						"variable": variable,
					})
			}
		}
	}
	return nil
}

// CheckVarNameConflict parses formula, collects the variable names in
// it and fails when name is among them. The collected names are
// returned sorted.
func CheckVarNameConflict(formula, name string) ([]string, error) {
	node, err := parser.Parse(formula)
	if err != nil {
		return nil, err
	}

	seen := ast.VariableNames(node)
	if _, ok := seen[name]; ok {
		return nil, lterror.Newf("variable name %s is already used", name).
			WithCode(lterror.CodeNameConflict).
			WithOperation("transform.CheckVarNameConflict").
			WithDetail("name", name)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
