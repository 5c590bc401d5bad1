// File: domains.go
// Title: Domain Checking Pass
// Description: Validates every variable and constant of a formula tree
//              against the declared variable domains.

package transform

import (
	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	"github.com/tlforge/ltlspec/domain"
	"github.com/tlforge/ltlspec/tree"
)

// CheckDomains validates the tree against domains without mutating it.
// Every variable must be declared; every string constant must belong
// to the enumeration of its governing variable; every number compared
// against a variable must lie inside that variable's integer range.
// The first violation aborts the check.
func CheckDomains(t *tree.Tree, domains domain.Map) error {
	for _, v := range t.Vertices() {
		switch node := t.Node(v).(type) {
		case *ast.Var:
			if _, ok := domains[node.Name]; !ok {
				return lterror.Newf("undefined variable %s", node.Name).
					WithCode(lterror.CodeUndefinedVariable).
					WithOperation("transform.CheckDomains").
					WithDetail("variable", node.Name)
			}

		case *ast.Str:
			name, dom, err := pairedDomain(t, v, domains)
			if err != nil {
				return err
			}
			if !dom.IsEnum() {
				return lterror.Newf("string constant '%s' compared against %s with domain %s",
					node.Value, name, dom).
					WithCode(lterror.CodeDomainMismatch).
					WithOperation("transform.CheckDomains").
					WithDetails(map[string]interface{}{
						"variable": name,
						"value":    node.Value,
						"domain":   dom.String(),
					})
			}
			if !dom.HasValue(node.Value) {
				return lterror.Newf("value '%s' is not in the domain of %s", node.Value, name).
					WithCode(lterror.CodeOutOfDomain).
					WithOperation("transform.CheckDomains").
					WithDetails(map[string]interface{}{
						"variable": name,
						"value":    node.Value,
						"domain":   dom.String(),
					})
			}

		case *ast.Num:
			name, dom, err := pairedDomain(t, v, domains)
			if err != nil {
				return err
			}
			if !dom.IsRange() {
				return lterror.Newf("number %d compared against %s with domain %s",
					node.Value, name, dom).
					WithCode(lterror.CodeDomainMismatch).
					WithOperation("transform.CheckDomains").
					WithDetails(map[string]interface{}{
						"variable": name,
						"value":    node.Value,
						"domain":   dom.String(),
					})
			}
			if !dom.Contains(node.Value) {
				low, high, _ := dom.Bounds()
				return lterror.Newf("%s is assigned %d, outside its range [%d, %d]",
					name, node.Value, low, high).
					WithCode(lterror.CodeOutOfRange).
					WithOperation("transform.CheckDomains").
					WithDetails(map[string]interface{}{
						"variable": name,
						"value":    node.Value,
						"low":      low,
						"high":     high,
					})
			}
		}
	}
	return nil
}

// pairedDomain resolves the governing variable of a constant leaf and
// its domain entry
func pairedDomain(t *tree.Tree, leaf tree.Vertex, domains domain.Map) (string, domain.Domain, error) {
	variable, _, err := PairWithVariable(t, leaf)
	if err != nil {
		return "", domain.Domain{}, err
	}

	name := t.Node(variable).(*ast.Var).Name
	dom, ok := domains[name]
	if !ok {
		return "", domain.Domain{}, lterror.Newf("undefined variable %s", name).
			WithCode(lterror.CodeUndefinedVariable).
			WithOperation("transform.CheckDomains").
			WithDetail("variable", name)
	}
	return name, dom, nil
}
