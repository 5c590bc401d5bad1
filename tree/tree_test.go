// File: tree_test.go
// Title: Tree Unit Tests
// Description: Tests for AST/graph conversion, relabeling, splicing and
//              cloning.

package tree

import (
	"testing"

	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
	"github.com/tlforge/ltlspec/parser"
)

func mustParse(t *testing.T, formula string) ast.Node {
	t.Helper()
	node, err := parser.Parse(formula)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", formula, err)
	}
	return node
}

func mustTree(t *testing.T, formula string) *Tree {
	t.Helper()
	tr, err := FromRecursiveAST(mustParse(t, formula))
	if err != nil {
		t.Fatalf("FromRecursiveAST(%q) failed: %v", formula, err)
	}
	return tr
}

func TestFromRecursiveAST(t *testing.T) {
	tr := mustTree(t, "a && !b")

	if tr.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tr.Len())
	}

	root := tr.Root()
	if op, ok := tr.Node(root).(ast.Operator); !ok || op.Op() != "&&" {
		t.Fatalf("root payload = %v, want &&", tr.Node(root))
	}

	kids := tr.Children(root)
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}
	if tr.Node(kids[0]).String() != "a" {
		t.Errorf("first child = %v, want a", tr.Node(kids[0]))
	}
	if tr.Node(kids[1]).String() != "(! b)" {
		t.Errorf("second child = %v, want (! b)", tr.Node(kids[1]))
	}

	// Parent links point back up
	if tr.Parent(kids[0]) != root {
		t.Error("child parent link broken")
	}
	if tr.Parent(root) != NoVertex {
		t.Error("root must have no parent")
	}
}

func TestFromRecursiveASTRejectsForeignNodes(t *testing.T) {
	_, err := FromRecursiveAST(nil)
	if err == nil {
		t.Fatal("expected structure error")
	}
	if !lterror.HasCode(err, lterror.CodeStructure) {
		t.Errorf("error code = %v, want %v", lterror.GetCode(err), lterror.CodeStructure)
	}
}

func TestRoundTrip(t *testing.T) {
	formulas := []string{
		"a",
		"!a",
		"a && b || c",
		"[](req -> <> ack)",
		"x + 1 <= y U color = 'green'",
	}

	for _, formula := range formulas {
		t.Run(formula, func(t *testing.T) {
			original := mustParse(t, formula)
			tr, err := FromRecursiveAST(original)
			if err != nil {
				t.Fatal(err)
			}
			rebuilt := tr.ToRecursiveAST()
			if !ast.Equal(original, rebuilt) {
				t.Errorf("round trip changed structure: %s vs %s", original, rebuilt)
			}
		})
	}
}

func TestToRecursiveASTSharesLeaves(t *testing.T) {
	v := &ast.Var{Name: "a"}
	tr, err := FromRecursiveAST(&ast.Unary{Symbol: "!", Operand: v})
	if err != nil {
		t.Fatal(err)
	}

	rebuilt := tr.ToRecursiveAST().(*ast.Unary)
	if rebuilt.Operand != ast.Node(v) {
		t.Error("terminal leaf must be returned as-is")
	}
}

func TestToRecursiveASTFrom(t *testing.T) {
	tr := mustTree(t, "a && (b || c)")

	kids := tr.Children(tr.Root())
	sub := tr.ToRecursiveASTFrom(kids[1])
	if sub.String() != "(b || c)" {
		t.Errorf("subtree = %s, want (b || c)", sub)
	}
}

func TestToRecursiveASTPanicsOnOperatorLeaf(t *testing.T) {
	tr := mustTree(t, "!a")

	leaf := tr.Children(tr.Root())[0]
	tr.Relabel(leaf, &ast.Unary{Symbol: "!", Operand: nil})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on operator leaf")
		}
	}()
	tr.ToRecursiveAST()
}

func TestRelabel(t *testing.T) {
	tr := mustTree(t, "x = color")

	for _, v := range tr.Variables() {
		if tr.Node(v).String() == "color" {
			tr.Relabel(v, &ast.Num{Value: 1})
		}
	}

	if got := tr.ToRecursiveAST().String(); got != "(x = 1)" {
		t.Errorf("after relabel = %s, want (x = 1)", got)
	}
}

func TestVariables(t *testing.T) {
	tr := mustTree(t, "a && 3 < b && 'c'")

	vars := tr.Variables()
	if len(vars) != 2 {
		t.Fatalf("Variables() len = %d, want 2", len(vars))
	}
	if tr.Node(vars[0]).String() != "a" || tr.Node(vars[1]).String() != "b" {
		t.Errorf("variables = %v, %v; want a, b", tr.Node(vars[0]), tr.Node(vars[1]))
	}
}

func TestAddSubtree(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		target  string
		sub     string
		want    string
	}{
		{
			name:    "replace right operand",
			formula: "a && b",
			target:  "b",
			sub:     "x || y",
			want:    "(a && (x || y))",
		},
		{
			name:    "replace left operand keeps position",
			formula: "a -> b",
			target:  "a",
			sub:     "x && y",
			want:    "((x && y) -> b)",
		},
		{
			name:    "replace root",
			formula: "a",
			target:  "a",
			sub:     "x U y",
			want:    "(x U y)",
		},
		{
			name:    "replace deep leaf",
			formula: "[](a -> b)",
			target:  "b",
			sub:     "<> done",
			want:    "([] (a -> (<> done)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustTree(t, tt.formula)
			sub := mustTree(t, tt.sub)

			var target Vertex = NoVertex
			for _, v := range tr.Vertices() {
				if tr.Node(v).String() == tt.target {
					target = v
				}
			}
			if target == NoVertex {
				t.Fatalf("target %q not found", tt.target)
			}

			before := tr.Len()
			if err := tr.AddSubtree(target, sub); err != nil {
				t.Fatalf("AddSubtree failed: %v", err)
			}

			if got := tr.ToRecursiveAST().String(); got != tt.want {
				t.Errorf("after splice = %s, want %s", got, tt.want)
			}

			// Leaf removed, sub merged
			if want := before - 1 + sub.Len(); tr.Len() != want {
				t.Errorf("Len() = %d, want %d", tr.Len(), want)
			}
			if tr.Node(target) != nil {
				t.Error("spliced leaf still live")
			}
		})
	}
}

func TestAddSubtreeRejectsNonLeaf(t *testing.T) {
	tr := mustTree(t, "a && b")
	sub := mustTree(t, "x")

	err := tr.AddSubtree(tr.Root(), sub)
	if err == nil {
		t.Fatal("expected structure error for non-leaf target")
	}
	if !lterror.HasCode(err, lterror.CodeStructure) {
		t.Errorf("error code = %v, want %v", lterror.GetCode(err), lterror.CodeStructure)
	}
}

func TestAddSubtreeRejectsRemovedVertex(t *testing.T) {
	tr := mustTree(t, "a && b")
	sub := mustTree(t, "x")

	var target Vertex
	for _, v := range tr.Variables() {
		if tr.Node(v).String() == "b" {
			target = v
		}
	}
	if err := tr.AddSubtree(target, sub); err != nil {
		t.Fatal(err)
	}

	// The handle was consumed by the first splice
	if err := tr.AddSubtree(target, sub); err == nil {
		t.Fatal("expected structure error for removed vertex")
	}
}

func TestClone(t *testing.T) {
	tr := mustTree(t, "x = color")
	clone := tr.Clone()

	for _, v := range clone.Variables() {
		if clone.Node(v).String() == "color" {
			clone.Relabel(v, &ast.Num{Value: 7})
		}
	}

	if got := tr.ToRecursiveAST().String(); got != "(x = color)" {
		t.Errorf("original changed by clone relabel: %s", got)
	}
	if got := clone.ToRecursiveAST().String(); got != "(x = 7)" {
		t.Errorf("clone = %s, want (x = 7)", got)
	}
}

func TestCloneIndependentSplice(t *testing.T) {
	tr := mustTree(t, "a && b")
	clone := tr.Clone()

	var target Vertex
	for _, v := range clone.Variables() {
		if clone.Node(v).String() == "b" {
			target = v
		}
	}
	if err := clone.AddSubtree(target, mustTree(t, "x || y")); err != nil {
		t.Fatal(err)
	}

	if got := tr.ToRecursiveAST().String(); got != "(a && b)" {
		t.Errorf("original changed by clone splice: %s", got)
	}
}
