// File: parser_test.go
// Title: Parser Unit Tests
// Description: Tests for operator precedence, associativity, atom
//              construction, syntax failures and render round-trips.

package parser

import (
	"testing"

	"github.com/tlforge/ltlspec/ast"
	lterror "github.com/tlforge/ltlspec/core/error"
)

// TestParseShapes checks grouping through the fully parenthesized
// rendering of the result
func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Associativity
		{"and is left assoc", "a && b && c", "((a && b) && c)"},
		{"or is left assoc", "a || b || c", "((a || b) || c)"},
		{"xor is left assoc", "a ^ b ^ c", "((a ^ b) ^ c)"},
		{"imply is right assoc", "a -> b -> c", "(a -> (b -> c))"},
		{"biimply is right assoc", "a <-> b <-> c", "(a <-> (b <-> c))"},
		{"until is right assoc", "a U b U c", "(a U (b U c))"},

		// Relative precedence
		{"and over or", "a || b && c", "(a || (b && c))"},
		{"or over xor", "a ^ b || c", "(a ^ (b || c))"},
		{"xor over imply", "a -> b ^ c", "(a -> (b ^ c))"},
		{"imply over biimply", "a <-> b -> c", "(a <-> (b -> c))"},
		{"everything over until", "a && b U c || d", "((a && b) U (c || d))"},
		{"mixed until release", "a U b R c", "(a U (b R c))"},

		// Prefix operators
		{"negation over and", "!a && b", "((! a) && b)"},
		{"double negation", "!!a", "(! (! a))"},
		{"next over and", "X a && b", "((X a) && b)"},
		{"word next", "next a && b", "((X a) && b)"},
		{"always over until", "[] a U b", "(([] a) U b)"},
		{"stacked temporal", "[] <> a", "([] (<> a))"},
		{"letter forms", "G F a", "([] (<> a))"},
		{"negation binds operand only", "! a U b", "((! a) U b)"},

		// Comparators and arithmetic
		{"comparison atoms", "x = 3", "(x = 3)"},
		{"double equals is canonical", "x == 3", "(x = 3)"},
		{"single ampersand is and", "a & b", "(a && b)"},
		{"single bar is or", "a | b", "(a || b)"},
		{"mixed and spellings", "a & b && c", "((a && b) && c)"},
		{"comparison under and", "x = 3 && y < 5", "((x = 3) && (y < 5))"},
		{"negated comparison", "! x = 3", "(! (x = 3))"},
		{"arithmetic under comparison", "x + 1 < y", "((x + 1) < y)"},
		{"greater or equal", "x >= 2", "(x >= 2)"},
		{"strict greater", "x > 2", "(x > 2)"},

		// Grouping
		{"parens override precedence", "(a || b) && c", "((a || b) && c)"},
		{"nested parens", "((a))", "a"},
		{"response pattern", "[](req -> <> ack)", "([] (req -> (<> ack)))"},

		// Atoms
		{"boolean true", "true", "true"},
		{"boolean uppercase", "FALSE", "false"},
		{"number", "42", "42"},
		{"string constant", "'green'", "'green'"},
		{"string comparison", "color = 'green'", "(color = 'green')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOperandOrder(t *testing.T) {
	node, err := Parse("a U b")
	if err != nil {
		t.Fatal(err)
	}

	op, ok := node.(ast.Operator)
	if !ok {
		t.Fatalf("got %T, want operator", node)
	}
	operands := op.Operands()
	if operands[0].String() != "a" || operands[1].String() != "b" {
		t.Errorf("operand order = %v, %v; want a, b", operands[0], operands[1])
	}
}

func TestParseNodeKinds(t *testing.T) {
	node, err := Parse("x = 3 && x + 1 < 5 && G done")
	if err != nil {
		t.Fatal(err)
	}

	var comparators, arithmetics, unaries int
	ast.Inspect(node, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Comparator:
			comparators++
		case *ast.Arithmetic:
			arithmetics++
		case *ast.Unary:
			unaries++
		}
		return true
	})

	if comparators != 2 {
		t.Errorf("comparator count = %d, want 2", comparators)
	}
	if arithmetics != 1 {
		t.Errorf("arithmetic count = %d, want 1", arithmetics)
	}
	if unaries != 1 {
		t.Errorf("unary count = %d, want 1", unaries)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"dangling operator", "a &&"},
		{"leading binary operator", "&& a"},
		{"missing closing paren", "(a && b"},
		{"stray closing paren", "a)"},
		{"chained comparison", "a < b < c"},
		{"chained mixed comparison", "a < b > c"},
		{"chained addition", "a + b + c"},
		{"chained mixed arithmetic", "a + b - c"},
		{"chained multiplication", "a * b / c"},
		{"two atoms", "a b"},
		{"operand after formula", "a && b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want syntax error", tt.input, node)
			}
			if !lterror.HasCode(err, lterror.CodeSyntax) {
				t.Errorf("Parse(%q) error code = %v, want %v",
					tt.input, lterror.GetCode(err), lterror.CodeSyntax)
			}
		})
	}
}

func TestParseSyntaxErrorDetails(t *testing.T) {
	_, err := Parse("a &&\n&& b")
	if err == nil {
		t.Fatal("expected syntax error")
	}

	lerr, ok := err.(*lterror.Error)
	if !ok {
		t.Fatalf("got %T, want *lterror.Error", err)
	}
	if lerr.Detail("line") != 2 {
		t.Errorf("line detail = %v, want 2", lerr.Detail("line"))
	}
}

// TestParseSurvivesLexDiagnostics checks that discarded characters do
// not abort the parse when the remaining tokens still form a formula
func TestParseSurvivesLexDiagnostics(t *testing.T) {
	node, err := Parse("a && ? b")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := node.String(); got != "(a && b)" {
		t.Errorf("got %s, want (a && b)", got)
	}
}

// TestParseRenderRoundTrip checks that rendering and re-parsing
// reproduces the structure exactly
func TestParseRenderRoundTrip(t *testing.T) {
	formulas := []string{
		"[](req -> <> ack)",
		"!a && (b || c) U x = 3",
		"G (floor = 4 -> F door = 'open')",
		"x + 1 <= y && next moving",
		"a <-> b -> c ^ d || e && f",
	}

	for _, formula := range formulas {
		t.Run(formula, func(t *testing.T) {
			first, err := Parse(formula)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", formula, err)
			}
			second, err := Parse(first.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", first.String(), err)
			}
			if !ast.Equal(first, second) {
				t.Errorf("round trip changed structure: %s vs %s", first, second)
			}
		})
	}
}

func TestParseIsReentrant(t *testing.T) {
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				if _, err := Parse("[](a -> <> b) && x < 4"); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
