package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tlforge/ltlspec/ast"
	"github.com/tlforge/ltlspec/parser"
)

var parseTree bool

var parseCmd = &cobra.Command{
	Use:   "parse <formula>",
	Short: "Parse a formula and print its syntax tree",
	Long: `Parses an LTL formula and prints the fully parenthesized form.
With --tree the syntax tree is printed one node per line instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "print the syntax tree node by node")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	node, err := parser.Parse(args[0])
	if err != nil {
		return err
	}

	if parseTree {
		printNode(node, 0)
		return nil
	}

	fmt.Println(node)
	return nil
}

// printNode renders the syntax tree with two-space indentation
func printNode(node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if op, ok := node.(ast.Operator); ok {
		fmt.Printf("%s%s\n", indent, op.Op())
		for _, operand := range op.Operands() {
			printNode(operand, depth+1)
		}
		return
	}
	fmt.Printf("%s%s\n", indent, node)
}
