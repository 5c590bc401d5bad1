package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlforge/ltlspec/domain"
	"github.com/tlforge/ltlspec/parser"
	"github.com/tlforge/ltlspec/transform"
	"github.com/tlforge/ltlspec/tree"
)

var checkDomainsFile string

var checkCmd = &cobra.Command{
	Use:   "check <formula>",
	Short: "Validate a formula against variable domains",
	Long: `Parses an LTL formula and checks every variable and constant
against the domains declared in a YAML file:

  floor: {low: 1, high: 4}
  color: [red, green, blue]
  door:  boolean`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDomainsFile, "domains", "", "YAML file declaring variable domains")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := domainsPath(checkDomainsFile)
	if path == "" {
		return errors.New("no domain file: pass --domains or set the domains config key")
	}

	domains, err := domain.LoadFile(path)
	if err != nil {
		return err
	}

	node, err := parser.Parse(args[0])
	if err != nil {
		return err
	}
	t, err := tree.FromRecursiveAST(node)
	if err != nil {
		return err
	}

	if err := transform.CheckDomains(t, domains); err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}
