package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlforge/ltlspec/domain"
	"github.com/tlforge/ltlspec/transform"
)

var inferDomainsFile string

var inferCmd = &cobra.Command{
	Use:   "infer <formula>",
	Short: "Quote undeclared identifiers as string constants",
	Long: `Rewrites a formula so that identifiers which are not declared as
variables in the domain file become quoted string constants. With

  color: [red, green, blue]

the formula "color = green" is rewritten to "(color = 'green')".`,
	Args: cobra.ExactArgs(1),
	RunE: runInfer,
}

func init() {
	inferCmd.Flags().StringVar(&inferDomainsFile, "domains", "", "YAML file declaring variable domains")
	rootCmd.AddCommand(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	path := domainsPath(inferDomainsFile)
	if path == "" {
		return errors.New("no domain file: pass --domains or set the domains config key")
	}

	domains, err := domain.LoadFile(path)
	if err != nil {
		return err
	}

	result, err := transform.InferConstants(args[0], domains)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
