package cmd

import (
	"os"

	"github.com/spf13/cobra"

	ltconfig "github.com/tlforge/ltlspec/core/config"
	ltlog "github.com/tlforge/ltlspec/core/log"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	cfg *ltconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "ltlspec",
	Short: "LTL specification front end",
	Long: `ltlspec parses linear-temporal-logic formulas and prepares them
for a synthesis or model-checking backend.

Commands:
  parse    parse a formula and print its syntax tree
  check    validate a formula against variable domains
  infer    quote free names so they read as string constants`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json|text|console)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output, implies --log-level debug")
}

// setup loads the configuration and installs the default logger.
// Flags win over config keys, config keys over built-in defaults.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = ltconfig.Load(cfgFile)
		if err != nil {
			return err
		}
	} else {
		cfg = ltconfig.Default()
	}

	levelName := cfg.GetString("log.level", "info")
	if logLevel != "" {
		levelName = logLevel
	}
	if verbose {
		levelName = "debug"
	}
	level, err := ltlog.ParseLevel(levelName)
	if err != nil {
		return err
	}

	formatName := cfg.GetString("log.format", "console")
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := ltlog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	ltlog.SetDefault(ltlog.NewWithConfig(ltlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "ltlspec",
	}))

	return nil
}

// domainsPath resolves the domain file: the --domains flag wins, then
// the "domains" config key
func domainsPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.GetString("domains")
}
