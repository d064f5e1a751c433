package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hockey/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the table configuration",
	Long: `Print the effective table configuration as YAML: the file given with
--config (or ~/.arcade/configs/hockey.yaml, or ./configs/hockey.yaml)
laid over the built-in defaults. Use the output as a starting point for
your own tuning.

Examples:
  hockey config > ~/.arcade/configs/hockey.yaml
  hockey config --config ./my-table.yaml
  hockey config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := yaml.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
