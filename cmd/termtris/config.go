package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration termtris would play with, as YAML.

Flag overrides such as --fps are applied. Save the output to
~/.termtris/configs/termtris.yaml to make it your default.

Examples:
  termtris config
  termtris config --config ./wide.yaml
  termtris config > ~/.termtris/configs/termtris.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
