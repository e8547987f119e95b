package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file. Save it to
~/.tetris/config.yaml or ./configs/tetris.yaml to customize keys,
the starting level, the frame rate or logging.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
