package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"demoshell/internal/app"
)

var (
	configPath string
	shellPath  string
)

var rootCmd = &cobra.Command{
	Use:   "demoshell",
	Short: "demoshell – a small interactive command console",
	Long:  "demoshell runs one-line commands under your shell and shows their stdout and stderr live above a persistent input line.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start(app.Options{ConfigPath: configPath, Shell: shellPath})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the per-user config dir)")
	rootCmd.Flags().StringVar(&shellPath, "shell", "", "interpreter for command lines (overrides config)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
