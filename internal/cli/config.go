package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "demoshell/internal/config"
	"demoshell/internal/system"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create the config file if needed and print its path",
	Long:  "Writes a default config.yaml when none exists, validates it, then prints its location.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, created, err := cfg.Ensure(configPath)
		if err != nil {
			return err
		}
		if created {
			system.Logger.Info("created default config", "path", path)
		}
		if _, err := cfg.Load(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
