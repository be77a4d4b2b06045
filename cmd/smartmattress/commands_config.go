package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func targetPath() string {
	if configPath != "" {
		return configPath
	}
	if path := config.NewLoader("").Path; path != "" {
		return path
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	path := targetPath()
	if err := config.WriteDefault(afero.NewOsFs(), path, force); err != nil {
		log.Fatalf("Error writing config: %v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default config to %s\n", path)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	defer log.Close()

	if err := cfg.Encode(cmd.OutOrStdout()); err != nil {
		log.Fatalf("Error printing config: %v", err)
	}
}
