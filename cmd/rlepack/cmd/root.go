/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rlepack/rlepack/pkg/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rlepack",
	Short: "rlepack - byte-oriented run-length encoding",
	Long: `rlepack encodes and decodes data with byte-oriented run-length
encoding. It works on files, on text via a hex representation, and as an
HTTP service with persistent artifacts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "config", cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default ~/.config/rlepack/config.yaml)")
}

// configFromContext returns the configuration loaded by the root command
func configFromContext(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value("config").(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}
