/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rlepack/rlepack/pkg/api"
	"github.com/rlepack/rlepack/pkg/config"
	"github.com/rlepack/rlepack/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rlepack HTTP API server",
	Long: `Start the rlepack HTTP API server.

The server exposes raw encode/decode endpoints, the hex text mode, and a
persistent artifact store for encoded payloads. All endpoints except
/metrics require the X-API-Key header.

Examples:
  rlepack serve --api-key=mysecretkey --port=8080
  rlepack serve --api-key=mysecretkey --store-dir=./artifacts`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromContext(cmd)

		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		storeDir, _ := cmd.Flags().GetString("store-dir")

		if port == 0 {
			port = cfg.Server.Port
		}
		if bind == "" {
			bind = cfg.Server.Bind
		}
		if apiKey == "" {
			apiKey = cfg.Server.APIKey
		}
		if storeDir == "" {
			storeDir = cfg.Store.Path
		}

		// "auto" means nobody configured a key; generate a fresh one so the
		// server never starts unprotected
		if apiKey == "" || apiKey == "auto" {
			generated, err := config.GenerateAPIKey(32)
			if err != nil {
				cmd.Printf("Error generating API key: %v\n", err)
				os.Exit(1)
			}
			apiKey = generated
			cmd.Printf("Generated API key: %s\n", apiKey)
		}

		logger, err := buildLogger(cfg.Logging.Level)
		if err != nil {
			cmd.Printf("Error building logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync() //nolint:errcheck

		store, err := storage.NewArtifactStore(storeDir)
		if err != nil {
			cmd.Printf("Error opening artifact store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		serverConfig := api.ServerConfig{
			Port:   port,
			Bind:   bind,
			APIKey: apiKey,
		}

		if err := api.StartServer(store, serverConfig, logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	},
}

// buildLogger creates a production zap logger at the configured level
func buildLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	return zapConfig.Build()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config)")
	serveCmd.Flags().String("bind", "", "Address to bind (default from config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (default from config)")
	serveCmd.Flags().String("store-dir", "", "Artifact store directory (default from config)")
}
