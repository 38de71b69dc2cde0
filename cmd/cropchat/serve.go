package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fieldworks/cropchat"
	"github.com/fieldworks/cropchat/internal/config"
	"github.com/fieldworks/cropchat/knowledge"
	"github.com/fieldworks/cropchat/server"
)

var (
	serveConfigPath string
	serveAddr       string
	serveDataPath   string
	serveStaticDir  string
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API and web page",
	Long: `Serve starts the HTTP server hosting the chat API, the static web
client, and the swagger documentation. Settings come from an optional YAML
config file, flags override individual values.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on")
	serveCmd.Flags().StringVar(&serveDataPath, "data", "", "Path to the crop knowledge JSON file")
	serveCmd.Flags().StringVar(&serveStaticDir, "static", "", "Directory holding the web client")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// serveConfig merges the configuration sources for the serve command.
// Flags beat the config file, the config file beats the defaults.
func serveConfig() (config.Config, error) {
	cfg := config.Default()
	if serveConfigPath != "" {
		var err error
		cfg, err = config.Load(serveConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDataPath != "" {
		cfg.DataPath = serveDataPath
	}
	if serveStaticDir != "" {
		cfg.StaticDir = serveStaticDir
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	// The static directory must exist before the router can serve it.
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		return fmt.Errorf("failed to create static directory: %w", err)
	}

	kb, err := knowledge.Load(cfg.DataPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	bot := cropchat.New(kb, logger)
	srv := server.New(bot, cfg.Addr, cfg.StaticDir, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	return srv.Run(ctx)
}
