package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ghiac/suitenav"
	"github.com/ghiac/suitenav/config"
	"github.com/ghiac/suitenav/log"
	"github.com/ghiac/suitenav/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the header and URL endpoints",
	Long:  `Starts the HTTP server. Configuration comes from SUITENAV_* environment variables; flags override them.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	serveNavFile string
	serveAddr    string
)

func init() {
	serveCmd.Flags().StringVar(&serveNavFile, "nav-file", "", "YAML or TOML nav document (default: SUITENAV_NAV_FILE or built-in header)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address host:port (default: SUITENAV_HTTP_HOST:SUITENAV_HTTP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveNavFile != "" {
		cfg.NavFile = serveNavFile
	}
	if serveAddr != "" {
		host, portStr, err := net.SplitHostPort(serveAddr)
		if err != nil {
			return fmt.Errorf("invalid --addr: %w", err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid --addr port: %w", err)
		}
		cfg.HTTP.Host, cfg.HTTP.Port = host, port
	}
	log.Log.SetLevel(cfg.LogLevel)

	log.Log.Infof("=== SuiteNav Server ===")
	log.Log.Infof("Nav File: %s", valueOr(cfg.NavFile, "(built-in)"))
	log.Log.Infof("State Store: %s", cfg.Store.Backend)
	log.Log.Infof("Strict URLs: %v", cfg.StrictURLs)

	sn, err := suitenav.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create SuiteNav: %w", err)
	}
	defer sn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.NewServer(cfg, sn).Start(ctx)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
