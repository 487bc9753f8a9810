package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/heritagexp/heritage-explorer/pkg/app"
	"github.com/heritagexp/heritage-explorer/pkg/httpapi"
	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/metrics"
	"github.com/heritagexp/heritage-explorer/pkg/status"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "hexpd",
	Short:         "Heritage Explorer Server",
	SilenceUsage:  false,
	SilenceErrors: true,
	Long: `Heritage Explorer Server (hexpd) - Indian heritage monument catalog

The server keeps the monument catalog, virtual tours, discussion board,
favorites, and user accounts in JSON files under a data directory and
serves them over a JSON API.

Configuration file must be in JSON format with the following structure:
{
    "listen_addr": "0.0.0.0",
    "port": 8080,
    "data_dir": "/var/lib/hexpd",
    "auth_latency_ms": 1000,
    "fetch_latency_ms": 500,
    "auth_rate_per_minute": 10,
    "auth_burst": 5,
    "status_dir": "/var/run/hexpd",
    "status_interval": 60,
    "access_log_path": "/var/log/hexpd-access.log",
    "app_log_path": "/var/log/hexpd.log",
    "log_level": "info"
}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("Heritage Explorer Server %s\n", version)
			return nil
		}

		if cfgFile == "" {
			return fmt.Errorf("config file is required (use --config)")
		}

		// Convert to absolute path if needed
		if !filepath.IsAbs(cfgFile) {
			var err error
			cfgFile, err = filepath.Abs(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
		}

		// Load configuration
		var config Config
		if err := LoadConfig(cfgFile, &config); err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}

		// Initialize logging
		if err := logging.Initialize(config.AccessLogPath, config.AppLogPath, logging.LogLevel(config.LogLevel)); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}

		// Create the backing store
		store, err := storage.NewOsFileStore(config.DataDir)
		if err != nil {
			return fmt.Errorf("failed to create data store: %v", err)
		}

		// Build the application context
		application := app.New(app.Config{
			Store:        store,
			AuthLatency:  time.Duration(config.AuthLatencyMs) * time.Millisecond,
			FetchLatency: time.Duration(config.FetchLatencyMs) * time.Millisecond,
		})

		server := httpapi.New(httpapi.Config{
			ListenAddr:        config.ListenAddr,
			Port:              config.Port,
			AuthRatePerMinute: config.AuthRatePerMinute,
			AuthBurst:         config.AuthBurst,
		}, application, metrics.NewCollector())

		// Status files are optional
		var statusWriter *status.Writer
		if config.StatusDir != "" {
			statusWriter, err = status.New(config.StatusDir, time.Duration(config.StatusInterval)*time.Second, version)
			if err != nil {
				return fmt.Errorf("failed to create status writer: %v", err)
			}
			statusWriter.SetMetricsProvider(server)
			if err := statusWriter.WriteStartFile(); err != nil {
				return fmt.Errorf("failed to write start file: %v", err)
			}
			statusWriter.StartHeartbeat()
		}

		// Shut down cleanly on SIGINT/SIGTERM
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigCh
			logging.App.Info("Received signal, shutting down", "signal", sig)

			if statusWriter != nil {
				if err := statusWriter.Shutdown(fmt.Sprintf("signal_%s", sig)); err != nil {
					logging.App.Error("Failed to write stop file", "error", err)
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logging.App.Error("Server shutdown error", "error", err)
			}
		}()

		fmt.Printf("Starting Heritage Explorer Server %s on %s:%d\n", version, config.ListenAddr, config.Port)
		err = server.ListenAndServe()
		if statusWriter != nil {
			if stopErr := statusWriter.Shutdown("server_exit"); stopErr != nil {
				logging.App.Error("Failed to write stop file", "error", stopErr)
			}
		}
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to config file (required)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
}
