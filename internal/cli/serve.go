package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vietddude/nftplatform/internal/health"
	"github.com/vietddude/nftplatform/internal/infra/chain/aptos"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the backend health service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	adapter, err := aptos.NewFromConfig(cfg.Aptos)
	if err != nil {
		return fmt.Errorf("create aptos client: %w", err)
	}
	defer adapter.Close()

	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)
	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		registerer, gatherer = reg, reg
	}

	server := health.NewServer(health.NewProber(adapter, registerer), cfg.Server.Port, gatherer)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Server running on port", "port", cfg.Server.Port,
		"network", adapter.GetNetwork(), "node_url", adapter.NodeURL())

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-signalChan():
		slog.Info("Received signal, shutting down...", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("Server stopped gracefully")
	return nil
}
