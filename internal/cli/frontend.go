package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/nftplatform/internal/health"
	"github.com/vietddude/nftplatform/internal/infra/chain/aptos"
	"github.com/vietddude/nftplatform/internal/web"
)

var frontendCmd = &cobra.Command{
	Use:   "frontend",
	Short: "Serve the status page",
	RunE:  runFrontend,
}

func init() {
	rootCmd.AddCommand(frontendCmd)
}

func runFrontend(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	adapter, err := aptos.NewFromConfig(cfg.Aptos)
	if err != nil {
		return fmt.Errorf("create aptos client: %w", err)
	}
	defer adapter.Close()

	env := web.PublicEnv{
		Network:   cfg.Aptos.Network,
		NodeURL:   cfg.Aptos.NodeURL,
		FaucetURL: cfg.Aptos.FaucetURL,
		IPFSURL:   cfg.Storage.IPFSURL,
	}
	server := web.NewServer(health.NewProber(adapter, nil), env, cfg.Frontend.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Status page running on port", "port", cfg.Frontend.Port)

	select {
	case err := <-errCh:
		return fmt.Errorf("status page failed: %w", err)
	case sig := <-signalChan():
		slog.Info("Received signal, shutting down...", "signal", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("Status page stopped gracefully")
	return nil
}
