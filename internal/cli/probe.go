package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/nftplatform/internal/core/domain"
	"github.com/vietddude/nftplatform/internal/health"
	"github.com/vietddude/nftplatform/internal/infra/chain/aptos"
	"github.com/vietddude/nftplatform/internal/web"
)

var verbose bool

// errNotConnected makes the probe command exit non-zero without logging.
var errNotConnected = errors.New("aptos node not connected")

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the Aptos node once and print the connection status",
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print ledger and provider details")
	rootCmd.AddCommand(probeCmd)
}

// recordingChecker keeps the full result behind the view's boolean.
type recordingChecker struct {
	prober *health.Prober
	result domain.ConnectionResult
}

func (r *recordingChecker) Connected(ctx context.Context) bool {
	r.result = r.prober.Check(ctx)
	return r.result.Connected()
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	adapter, err := aptos.NewFromConfig(cfg.Aptos)
	if err != nil {
		return fmt.Errorf("create aptos client: %w", err)
	}
	defer adapter.Close()

	checker := &recordingChecker{prober: health.NewProber(adapter, nil)}
	view := web.NewStatusView(checker)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, view.Text())
	view.Mount(context.Background())
	<-view.Done()
	_, _ = fmt.Fprintln(out, view.Text())

	if verbose {
		printDetails(out, adapter, checker.result)
	}

	if view.State() != web.StateConnected {
		return errNotConnected
	}
	return nil
}

func printDetails(out io.Writer, adapter *aptos.AptosAdapter, result domain.ConnectionResult) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintf(w, "NETWORK\t%s\n", adapter.GetNetwork())
	_, _ = fmt.Fprintf(w, "NODE\t%s\n", adapter.NodeURL())
	_, _ = fmt.Fprintf(w, "LATENCY\t%s\n", result.Latency)

	if result.Ledger != nil {
		_, _ = fmt.Fprintf(w, "CHAIN ID\t%d\n", result.Ledger.ChainID)
		_, _ = fmt.Fprintf(w, "LEDGER VERSION\t%d\n", result.Ledger.LedgerVersion)
		_, _ = fmt.Fprintf(w, "BLOCK HEIGHT\t%d\n", result.Ledger.BlockHeight)
		_, _ = fmt.Fprintf(w, "LEDGER TIME\t%s\n", result.Ledger.Timestamp())
		_, _ = fmt.Fprintf(w, "NODE ROLE\t%s\n", result.Ledger.NodeRole)
	}
	if reason := result.Reason(); reason != "" {
		_, _ = fmt.Fprintf(w, "ERROR\t%s\n", reason)
	}

	status := adapter.Health()
	_, _ = fmt.Fprintf(w, "AVAILABLE\t%t\n", status.Available)
	_, _ = fmt.Fprintf(w, "ERROR RATE\t%.2f\n", status.ErrorRate)
	if stats := status.MonitorStats; stats != nil {
		_, _ = fmt.Fprintf(w, "PROVIDER\t%s\n", stats.Status)
		_, _ = fmt.Fprintf(w, "REQUESTS (1H)\t%d\n", stats.RequestsLastHour)
		if stats.RetryAfter > 0 {
			_, _ = fmt.Fprintf(w, "RETRY AFTER\t%s\n", stats.RetryAfter.Round(time.Second))
		}
	}
	_ = w.Flush()
}
