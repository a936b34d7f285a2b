package health

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vietddude/nftplatform/internal/core/domain"
)

var errEmptyLedger = errors.New("node returned no ledger info")

// LedgerReader fetches ledger metadata from a node.
type LedgerReader interface {
	GetLedgerInfo(ctx context.Context) (*domain.LedgerInfo, error)
}

// Prober checks whether the configured node answers a ledger info query.
// Each call performs exactly one query with no retries; the only bound on
// its duration is the caller's context and the transport's own timeout.
// A reader that returns neither ledger info nor an error counts as unreachable.
type Prober struct {
	reader  LedgerReader
	metrics *probeMetrics
	log     *slog.Logger
}

// NewProber creates a prober. A nil registerer leaves metrics unregistered.
func NewProber(reader LedgerReader, reg prometheus.Registerer) *Prober {
	return &Prober{
		reader:  reader,
		metrics: newProbeMetrics(reg),
		log:     slog.Default(),
	}
}

// Check runs one probe. Query failures are logged and reported as an
// unreachable result; Check itself never fails.
func (p *Prober) Check(ctx context.Context) domain.ConnectionResult {
	start := time.Now()
	info, err := p.reader.GetLedgerInfo(ctx)
	latency := time.Since(start)
	if err == nil && info == nil {
		err = errEmptyLedger
	}

	result := domain.ConnectionResult{
		Reachable: err == nil,
		Err:       err,
		Latency:   latency,
		Ledger:    info,
		CheckedAt: start,
	}
	p.metrics.observe(result)

	if err != nil {
		p.log.Error("Failed to connect to Aptos network", "error", err, "latency", latency)
		return result
	}

	p.log.Debug("Aptos node reachable",
		"chain_id", info.ChainID,
		"ledger_version", info.LedgerVersion,
		"block_height", info.BlockHeight,
		"latency", latency,
	)
	return result
}

// Connected is the boolean projection of Check.
func (p *Prober) Connected(ctx context.Context) bool {
	return p.Check(ctx).Connected()
}
