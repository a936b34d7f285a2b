package chain

import (
	"context"

	"github.com/vietddude/nftplatform/internal/core/domain"
)

// Adapter defines the chain-level read interface used by the platform.
type Adapter interface {
	// GetLedgerInfo returns the node's current ledger metadata
	GetLedgerInfo(ctx context.Context) (*domain.LedgerInfo, error)

	// GetNetwork returns the network the adapter is bound to
	GetNetwork() domain.Network

	// NodeURL returns the fullnode endpoint
	NodeURL() string

	// FaucetURL returns the faucet endpoint, empty if none
	FaucetURL() string

	// Close releases transport resources
	Close() error
}
