package aptos

import (
	"context"
	"fmt"

	"github.com/vietddude/nftplatform/internal/core/config"
	"github.com/vietddude/nftplatform/internal/core/domain"
	"github.com/vietddude/nftplatform/internal/infra/rpc/provider"
)

// AptosAdapter reads ledger state from an Aptos fullnode over REST.
type AptosAdapter struct {
	network   domain.Network
	nodeURL   string
	faucetURL string
	client    provider.Provider
}

// NewAptosAdapter binds an adapter to an existing provider.
func NewAptosAdapter(
	network domain.Network,
	nodeURL, faucetURL string,
	client provider.Provider,
) *AptosAdapter {
	return &AptosAdapter{
		network:   network,
		nodeURL:   nodeURL,
		faucetURL: faucetURL,
		client:    client,
	}
}

// NewFromConfig builds the HTTP provider and adapter for the configured node.
func NewFromConfig(cfg config.AptosConfig) (*AptosAdapter, error) {
	network, err := domain.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}

	p := provider.NewHTTPProvider("aptos-"+network.String(), cfg.NodeURL, cfg.Timeout)
	return NewAptosAdapter(network, cfg.NodeURL, cfg.FaucetURL, p), nil
}

// GetLedgerInfo issues GET on the node root, which returns ledger info.
func (a *AptosAdapter) GetLedgerInfo(ctx context.Context) (*domain.LedgerInfo, error) {
	result, err := a.client.Execute(ctx, provider.Operation{})
	if err != nil {
		return nil, fmt.Errorf("get ledger info: %w", err)
	}

	info, err := domain.ParseLedgerInfo(result)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (a *AptosAdapter) GetNetwork() domain.Network {
	return a.network
}

func (a *AptosAdapter) NodeURL() string {
	return a.nodeURL
}

func (a *AptosAdapter) FaucetURL() string {
	return a.faucetURL
}

// Health exposes the underlying provider's health for diagnostics.
func (a *AptosAdapter) Health() provider.HealthStatus {
	return a.client.GetHealth()
}

func (a *AptosAdapter) Close() error {
	return a.client.Close()
}
