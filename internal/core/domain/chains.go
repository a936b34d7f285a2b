package domain

import (
	"fmt"
	"strings"
)

type Network string
type ChainID uint8

const (
	// Networks
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
	NetworkLocal   Network = "local"
	NetworkCustom  Network = "custom"

	// Chain IDs (devnet resets, so it has none here)
	ChainIDMainnet ChainID = 1
	ChainIDTestnet ChainID = 2
	ChainIDLocal   ChainID = 4
)

// NetworkToChainID maps a network to its well-known chain ID.
var NetworkToChainID = map[Network]ChainID{
	NetworkMainnet: ChainIDMainnet,
	NetworkTestnet: ChainIDTestnet,
	NetworkLocal:   ChainIDLocal,
}

// ParseNetwork resolves a network name case-insensitively.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet, NetworkLocal, NetworkCustom:
		return n, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// ChainID returns the well-known chain ID and whether one exists.
func (n Network) ChainID() (ChainID, bool) {
	id, ok := NetworkToChainID[n]
	return id, ok
}

func (n Network) String() string {
	return string(n)
}
