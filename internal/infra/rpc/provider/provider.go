// Package provider implements the transport used to reach a blockchain node.
//
// This package contains:
//   - Provider interface: core abstraction for a node endpoint
//   - HTTPProvider: REST over HTTP implementation
//   - ProviderMonitor: latency and throttle tracking
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Operation represents a single REST call against a node endpoint.
type Operation struct {
	// Name is the path relative to the endpoint (e.g., "accounts/0x1").
	// Empty targets the endpoint itself, which on Aptos returns ledger info.
	Name string

	// Method is the HTTP method. Defaults to GET.
	Method string

	// Query is appended to the request URL.
	Query url.Values

	// Body is JSON-encoded when non-nil.
	Body any
}

// Provider defines the core interface for a node endpoint.
type Provider interface {
	// GetName returns provider identifier (e.g., "aptos-testnet")
	GetName() string

	// GetHealth returns current health metrics
	GetHealth() HealthStatus

	// Execute performs the operation and returns the raw JSON body
	Execute(ctx context.Context, op Operation) (json.RawMessage, error)

	// Close cleans up resources
	Close() error
}

// HealthStatus represents the health state of a provider.
type HealthStatus struct {
	Available     bool
	Latency       time.Duration
	ErrorRate     float64
	LastSuccessAt time.Time
	LastFailureAt time.Time
	MonitorStats  *MonitorStats `json:"monitor_stats,omitempty"`
}

// APIError is a non-2xx response from the node.
type APIError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("http %d: %s (%s)", e.StatusCode, e.Message, e.ErrorCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
