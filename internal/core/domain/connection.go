package domain

import "time"

// ConnectionResult is the outcome of one reachability probe.
// Err carries the reason when Reachable is false; callers that only need a
// yes/no answer use Connected.
type ConnectionResult struct {
	Reachable bool
	Err       error
	Latency   time.Duration
	Ledger    *LedgerInfo
	CheckedAt time.Time
}

// Connected reports whether the node answered the probe.
func (r ConnectionResult) Connected() bool {
	return r.Reachable
}

// Reason returns the failure reason, or an empty string when reachable.
func (r ConnectionResult) Reason() string {
	if r.Reachable || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
