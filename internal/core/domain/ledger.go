package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// LedgerInfo is the node's view of the ledger as returned by GET /v1.
type LedgerInfo struct {
	ChainID             ChainID `json:"chain_id"`
	Epoch               uint64  `json:"epoch"`
	LedgerVersion       uint64  `json:"ledger_version"`
	OldestLedgerVersion uint64  `json:"oldest_ledger_version"`
	LedgerTimestamp     uint64  `json:"ledger_timestamp"` // microseconds
	NodeRole            string  `json:"node_role"`
	OldestBlockHeight   uint64  `json:"oldest_block_height"`
	BlockHeight         uint64  `json:"block_height"`
	GitHash             string  `json:"git_hash,omitempty"`
}

// Timestamp converts the ledger timestamp to wall-clock time.
func (l *LedgerInfo) Timestamp() time.Time {
	return time.UnixMicro(int64(l.LedgerTimestamp)).UTC()
}

// rawLedgerInfo mirrors the wire format: u64 values travel as decimal strings.
type rawLedgerInfo struct {
	ChainID             *uint8 `json:"chain_id"`
	Epoch               string `json:"epoch"`
	LedgerVersion       string `json:"ledger_version"`
	OldestLedgerVersion string `json:"oldest_ledger_version"`
	LedgerTimestamp     string `json:"ledger_timestamp"`
	NodeRole            string `json:"node_role"`
	OldestBlockHeight   string `json:"oldest_block_height"`
	BlockHeight         string `json:"block_height"`
	GitHash             string `json:"git_hash"`
}

// ErrMissingChainID is returned when a ledger info payload has no chain_id.
var ErrMissingChainID = errors.New("ledger info: missing chain_id")

// ParseLedgerInfo decodes a ledger info response body.
func ParseLedgerInfo(data []byte) (*LedgerInfo, error) {
	var raw rawLedgerInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ledger info: %w", err)
	}
	if raw.ChainID == nil {
		return nil, ErrMissingChainID
	}

	info := &LedgerInfo{
		ChainID:  ChainID(*raw.ChainID),
		NodeRole: raw.NodeRole,
		GitHash:  raw.GitHash,
	}

	fields := []struct {
		name string
		in   string
		out  *uint64
	}{
		{"epoch", raw.Epoch, &info.Epoch},
		{"ledger_version", raw.LedgerVersion, &info.LedgerVersion},
		{"oldest_ledger_version", raw.OldestLedgerVersion, &info.OldestLedgerVersion},
		{"ledger_timestamp", raw.LedgerTimestamp, &info.LedgerTimestamp},
		{"oldest_block_height", raw.OldestBlockHeight, &info.OldestBlockHeight},
		{"block_height", raw.BlockHeight, &info.BlockHeight},
	}
	for _, f := range fields {
		if f.in == "" {
			continue
		}
		v, err := strconv.ParseUint(f.in, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ledger info %s: %w", f.name, err)
		}
		*f.out = v
	}

	return info, nil
}
