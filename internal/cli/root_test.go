package cli

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/nftplatform/internal/core/config"
)

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "frontend", "probe"} {
		assert.True(t, names[want], "missing command %q", want)
	}

	flag := rootCmd.PersistentFlags().Lookup("config")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "config.yaml", flag.DefValue)
	}
}

func TestSetupLogging_Level(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	setupLogging(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	setupLogging(config.LoggingConfig{Level: "debug", Format: "json"})
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func runProbeAgainst(t *testing.T, nodeURL string, detailed bool) (string, error) {
	t.Helper()
	prev := slog.Default()
	prevVerbose := verbose
	t.Cleanup(func() {
		slog.SetDefault(prev)
		verbose = prevVerbose
	})

	t.Setenv("APTOS_NODE_URL", nodeURL)
	t.Setenv("APTOS_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")
	verbose = detailed

	var out bytes.Buffer
	probeCmd.SetOut(&out)
	t.Cleanup(func() { probeCmd.SetOut(nil) })

	err := runProbe(probeCmd, nil)
	return out.String(), err
}

func TestRunProbe_Connected(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chain_id":2,"ledger_version":"11","block_height":"5"}`))
	}))
	defer node.Close()

	out, err := runProbeAgainst(t, node.URL+"/v1", true)

	require.NoError(t, err)
	assert.Contains(t, out, "Aptos Connection Status: Checking...\nAptos Connection Status: Connected\n")
	assert.Contains(t, out, "AVAILABLE")
	assert.Contains(t, out, "REQUESTS (1H)")
	assert.Contains(t, out, "healthy")
}

func TestRunProbe_NotConnectedReturnsError(t *testing.T) {
	node := httptest.NewServer(http.NotFoundHandler())
	nodeURL := node.URL + "/v1"
	node.Close()

	out, err := runProbeAgainst(t, nodeURL, false)

	assert.ErrorIs(t, err, errNotConnected)
	assert.Contains(t, out, "Aptos Connection Status: Not Connected")
}
