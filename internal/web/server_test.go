package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnv = PublicEnv{
	Network:   "testnet",
	NodeURL:   "https://fullnode.testnet.aptoslabs.com/v1",
	FaucetURL: "https://faucet.testnet.aptoslabs.com",
	IPFSURL:   "https://ipfs.infura.io:5001",
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_PageLifecycle(t *testing.T) {
	checker := newGatedChecker(true)
	srv := NewServer(checker, testEnv, 3000)

	rec := get(t, srv.Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<h1>NFT Platform</h1>")
	assert.Contains(t, rec.Body.String(), "Aptos Connection Status: Checking...")

	srv.Mount(context.Background())
	close(checker.release)
	waitDone(t, srv.View())

	rec = get(t, srv.Handler(), "/")
	assert.Contains(t, rec.Body.String(), "Aptos Connection Status: Connected")
	assert.NotContains(t, rec.Body.String(), "Checking...")
	assert.Contains(t, rec.Body.String(), `data-node-url="https://fullnode.testnet.aptoslabs.com/v1"`)

	// Serving the page again never re-probes.
	get(t, srv.Handler(), "/")
	assert.Equal(t, int64(1), checker.calls.Load())
}

func TestServer_StatusEndpoint(t *testing.T) {
	checker := newGatedChecker(false)
	close(checker.release)
	srv := NewServer(checker, testEnv, 3000)

	srv.Mount(context.Background())
	waitDone(t, srv.View())

	rec := get(t, srv.Handler(), "/api/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, StatusResponse{State: "not_connected", Text: "Aptos Connection Status: Not Connected"}, body)
}

func TestPage_EscapesEnv(t *testing.T) {
	view := NewStatusView(newGatedChecker(true))
	page := NewPage(view, PublicEnv{NodeURL: `https://evil"><script>alert(1)</script>`})

	var sb strings.Builder
	require.NoError(t, page.Render(&sb))
	assert.NotContains(t, sb.String(), "<script>alert(1)</script>")
}

func TestServer_StopUnmounts(t *testing.T) {
	checker := newGatedChecker(true)
	srv := NewServer(checker, testEnv, 3000)

	srv.Mount(context.Background())
	require.NoError(t, srv.Stop(context.Background()))
	close(checker.release)
	waitDone(t, srv.View())

	assert.Equal(t, StateChecking, srv.View().State())
}
