package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPProvider_ExecuteREST(t *testing.T) {
	// Mock Server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1" {
			t.Errorf("expected path /v1, got %s", r.URL.Path)
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept application/json, got %s", r.Header.Get("Accept"))
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"chain_id":       2,
			"ledger_version": "6524810321",
		})
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL+"/v1/", 5*time.Second)

	result, err := p.Execute(context.Background(), Operation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var data map[string]any
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if data["ledger_version"] != "6524810321" {
		t.Errorf("expected ledger_version 6524810321, got %v", data["ledger_version"])
	}

	health := p.GetHealth()
	if !health.Available || health.ErrorRate != 0 {
		t.Errorf("expected healthy provider, got %+v", health)
	}
	if health.MonitorStats == nil || health.MonitorStats.RequestsLastHour != 1 {
		t.Errorf("expected 1 recorded request, got %+v", health.MonitorStats)
	}
}

func TestHTTPProvider_ExecuteREST_WithParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/view" {
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("ledger_version") != "42" {
			t.Errorf("expected ledger_version=42, got %s", r.URL.RawQuery)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %s", r.Header.Get("Content-Type"))
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		if body["function"] != "0x1::coin::balance" {
			t.Errorf("expected function 0x1::coin::balance, got %v", body["function"])
		}

		_ = json.NewEncoder(w).Encode([]string{"100"})
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL+"/v1", 5*time.Second)

	op := Operation{
		Name:   "/view",
		Method: http.MethodPost,
		Query:  url.Values{"ledger_version": []string{"42"}},
		Body:   map[string]any{"function": "0x1::coin::balance"},
	}

	if _, err := p.Execute(context.Background(), op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPProvider_ExecuteREST_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"node is syncing","error_code":"internal_error"}`))
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL, 5*time.Second)

	_, err := p.Execute(context.Background(), Operation{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.Message != "node is syncing" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
	if p.GetHealth().ErrorRate != 1 {
		t.Errorf("expected error rate 1, got %v", p.GetHealth().ErrorRate)
	}
	if p.GetHealth().Available {
		t.Error("expected provider unavailable after failures only")
	}
}

func TestHTTPProvider_ExecuteREST_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL, 5*time.Second)

	if _, err := p.Execute(context.Background(), Operation{}); err == nil {
		t.Fatal("expected error on 429")
	}
	if got := p.Monitor.GetStats().ThrottleCount429; got != 1 {
		t.Errorf("expected 1 throttle, got %d", got)
	}
	if ra := p.GetHealth().MonitorStats.RetryAfter; ra <= 0 || ra > 5*time.Second {
		t.Errorf("expected retry-after within 5s, got %v", ra)
	}
}

func TestHTTPProvider_BlockedIsUnavailable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"chain_id":2}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL, 5*time.Second)

	if _, err := p.Execute(context.Background(), Operation{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.GetHealth().Available {
		t.Fatal("expected provider available after success")
	}

	if _, err := p.Execute(context.Background(), Operation{}); err == nil {
		t.Fatal("expected error on 403")
	}
	health := p.GetHealth()
	if health.Available {
		t.Error("expected blocked provider to be unavailable")
	}
	if health.MonitorStats.Status != StatusBlocked {
		t.Errorf("expected blocked, got %s", health.MonitorStats.Status)
	}
}

func TestHTTPProvider_ExecuteREST_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>captive portal</html>"))
	}))
	defer server.Close()

	p := NewHTTPProvider("aptos-mock", server.URL, 5*time.Second)

	if _, err := p.Execute(context.Background(), Operation{}); err == nil {
		t.Fatal("expected error on non-JSON body")
	}
}

func TestHTTPProvider_ExecuteREST_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	p := NewHTTPProvider("aptos-mock", endpoint, 5*time.Second)

	if _, err := p.Execute(context.Background(), Operation{}); err == nil {
		t.Fatal("expected error for closed server")
	}
}
