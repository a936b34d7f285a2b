package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/nftplatform/internal/core/domain"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultPort         = 3001
	DefaultFrontendPort = 3000
	DefaultNetwork      = "testnet"
	DefaultNodeURL      = "https://fullnode.testnet.aptoslabs.com/v1"
	DefaultFaucetURL    = "https://faucet.testnet.aptoslabs.com"
	DefaultIPFSURL      = "https://ipfs.infura.io:5001"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from an optional YAML file, then applies
// environment overrides and defaults. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// env + defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			// Expand environment variables in the YAML content
			expandedData := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT: %v", ErrInvalidConfig, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("FRONTEND_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FRONTEND_PORT: %v", ErrInvalidConfig, err)
		}
		cfg.Frontend.Port = port
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: METRICS_ENABLED: %v", ErrInvalidConfig, err)
		}
		cfg.Server.MetricsEnabled = enabled
	}
	if v := os.Getenv("APTOS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: APTOS_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.Aptos.Timeout = d
	}

	setString(&cfg.Aptos.Network, "APTOS_NETWORK")
	setString(&cfg.Aptos.NodeURL, "APTOS_NODE_URL")
	setString(&cfg.Aptos.FaucetURL, "APTOS_FAUCET_URL")
	setString(&cfg.Storage.IPFSURL, "IPFS_NODE_URL")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Frontend.Port == 0 {
		cfg.Frontend.Port = DefaultFrontendPort
	}
	if cfg.Aptos.Network == "" {
		cfg.Aptos.Network = DefaultNetwork
	}
	if cfg.Aptos.NodeURL == "" {
		cfg.Aptos.NodeURL = DefaultNodeURL
	}
	if cfg.Aptos.FaucetURL == "" {
		cfg.Aptos.FaucetURL = DefaultFaucetURL
	}
	if cfg.Storage.IPFSURL == "" {
		cfg.Storage.IPFSURL = DefaultIPFSURL
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// Validate checks ports, URLs and the network name.
func (c *AppConfig) Validate() error {
	for name, port := range map[string]int{"server.port": c.Server.Port, "frontend.port": c.Frontend.Port} {
		if port < 1 || port > 65535 {
			return fmt.Errorf("%w: %s %d out of range", ErrInvalidConfig, name, port)
		}
	}
	if _, err := domain.ParseNetwork(c.Aptos.Network); err != nil {
		return fmt.Errorf("%w: aptos.network: %v", ErrInvalidConfig, err)
	}
	if c.Aptos.Timeout < 0 {
		return fmt.Errorf("%w: aptos.timeout must not be negative", ErrInvalidConfig)
	}

	urls := []struct {
		name, value string
	}{
		{"aptos.node_url", c.Aptos.NodeURL},
		{"aptos.faucet_url", c.Aptos.FaucetURL},
		{"storage.ipfs_url", c.Storage.IPFSURL},
	}
	for _, u := range urls {
		if err := validateURL(u.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, u.name, err)
		}
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
