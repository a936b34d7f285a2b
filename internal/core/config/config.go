package config

import "time"

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Frontend FrontendConfig `yaml:"frontend"`
	Aptos    AptosConfig    `yaml:"aptos"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds backend HTTP server settings.
type ServerConfig struct {
	Port           int  `yaml:"port"`
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// FrontendConfig holds status page server settings.
type FrontendConfig struct {
	Port int `yaml:"port"`
}

// AptosConfig holds settings for the Aptos fullnode and faucet.
type AptosConfig struct {
	Network   string        `yaml:"network"` // mainnet, testnet, devnet, local, custom
	NodeURL   string        `yaml:"node_url"`
	FaucetURL string        `yaml:"faucet_url"`
	Timeout   time.Duration `yaml:"timeout"` // 0 = no client-side timeout
}

// StorageConfig holds the decentralized storage gateway.
type StorageConfig struct {
	IPFSURL string `yaml:"ipfs_url"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
