package atoll

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk client configuration. The cluster URLs and the
// exchange timeout are configuration, not compiled-in constants; every
// field is optional and falls back to the built-in defaults.
//
//	timeout_seconds = 30
//
//	[endpoints]
//	localnet = "http://127.0.0.1:8899"
//	devnet = "https://my-devnet-proxy.example.com"
type Config struct {
	TimeoutSeconds int               `toml:"timeout_seconds"`
	Endpoints      map[string]string `toml:"endpoints"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Client builds a client from the configuration. Unknown cluster names in
// the endpoints table are rejected.
func (cfg Config) Client() (*Client, error) {
	c := &Client{}
	if cfg.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if len(cfg.Endpoints) > 0 {
		c.Endpoints = make(map[Cluster]string, len(cfg.Endpoints))
		for name, url := range cfg.Endpoints {
			cluster, err := ParseCluster(name)
			if err != nil {
				return nil, fmt.Errorf("endpoints: %w", err)
			}
			c.Endpoints[cluster] = url
		}
	}
	return c, nil
}
