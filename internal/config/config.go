package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	defaultContract = "gpudao1contract"
	defaultChainID  = "paloma"

	configFile = "config.json"
	storeFile  = "state.db"

	// EnvDir overrides the default config directory.
	EnvDir = "GPUDAO_CONFIG_DIR"
)

// ErrUnknownKey is returned by Get and Set for a key Config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// Load reads config from dir (or creates defaults). dir defaults to
// $GPUDAO_CONFIG_DIR, then ~/.gpudao.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv(EnvDir)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".gpudao")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join(dir, storeFile)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return *f(c), nil
}

// Set stores value under key. Surrounding whitespace is trimmed.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	value = strings.TrimSpace(value)
	if value == "" && (key == "contract_address" || key == "store_path") {
		return fmt.Errorf("%s cannot be empty", key)
	}
	*f(c) = value
	return nil
}

// --- helpers ---

var fields = map[string]func(*Config) *string{
	"contract_address": func(c *Config) *string { return &c.ContractAddress },
	"chain_id":         func(c *Config) *string { return &c.ChainID },
	"store_path":       func(c *Config) *string { return &c.StorePath },
	"default_sender":   func(c *Config) *string { return &c.DefaultSender },
	"default_chain":    func(c *Config) *string { return &c.DefaultChain },
}

func defaults(dir string) *Config {
	return &Config{
		ContractAddress: defaultContract,
		ChainID:         defaultChainID,
		StorePath:       filepath.Join(dir, storeFile),
		configDir:       dir,
	}
}
