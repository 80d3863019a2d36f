// Package config manages anagramd's TOML configuration: the knobs that in
// the original C implementation were compile-time macros (POOL_MAX_WORDS,
// POOL_HASH_BUCKETS, MAX_CHAIN_DEPTH, and so on) become a config file here,
// since a Go binary doesn't need to be recompiled to change them.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Regime selects which memory model the engine's store and index use.
// Host favors throughput and unbounded growth; Embedded favors a fixed,
// predictable memory footprint at the cost of silently capping some
// collections.
type Regime string

const (
	RegimeHost     Regime = "host"
	RegimeEmbedded Regime = "embedded"
)

// Config is the full anagramd configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	CLI    CLIConfig    `toml:"cli"`
}

// EngineConfig governs the word store, signature index, and search limits.
type EngineConfig struct {
	Regime        Regime `toml:"regime"`
	MaxWordLength int    `toml:"max_word_length"`
	MaxWords      int    `toml:"max_words"`
	HashBuckets   int    `toml:"hash_buckets"`
	MaxChainDepth int    `toml:"max_chain_depth"`
	MaxChains     int    `toml:"max_chains"`
	MaxIDsPerSig  int    `toml:"max_ids_per_sig"`
}

// CLIConfig governs the interactive and one-shot CLI surfaces.
type CLIConfig struct {
	SuggestOnMiss bool `toml:"suggest_on_miss"`
	SuggestLimit  int  `toml:"suggest_limit"`
}

// DefaultHostConfig returns the engine's unbounded, heap-regime defaults:
// generous capacity, no per-signature id cap.
func DefaultHostConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Regime:        RegimeHost,
			MaxWordLength: 256,
			MaxWords:      1_000_000,
			HashBuckets:   1 << 20,
			MaxChainDepth: 256,
			MaxChains:     100_000,
			MaxIDsPerSig:  0,
		},
		CLI: CLIConfig{
			SuggestOnMiss: true,
			SuggestLimit:  5,
		},
	}
}

// DefaultEmbeddedConfig returns the fixed-footprint, static-regime
// defaults, sized the way the original implementation's PLATFORM_ARM
// build profile sized its pools: small and bounded.
func DefaultEmbeddedConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Regime:        RegimeEmbedded,
			MaxWordLength: 32,
			MaxWords:      8192,
			HashBuckets:   1024,
			MaxChainDepth: 16,
			MaxChains:     8,
			MaxIDsPerSig:  8,
		},
		CLI: CLIConfig{
			SuggestOnMiss: true,
			SuggestLimit:  3,
		},
	}
}

// DefaultConfig returns the host regime's defaults, anagramd's baseline
// when no config file and no --regime flag override it.
func DefaultConfig() *Config {
	return DefaultHostConfig()
}

// Load reads path as TOML into a fresh Config seeded with DefaultConfig,
// so a config file only needs to specify the keys it wants to override.
// A missing file is not an error — it returns DefaultConfig() unchanged
// so first-run behavior needs no setup step.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("config: failed to parse %s: %v. Using defaults.", path, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
