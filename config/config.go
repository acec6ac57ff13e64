package config

import (
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Config carries the tool-level knobs. The hash itself has none; capacity and
// the SIMD switch only change cost, never results.
type Config struct {
	// CacheCapacity is the number of matrix lists the seed cache may hold.
	// Every resident list is 32 MiB.
	CacheCapacity int         `toml:"cache_capacity"`
	Simd          *SimdConfig `toml:"simd"`
}

// SimdConfig is the switch for the cgo SIMD kernel.
type SimdConfig struct {
	Enable bool `toml:"enable"`
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		CacheCapacity: 42,
		Simd:          &SimdConfig{Enable: false},
	}
}

// Load reads a TOML config from path, falling back to defaults when the file
// does not exist.
func Load(path string) *Config {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{"module": "config", "error": err}).Warn("fail on decode config file, use default")
		}
	}
	if config.Simd == nil {
		config.Simd = &SimdConfig{}
	}
	return config
}
