package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/crest"
)

type Config struct {
	Icons     string `koanf:"icons"`     // "nerd", "unicode", or "none"
	Verbosity int    `koanf:"verbosity"` // 0=warn, 1=info, 2=debug, 3+=trace

	Registry RegistryConfig `koanf:"registry"`

	// Desktop notifications for binding changes
	Notify NotifyConfig `koanf:"notify"`
}

// RegistryConfig mirrors the registry's behavior flags.
type RegistryConfig struct {
	KeepPosition         *bool          `koanf:"keep_position"`         // reuse slot across rebinds (default: true)
	AdditiveActions      *bool          `koanf:"additive_actions"`      // bind on taken name adds callbacks (default: true)
	ConsistentAppearance *bool          `koanf:"consistent_appearance"` // normalize buttons on bind (default: true)
	AppearanceDelayMs    int            `koanf:"appearance_delay_ms"`   // debounce window (default: 150)
	Slots                []SlotPosition `koanf:"slots"`                 // custom slot table (default: built-in column)
}

// SlotPosition is one slot table entry in normalized coordinates.
type SlotPosition struct {
	X float64 `koanf:"x"`
	Y float64 `koanf:"y"`
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	Enabled bool `koanf:"enabled"` // announce binding changes (default: off)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single file instead of the default search paths. Unlike
// Load, a missing file is an error here: the caller asked for it by name.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/crest/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "crest", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// Options converts the registry section into crest options. Unset fields
// produce no option, leaving the registry defaults in place.
func (c *Config) Options() []crest.Option {
	var opts []crest.Option
	if c.Registry.KeepPosition != nil {
		opts = append(opts, crest.WithKeepPosition(*c.Registry.KeepPosition))
	}
	if c.Registry.AdditiveActions != nil {
		opts = append(opts, crest.WithAdditiveActions(*c.Registry.AdditiveActions))
	}
	if c.Registry.ConsistentAppearance != nil {
		opts = append(opts, crest.WithConsistentAppearance(*c.Registry.ConsistentAppearance))
	}
	if c.Registry.AppearanceDelayMs > 0 {
		opts = append(opts, crest.WithAppearanceDelay(time.Duration(c.Registry.AppearanceDelayMs)*time.Millisecond))
	}
	if len(c.Registry.Slots) > 0 {
		table := make([]crest.Position, len(c.Registry.Slots))
		for i, s := range c.Registry.Slots {
			table[i] = crest.Position{X: s.X, Y: s.Y}
		}
		opts = append(opts, crest.WithSlotTable(table))
	}
	return opts
}
