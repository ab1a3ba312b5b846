package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/stagecraft/catalogd/errors"
)

// Config is the root catalogd.yml structure.
type Config struct {
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Listen configures the command transport endpoint.
	Listen ListenConfig `yaml:"listen" json:"listen"`

	// Limits bounds catalog traversal and search result shaping.
	Limits LimitsConfig `yaml:"limits" json:"limits"`

	// Defaults holds the curated preference lists for load_default commands.
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`

	// Hotswap configures hotswap session behavior.
	Hotswap HotswapConfig `yaml:"hotswap" json:"hotswap"`

	// Catalog points the daemon at a simulated catalog snapshot. Empty when
	// the library is embedded in a real host.
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`

	// Extensions captures unknown top-level sections (e.g. "logging") so
	// components can decode their own configuration.
	Extensions map[string]interface{} `yaml:",inline" json:"-"`
}

// ListenConfig configures the websocket command endpoint.
type ListenConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// LimitsConfig bounds traversal and result shaping.
type LimitsConfig struct {
	// PerCategoryCap is the maximum number of search matches kept per category.
	PerCategoryCap int `yaml:"per_category_cap" json:"per_category_cap"`
	// TotalCap is the maximum number of search matches returned overall.
	TotalCap int `yaml:"total_cap" json:"total_cap"`
	// SearchDepth is the hard traversal cutoff for search, relative to a
	// category root.
	SearchDepth int `yaml:"search_depth" json:"search_depth"`
	// ResolveDepth is the safety recursion bound for name resolution on
	// host trees of untrusted depth.
	ResolveDepth int `yaml:"resolve_depth" json:"resolve_depth"`
}

// DefaultsConfig holds curated preference lists, tried in order, for the
// load_default commands. Items known to produce output without further
// configuration come first.
type DefaultsConfig struct {
	Instruments []string `yaml:"instruments" json:"instruments"`
	DrumKits    []string `yaml:"drum_kits" json:"drum_kits"`
}

// HotswapConfig configures the hotswap session.
type HotswapConfig struct {
	// ClearAfterLoad disarms the session after a successful hotswap_load.
	// The host's native behavior keeps it armed, so this defaults to false.
	ClearAfterLoad bool `yaml:"clear_after_load" json:"clear_after_load"`
}

// CatalogConfig points at a simulated catalog snapshot file.
type CatalogConfig struct {
	Snapshot string `yaml:"snapshot" json:"snapshot,omitempty"`
}

// SetDefaults fills in zero-valued fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Listen.Addr == "" {
		c.Listen.Addr = "127.0.0.1:17870"
	}
	if c.Limits.PerCategoryCap == 0 {
		c.Limits.PerCategoryCap = 10
	}
	if c.Limits.TotalCap == 0 {
		c.Limits.TotalCap = 50
	}
	if c.Limits.SearchDepth == 0 {
		c.Limits.SearchDepth = 3
	}
	if c.Limits.ResolveDepth == 0 {
		c.Limits.ResolveDepth = 32
	}
	if len(c.Defaults.Instruments) == 0 {
		// Synths before samplers: samplers need samples to make sound.
		c.Defaults.Instruments = []string{
			"Drift", "Analog", "Wavetable", "Operator", "Tension", "Collision",
		}
	}
	if len(c.Defaults.DrumKits) == 0 {
		c.Defaults.DrumKits = []string{"808 Core Kit", "707 Core Kit", "606 Core Kit"}
	}
}

// Validate checks semantic constraints that the schema cannot express.
func (c *Config) Validate() error {
	if c.Listen.Addr == "" {
		return errors.ConfigInvalid("listen.addr must not be empty")
	}
	if c.Limits.PerCategoryCap < 1 {
		return errors.ConfigInvalid("limits.per_category_cap must be at least 1")
	}
	if c.Limits.TotalCap < 1 {
		return errors.ConfigInvalid("limits.total_cap must be at least 1")
	}
	if c.Limits.SearchDepth < 1 {
		return errors.ConfigInvalid("limits.search_depth must be at least 1")
	}
	if c.Limits.ResolveDepth < 1 {
		return errors.ConfigInvalid("limits.resolve_depth must be at least 1")
	}
	for _, name := range c.Defaults.Instruments {
		if name == "" {
			return errors.ConfigInvalid("defaults.instruments must not contain empty names")
		}
	}
	for _, name := range c.Defaults.DrumKits {
		if name == "" {
			return errors.ConfigInvalid("defaults.drum_kits must not contain empty names")
		}
	}
	return nil
}

// UnmarshalExtension decodes a specific extension section from the loaded
// catalogd.yml into the provided target struct. The target must be a pointer.
// A missing section is not an error; the target simply stays zero-valued.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Decode the generic map into the strongly-typed target, reusing the
	// yaml tags for field names.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
