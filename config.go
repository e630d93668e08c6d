package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/seme/internal/anchors"
)

// Config of the analyzer.
type Config struct {
	// Predefined enables built-in anchor groups.
	Predefined bool `yaml:"predefined"`

	// MinBlocks is the smallest number of member blocks a reported region can have.
	MinBlocks int `yaml:"min-blocks"`

	// Verify enables region invariant checks.
	Verify bool `yaml:"verify"`

	// Detail controls region description in messages.
	Detail Detail `yaml:"detail"`

	// Anchors are custom anchor callees.
	Anchors []AnchorSpec `yaml:"anchors"`
}

func defaultConfig() *Config {
	return &Config{
		Predefined: true,
		MinBlocks:  1,
		Detail:     DetailTails,
	}
}

var (
	configsLock sync.Mutex
	configs     = map[string]*Config{}
)

// loadConfig reads the config at path once and serves later requests from the cache.
// An empty path means the default config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	configsLock.Lock()
	defer configsLock.Unlock()

	if cfg, ok := configs[path]; ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	configs[path] = cfg
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	cfg := defaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinBlocks < 1 {
		return fmt.Errorf("min-blocks must be positive, got %d", c.MinBlocks)
	}

	if c.Detail == DetailInvalid {
		return errors.New("detail must be set")
	}

	for i, a := range c.Anchors {
		if a.Ref.Name == "" {
			return fmt.Errorf("anchor %d has no reference", i)
		}
		if !anchors.ValidGroup(a.Group) {
			return fmt.Errorf("anchor %s has invalid group %q", a.Ref, a.Group)
		}
	}

	return nil
}

// matcher builds the callee matcher. Custom anchors take precedence over predefined ones.
func (c *Config) matcher() *anchors.Matcher {
	m := anchors.NewMatcher()
	if c.Predefined {
		for ref, group := range predefinedLockFuncs() {
			m.Register(ref, group)
		}
		for ref, group := range predefinedAbandonFuncs() {
			m.Register(ref, group)
		}
	}

	for _, a := range c.Anchors {
		m.Register(a.Ref, a.Group)
	}

	return m
}
