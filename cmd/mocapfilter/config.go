package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-mocap/mocap/smooth"
)

const maxConfigSize = 64 * 1024

// filterConfig holds filter defaults read from a JSON file. Unset fields
// are nil; command-line values always win.
type filterConfig struct {
	Order    *int     `json:"order,omitempty"`
	CutoffHz *float64 `json:"cutoff_hz,omitempty"`
	Domains  *string  `json:"domains,omitempty"`
	LogLevel *string  `json:"log_level,omitempty"`
}

func loadFilterConfig(path string) (*filterConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &filterConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges. Filter feasibility against a sample rate
// is left to the filter designer.
func (c *filterConfig) Validate() error {
	if c.Order != nil && *c.Order < 1 {
		return fmt.Errorf("order must be >= 1, got %d", *c.Order)
	}
	if c.CutoffHz != nil && !(*c.CutoffHz > 0) {
		return fmt.Errorf("cutoff_hz must be positive, got %g", *c.CutoffHz)
	}
	if c.Domains != nil {
		if _, err := smooth.ParseDomains(*c.Domains); err != nil {
			return err
		}
	}
	return nil
}

func (c *filterConfig) domains() smooth.Domain {
	if c == nil || c.Domains == nil {
		return 0
	}
	d, _ := smooth.ParseDomains(*c.Domains)
	return d
}
