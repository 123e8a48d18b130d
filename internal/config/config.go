// Package config loads the YAML run configuration for dotmap.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category maps one counts column to its display label and dot color.
type Category struct {
	Column string `yaml:"column"`
	Label  string `yaml:"label"`
	Color  string `yaml:"color"`
}

type Config struct {
	// Features is the GeoJSON file with the polygon features.
	Features string `yaml:"features"`
	// IDProperty names the feature property used as the join key.
	IDProperty string `yaml:"id_property"`
	// Counts is the CSV with raw values, one row per feature key.
	Counts string `yaml:"counts"`
	// KeyColumn names the CSV column holding the join key.
	KeyColumn string `yaml:"key_column"`
	// UnitPerDot is the raw quantity one dot stands for.
	UnitPerDot float64 `yaml:"unit_per_dot"`

	Method  string `yaml:"method"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`

	Listen string `yaml:"listen"`

	Categories []Category `yaml:"categories"`
}

var defaultColors = []string{"#E24A33", "#348ABD", "#988ED5", "#8EBA42", "#FBC15E", "#777777"}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.IDProperty == "" {
		c.IDProperty = "id"
	}
	if c.KeyColumn == "" {
		c.KeyColumn = c.IDProperty
	}
	if c.UnitPerDot == 0 {
		c.UnitPerDot = 100
	}
	if c.Method == "" {
		c.Method = "random"
	}
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	for i := range c.Categories {
		if c.Categories[i].Label == "" {
			c.Categories[i].Label = c.Categories[i].Column
		}
		if c.Categories[i].Color == "" {
			c.Categories[i].Color = defaultColors[i%len(defaultColors)]
		}
	}
}

func (c *Config) Validate() error {
	if c.Features == "" {
		return fmt.Errorf("config: features path is required")
	}
	if c.Counts == "" {
		return fmt.Errorf("config: counts path is required")
	}
	if c.UnitPerDot <= 0 {
		return fmt.Errorf("config: unit_per_dot must be positive, got %g", c.UnitPerDot)
	}
	if c.Method != "regular" && c.Method != "random" {
		return fmt.Errorf("config: method must be regular or random, got %q", c.Method)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: at least one category is required")
	}
	for _, cat := range c.Categories {
		if cat.Column == "" {
			return fmt.Errorf("config: category without a column")
		}
	}
	return nil
}

// Columns returns the counts columns in configured order.
func (c *Config) Columns() []string {
	cols := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cols = append(cols, cat.Column)
	}
	return cols
}
