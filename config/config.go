/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for figvars.
package config

import (
	"fmt"
	"time"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/convert/formatter/css"
)

// Config represents the figvars configuration file.
type Config struct {
	// Groups is the group priority list. Only these groups are exported,
	// in this order.
	Groups []string `yaml:"groups" json:"groups" toml:"groups"`

	// AddPx appends "px" to numeric values in PxGroup.
	AddPx bool `yaml:"addPx" json:"addPx" toml:"addPx"`

	// PxGroup names the group AddPx applies to.
	PxGroup string `yaml:"pxGroup" json:"pxGroup" toml:"pxGroup"`

	// Selector wraps declarations in a rule block, e.g. ":root".
	Selector string `yaml:"selector" json:"selector" toml:"selector"`

	// Header is a comment written at the top of the output.
	Header string `yaml:"header" json:"header" toml:"header"`

	// Files lists snapshot files to export (paths or globs).
	Files []string `yaml:"files" json:"files" toml:"files"`

	// Output is the CSS file to write. Empty means stdout.
	Output string `yaml:"output" json:"output" toml:"output"`

	// Concurrency bounds parallel variable fetches.
	Concurrency int `yaml:"concurrency" json:"concurrency" toml:"concurrency"`

	// Timeout bounds an export, as a Go duration string ("30s").
	Timeout string `yaml:"timeout" json:"timeout" toml:"timeout"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Groups:      css.DefaultGroups(),
		PxGroup:     css.DefaultPxGroup,
		Concurrency: collector.DefaultConcurrency,
	}
}

// withDefaults fills unset fields from Default.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.Groups == nil {
		c.Groups = d.Groups
	}
	if c.PxGroup == "" {
		c.PxGroup = d.PxGroup
	}
	if c.Concurrency <= 0 {
		c.Concurrency = d.Concurrency
	}
	return c
}

// TimeoutDuration parses Timeout. An empty Timeout is zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
