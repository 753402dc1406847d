/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FIGVARS_ADD_PX=true.
const EnvPrefix = "FIGVARS"

// Setting keys shared by flags, environment variables, and the config file.
const (
	KeyGroups      = "groups"
	KeyAddPx       = "add-px"
	KeyPxGroup     = "px-group"
	KeySelector    = "selector"
	KeyHeader      = "header"
	KeyFiles       = "files"
	KeyOutput      = "output"
	KeyConcurrency = "concurrency"
	KeyTimeout     = "timeout"
)

// Settings layers flags over environment variables over the config file.
// Changed flags win; unchanged flags fall back to the environment, then
// to the file values.
func (c *Config) Settings(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyGroups, c.Groups)
	v.SetDefault(KeyAddPx, c.AddPx)
	v.SetDefault(KeyPxGroup, c.PxGroup)
	v.SetDefault(KeySelector, c.Selector)
	v.SetDefault(KeyHeader, c.Header)
	v.SetDefault(KeyFiles, c.Files)
	v.SetDefault(KeyOutput, c.Output)
	v.SetDefault(KeyConcurrency, c.Concurrency)
	v.SetDefault(KeyTimeout, c.Timeout)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Resolve returns the effective Config after flags and environment overrides.
func (c *Config) Resolve(flags *pflag.FlagSet) (*Config, error) {
	v, err := c.Settings(flags)
	if err != nil {
		return nil, err
	}
	resolved := &Config{
		Groups:      stringSlice(v.Get(KeyGroups)),
		AddPx:       v.GetBool(KeyAddPx),
		PxGroup:     v.GetString(KeyPxGroup),
		Selector:    v.GetString(KeySelector),
		Header:      v.GetString(KeyHeader),
		Files:       stringSlice(v.Get(KeyFiles)),
		Output:      v.GetString(KeyOutput),
		Concurrency: v.GetInt(KeyConcurrency),
		Timeout:     v.GetString(KeyTimeout),
	}
	if _, err := resolved.TimeoutDuration(); err != nil {
		return nil, err
	}
	return resolved.withDefaults(), nil
}

// stringSlice reads list settings. Environment values are comma separated,
// since group names contain spaces.
func stringSlice(value any) []string {
	switch val := value.(type) {
	case nil:
		return nil
	case []string:
		return val
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
