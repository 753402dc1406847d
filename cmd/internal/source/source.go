/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source resolves the configuration and snapshot inputs shared by
// the export and list commands.
package source

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/figvars/config"
	"bennypowers.dev/figvars/fs"
	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/provider/snapshot"
)

// ErrNoInputs indicates that neither arguments nor the config named any snapshot.
var ErrNoInputs = errors.New("no snapshot files given and none configured")

// Config loads the file named by --config, or searches rootDir, then
// applies flag and environment overrides.
func Config(cmd *cobra.Command, filesystem fs.FileSystem, rootDir string) (*config.Config, error) {
	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault(filesystem, rootDir)
	}
	return cfg.Resolve(cmd.Flags())
}

// Open expands args, or the configured files when args is empty, and loads
// the snapshots in order.
func Open(filesystem fs.FileSystem, cfg *config.Config, rootDir string, args []string) (*snapshot.Provider, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Files
	}
	paths, err := config.ExpandPatterns(filesystem, rootDir, patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding inputs: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}
	logger.Debug("loading %d snapshot file(s)", len(paths))
	return snapshot.Load(filesystem, paths...)
}
