/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for figvars.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/figvars/cmd/internal/source"
	"bennypowers.dev/figvars/config"
	"bennypowers.dev/figvars/convert/formatter/css"
	exportlib "bennypowers.dev/figvars/export"
	"bennypowers.dev/figvars/fs"
	"bennypowers.dev/figvars/internal/logger"
)

// NoVariablesNotice is printed when an export produces no declarations.
const NoVariablesNotice = "No variables to export."

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export variables as CSS custom properties",
	Long: `Export variables from local-variables snapshots (JSON or YAML) as CSS
custom properties, grouped and ordered by the group priority list.

Examples:
  # Export to stdout
  figvars export variables.json

  # Several snapshots, px units for UI Sizes, wrapped in :root
  figvars export --add-px --selector :root -o tokens.css snapshots/**/*.json

  # Only two groups, in this order
  figvars export --groups "Theme colors" --groups "UI Sizes" variables.json

  # Use files and output from .config/figvars.yaml
  figvars export`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP(config.KeyOutput, "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringSlice(config.KeyGroups, nil, "Group priority list (repeatable, replaces the default list)")
	Cmd.Flags().Bool(config.KeyAddPx, false, "Append px to numeric values in the px group")
	Cmd.Flags().String(config.KeyPxGroup, css.DefaultPxGroup, "Group whose numbers get px units")
	Cmd.Flags().String(config.KeySelector, "", "Wrap declarations in a rule, e.g. :root or :host")
	Cmd.Flags().String(config.KeyHeader, "", "Comment to write at the top of the output")
	Cmd.Flags().Int(config.KeyConcurrency, 0, "Parallel variable fetches per collection")
	Cmd.Flags().Duration(config.KeyTimeout, 0, "Abort the export after this long (e.g. 30s)")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg, err := source.Config(cmd, filesystem, ".")
	if err != nil {
		return err
	}
	return Export(cmd.Context(), filesystem, cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Export runs an export with cfg, writing CSS to cfg.Output or stdout.
// Empty results print NoVariablesNotice to stderr and are not an error.
func Export(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := source.Open(filesystem, cfg, ".", args)
	if errors.Is(err, source.ErrNoInputs) {
		return err
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	out, err := exportlib.Run(ctx, p, exportlib.Options{
		Groups:      cfg.Groups,
		AddPx:       cfg.AddPx,
		PxGroup:     cfg.PxGroup,
		Selector:    css.Selector(cfg.Selector),
		Header:      cfg.Header,
		Concurrency: cfg.Concurrency,
		Timeout:     timeout,
	})
	if errors.Is(err, exportlib.ErrEmptyInput) {
		_, _ = color.New(color.FgYellow).Fprintln(stderr, NoVariablesNotice)
		return nil
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if cfg.Output == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(cfg.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("error writing to %s: %w", cfg.Output, err)
	}
	logger.Info("wrote %s", cfg.Output)
	return nil
}
