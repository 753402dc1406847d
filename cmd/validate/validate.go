/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for figvars.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/figvars/cmd/internal/source"
	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/config"
	"bennypowers.dev/figvars/fs"
	"bennypowers.dev/figvars/validator"
)

// ErrValidationFailed is returned when any variable has a problem.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check snapshot files for variables that would not export cleanly",
	Long: `Check local-variables snapshots for dangling or chained aliases, invalid
colors, null strings, and undeclared modes.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output problems")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg, err := source.Config(cmd, filesystem, ".")
	if err != nil {
		return err
	}
	return Validate(cmd.Context(), filesystem, cfg, args, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Validate reports every problem to stderr and fails if there were any.
func Validate(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, args []string, quiet bool, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := source.Open(filesystem, cfg, ".", args)
	if err != nil {
		return err
	}

	entries, err := collector.Collect(ctx, p, collector.Options{Concurrency: cfg.Concurrency})
	if err != nil && !errors.Is(err, collector.ErrEmptyInput) {
		return err
	}

	problems, err := validator.Validate(ctx, p, entries)
	if err != nil {
		return err
	}

	warn := color.New(color.FgYellow)
	for i := range problems {
		_, _ = warn.Fprintln(stderr, problems[i].Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrValidationFailed, len(problems))
	}

	if !quiet {
		count := 0
		for _, e := range entries {
			count += len(e.Variables)
		}
		fmt.Fprintf(stdout, "%d variables in %d collections, all valid.\n", count, len(entries))
	}
	return nil
}
