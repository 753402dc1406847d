/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for figvars.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"bennypowers.dev/figvars/cmd/export"
	"bennypowers.dev/figvars/cmd/list"
	"bennypowers.dev/figvars/cmd/validate"
	"bennypowers.dev/figvars/cmd/version"
	"bennypowers.dev/figvars/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "figvars",
	Short: "Export design-tool variables as CSS custom properties",
	Long: `figvars reads local-variables snapshots from a design tool and writes the
variables as CSS custom properties, grouped by a priority list of groups.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logger.LevelDebug)
		}
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/figvars.{yaml,yml,json})")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
