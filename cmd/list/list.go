/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for figvars.
package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"bennypowers.dev/figvars/cmd/internal/source"
	"bennypowers.dev/figvars/cmd/render"
	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/config"
	"bennypowers.dev/figvars/fs"
	"bennypowers.dev/figvars/resolver"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List variables from snapshot files",
	Long: `List every variable and mode value from local-variables snapshots, with
the CSS name each would export as. Aliases show their var() reference and
the target's full name.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("group", "", "Filter by group name")
	Cmd.Flags().String("type", "", "Filter by resolved type (COLOR, FLOAT, STRING, BOOLEAN)")
	Cmd.Flags().String("match", "", "Regular expression matched against names, values, and alias targets")
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown")
	Cmd.Flags().Bool("toc", false, "Include a table of contents (markdown only)")
}

// Options configures a listing.
type Options struct {
	Group  string
	Type   string
	Match  string
	Format string
	TOC    bool

	// Swatches draws color previews in table output.
	Swatches bool
}

func run(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")
	typ, _ := cmd.Flags().GetString("type")
	match, _ := cmd.Flags().GetString("match")
	format, _ := cmd.Flags().GetString("format")
	toc, _ := cmd.Flags().GetBool("toc")

	filesystem := fs.NewOSFileSystem()
	cfg, err := source.Config(cmd, filesystem, ".")
	if err != nil {
		return err
	}
	return List(cmd.Context(), filesystem, cfg, args, Options{
		Group:    group,
		Type:     typ,
		Match:    match,
		Format:   format,
		TOC:      toc,
		Swatches: isTerminal(cmd.OutOrStdout()),
	}, cmd.OutOrStdout())
}

// isTerminal reports whether w is a color-capable terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !color.NoColor && term.IsTerminal(int(f.Fd()))
}

// List writes the variables found in args, or the configured files, to w.
func List(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, args []string, opts Options, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var pattern *regexp.Regexp
	if opts.Match != "" {
		var err error
		if pattern, err = regexp.Compile(opts.Match); err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	p, err := source.Open(filesystem, cfg, ".", args)
	if err != nil {
		return err
	}

	entries, err := collector.Collect(ctx, p, collector.Options{Concurrency: cfg.Concurrency})
	if err != nil && !errors.Is(err, collector.ErrEmptyInput) {
		return err
	}

	rows, err := render.ComputeRows(ctx, entries, resolver.New(p))
	if err != nil {
		return err
	}
	rows = filterRows(rows, opts.Group, opts.Type)
	if pattern != nil {
		rows = matchRows(rows, pattern)
	}

	switch opts.Format {
	case "json":
		return render.JSON(w, rows)
	case "markdown", "md":
		return render.Markdown(w, rows, render.MarkdownOptions{IncludeTOC: opts.TOC})
	case "table", "":
		return render.Table(w, rows, opts.Swatches)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// filterRows keeps rows matching group and type. Empty filters match all.
// Types match case-insensitively; groups match after NFC normalization.
func filterRows(rows []render.Row, group, typ string) []render.Row {
	if group == "" && typ == "" {
		return rows
	}
	group = norm.NFC.String(group)
	filtered := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if group != "" && norm.NFC.String(r.Group) != group {
			continue
		}
		if typ != "" && !strings.EqualFold(r.Type, typ) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchRows keeps rows whose name, value, or alias target matches pattern.
func matchRows(rows []render.Row, pattern *regexp.Regexp) []render.Row {
	matched := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if pattern.MatchString(r.Name) || pattern.MatchString(r.Value) || pattern.MatchString(r.Reference) {
			matched = append(matched, r)
		}
	}
	return matched
}
