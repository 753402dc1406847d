/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/color"
	"bennypowers.dev/figvars/convert/formatter"
	"bennypowers.dev/figvars/resolver"
	"bennypowers.dev/figvars/variable"
)

// Row holds computed display values for one variable in one mode.
type Row struct {
	Name      string `json:"name"`                // CSS custom property name
	Type      string `json:"type"`                // Resolved type or "-"
	Group     string `json:"group"`               // Group name from the variable name
	Mode      string `json:"mode"`                // Mode name, or id when the collection has no name for it
	Value     string `json:"value"`               // Display value, var(--x) for aliases
	Reference string `json:"reference,omitempty"` // Full name of the alias target
	Swatch    string `json:"-"`                   // CSS color to preview, if any
}

// Resolver dereferences alias values.
type Resolver interface {
	Resolve(ctx context.Context, v variable.Value) (resolver.Resolution, error)
}

// ComputeRows flattens collected variables into rows, one per mode value.
// A variable with no values gets a single row with value "-".
func ComputeRows(ctx context.Context, entries []collector.Entry, r Resolver) ([]Row, error) {
	var rows []Row
	for _, entry := range entries {
		for _, v := range entry.Variables {
			info := v.Info()
			base := Row{
				Name:  v.CSSVariableName(),
				Type:  string(v.ResolvedType),
				Group: info.Group,
			}
			if base.Type == "" {
				base.Type = "-"
			}

			if len(v.Values) == 0 {
				base.Value = "-"
				rows = append(rows, base)
				continue
			}

			for _, mv := range v.Values {
				row := base
				row.Mode = modeName(entry.Collection, mv.ModeID)

				res, err := r.Resolve(ctx, mv.Value)
				if err != nil {
					return nil, err
				}
				if res.IsAlias() {
					row.Value = "var(" + NameToCSSVar(variable.ParseName(res.AliasName).Name) + ")"
					row.Reference = res.AliasName
					row.Swatch, _ = color.Format(res.Value)
				} else {
					row.Value = displayValue(v.ResolvedType, res.Value)
					if v.ResolvedType == variable.TypeColor {
						row.Swatch, _ = color.Format(res.Value)
					}
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

func displayValue(typ variable.Type, value variable.Value) string {
	if typ == variable.TypeColor {
		if s, err := color.Format(value); err == nil {
			return s
		}
	}
	return formatter.ValueString(value)
}

func modeName(c *variable.Collection, id string) string {
	if c != nil {
		if idx := c.ModeIndex(id); idx >= 0 && c.Modes[idx].Name != "" {
			return c.Modes[idx].Name
		}
	}
	return id
}

// NameToCSSVar converts a short variable name to a CSS custom property name.
func NameToCSSVar(name string) string {
	return "--" + name
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, mode int) {
	name, typ, mode = 4, 4, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		mode = max(mode, len(r.Mode))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns. Swatches are drawn only when asked,
// since they are escape sequences.
func Table(w io.Writer, rows []Row, swatches bool) error {
	nameW, typeW, modeW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.Swatch != "" {
			swatch = ColorSwatch(r.Swatch)
		}
		ref := ""
		if r.Reference != "" {
			ref = " → " + r.Reference
		}
		line := fmt.Sprintf("%-*s  %-*s  %-*s  %s%s%s", nameW, r.Name, typeW, r.Type, modeW, r.Mode, swatch, r.Value, ref)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	IncludeTOC bool
}

// Markdown renders rows as one table per group, in order of first occurrence.
func Markdown(w io.Writer, rows []Row, opts MarkdownOptions) error {
	if len(rows) == 0 {
		return nil
	}

	var order []string
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, seen := byGroup[r.Group]; !seen {
			order = append(order, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	var sb strings.Builder
	if opts.IncludeTOC {
		sb.WriteString("## Table Of Contents\n\n")
		for _, group := range order {
			fmt.Fprintf(&sb, "- [%s](#%s)\n", groupTitle(group), slugify(groupTitle(group)))
		}
		sb.WriteString("\n")
	}

	for i, group := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := groupTitle(group)
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", title, slugify(title))
		writeMarkdownTable(&sb, byGroup[group])
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownTable(sb *strings.Builder, rows []Row) {
	nameW, valW, modeW, refW := 4, 5, 4, 9 // minimums for headers
	hasRefs := false
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		valW = max(valW, len(r.Value))
		modeW = max(modeW, len(r.Mode))
		if r.Reference != "" {
			hasRefs = true
			refW = max(refW, len(r.Reference))
		}
	}

	if hasRefs {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s | %-*s |\n", nameW, "Name", modeW, "Mode", valW, "Value", refW, "Reference")
		fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|-%s-|\n",
			strings.Repeat("-", nameW), strings.Repeat("-", modeW),
			strings.Repeat("-", valW), strings.Repeat("-", refW))
		for _, r := range rows {
			fmt.Fprintf(sb, "| %-*s | %-*s | %-*s | %-*s |\n", nameW, r.Name, modeW, r.Mode, valW, r.Value, refW, r.Reference)
		}
		return
	}

	fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", modeW, "Mode", valW, "Value")
	fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", nameW), strings.Repeat("-", modeW), strings.Repeat("-", valW))
	for _, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, modeW, r.Mode, valW, r.Value)
	}
}

func groupTitle(group string) string {
	if group == "" {
		return "Ungrouped"
	}
	return toTitleCase(group)
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Theme Colors" -> "theme-colors"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' || r == '/' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(s)
}
