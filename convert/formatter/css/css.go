/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css emits design-tool variables as CSS custom properties,
// sectioned by group in a configured priority order.
package css

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/color"
	"bennypowers.dev/figvars/convert/formatter"
	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/resolver"
	"bennypowers.dev/figvars/variable"
)

// ErrInvalidString indicates a STRING variable without a value.
var ErrInvalidString = errors.New("invalid string value")

// DefaultPxGroup is the group whose numeric values take a px unit when AddPx is set.
const DefaultPxGroup = "UI Sizes"

// DefaultGroups returns the group priority list used when none is configured.
func DefaultGroups() []string {
	return []string{
		"Theme colors",
		"Content",
		"Font sizes",
		"Support colors",
		"UI Sizes",
		"UI Colors",
		"Buttons",
		"UI Borders",
	}
}

// Selector wraps the declarations in a rule block when set.
type Selector string

const (
	// SelectorNone emits top-level declarations.
	SelectorNone Selector = ""

	// SelectorRoot wraps declarations in :root { }.
	SelectorRoot Selector = ":root"

	// SelectorHost wraps declarations in :host { }.
	SelectorHost Selector = ":host"
)

// AliasResolver dereferences alias values.
type AliasResolver interface {
	Resolve(ctx context.Context, v variable.Value) (resolver.Resolution, error)
}

// Options configures CSS emission.
type Options struct {
	// Groups is the group priority list. Variables in other groups are skipped.
	// Nil means DefaultGroups.
	Groups []string

	// AddPx appends "px" to numeric values in PxGroup.
	AddPx bool

	// PxGroup names the group that AddPx applies to. Empty means DefaultPxGroup.
	PxGroup string

	// Selector optionally wraps the output in a rule block.
	Selector Selector

	// Header is an optional comment written before the declarations.
	Header string
}

// Warning records a declaration that was skipped.
type Warning struct {
	Variable string
	ModeID   string
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (mode %s): %v", w.Variable, w.ModeID, w.Err)
}

// Emitter renders collected variables as CSS custom properties.
type Emitter struct {
	opts     Options
	resolver AliasResolver
	pxGroup  string
	warnings []Warning
}

var _ formatter.Formatter = (*Emitter)(nil)

// New creates an Emitter that resolves aliases through r.
func New(r AliasResolver, opts Options) *Emitter {
	if opts.Groups == nil {
		opts.Groups = DefaultGroups()
	}
	if opts.PxGroup == "" {
		opts.PxGroup = DefaultPxGroup
	}
	return &Emitter{opts: opts, resolver: r, pxGroup: norm.NFC.String(opts.PxGroup)}
}

// Warnings returns the declarations skipped by the last Emit.
func (e *Emitter) Warnings() []Warning {
	return e.warnings
}

// Format implements formatter.Formatter, applying Header and Selector.
func (e *Emitter) Format(ctx context.Context, entries []collector.Entry) ([]byte, error) {
	body, err := e.Emit(ctx, entries)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(e.opts.Header, formatter.CStyleComments))
	if e.opts.Selector == SelectorNone {
		sb.WriteString(body)
	} else {
		sb.WriteString(string(e.opts.Selector) + " {")
		sb.WriteString(formatter.Indent(body, "  "))
		sb.WriteString("}\n")
	}
	return []byte(sb.String()), nil
}

// Emit walks groups in priority order, then collections, variables, and
// modes in provider order, writing one declaration per mode value.
// Each group's comment header is written once, before its first declaration.
// Alias resolution errors abort emission and no output is returned.
func (e *Emitter) Emit(ctx context.Context, entries []collector.Entry) (string, error) {
	e.warnings = nil

	var sb strings.Builder
	rendered := make(map[string]bool, len(e.opts.Groups))

	for _, groupName := range e.opts.Groups {
		want := norm.NFC.String(groupName)
		for _, entry := range entries {
			for _, v := range entry.Variables {
				info := v.Info()
				if norm.NFC.String(info.Group) != want {
					continue
				}
				for _, mv := range v.Values {
					if !rendered[want] {
						fmt.Fprintf(&sb, "\n/* %s */\n", info.Group)
						rendered[want] = true
					}
					if err := e.declare(ctx, &sb, v, info, mv); err != nil {
						return "", err
					}
				}
			}
		}
	}

	return sb.String(), nil
}

func (e *Emitter) declare(ctx context.Context, sb *strings.Builder, v *variable.Variable, info variable.Info, mv variable.ModeValue) error {
	res, err := e.resolver.Resolve(ctx, mv.Value)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	if res.IsAlias() {
		target := variable.ParseName(res.AliasName)
		writeDecl(sb, info.Name, "var(--"+target.Name+")")
		return nil
	}

	value := mv.Value
	switch {
	case e.opts.AddPx && norm.NFC.String(info.Group) == e.pxGroup && v.ResolvedType.IsNumeric():
		writeDecl(sb, info.Name, formatter.ValueString(value)+"px")
	case v.ResolvedType == variable.TypeColor:
		formatted, err := color.Format(value)
		if err != nil {
			e.skip(v, mv, err)
			return nil
		}
		writeDecl(sb, info.Name, formatted)
	case v.ResolvedType.IsNumeric():
		writeDecl(sb, info.Name, formatter.ValueString(value))
	case v.ResolvedType == variable.TypeString:
		if value == nil {
			e.skip(v, mv, ErrInvalidString)
			return nil
		}
		writeDecl(sb, info.Name, formatter.ValueString(value))
	default:
		writeDecl(sb, info.Name, formatter.ValueString(value))
	}
	return nil
}

func (e *Emitter) skip(v *variable.Variable, mv variable.ModeValue, err error) {
	w := Warning{Variable: v.Name, ModeID: mv.ModeID, Err: err}
	e.warnings = append(e.warnings, w)
	logger.Warn("skipping %s", w)
}

func writeDecl(sb *strings.Builder, name, value string) {
	sb.WriteString("--" + name + ": " + value + ";\n")
}
