/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export runs a complete variables-to-CSS export against a provider.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/convert/formatter/css"
	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/resolver"
)

var (
	// ErrEmptyInput indicates there was nothing to export: the provider had
	// no collections, or no variable fell in a listed group.
	ErrEmptyInput = errors.New("no variables to export")

	// ErrProviderFailure wraps any error the provider returned during export.
	ErrProviderFailure = errors.New("provider failure")
)

// Options configures an export.
type Options struct {
	// Groups is the group priority list. Nil means css.DefaultGroups.
	Groups []string

	// AddPx appends "px" to numeric values in PxGroup.
	AddPx bool

	// PxGroup defaults to css.DefaultPxGroup.
	PxGroup string

	// Selector wraps declarations in a rule block when non-empty.
	Selector css.Selector

	// Header is an optional leading comment.
	Header string

	// Concurrency bounds parallel variable fetches. Zero means the collector default.
	Concurrency int

	// Timeout bounds the whole export. Zero means no timeout.
	Timeout time.Duration
}

// Run collects every variable from p and renders the CSS text.
// Output is discarded on any error.
func Run(ctx context.Context, p provider.Provider, opts Options) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	entries, err := collector.Collect(ctx, p, collector.Options{Concurrency: opts.Concurrency})
	if errors.Is(err, collector.ErrEmptyInput) {
		return "", ErrEmptyInput
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	emitter := css.New(resolver.New(p), css.Options{
		Groups:   opts.Groups,
		AddPx:    opts.AddPx,
		PxGroup:  opts.PxGroup,
		Selector: opts.Selector,
		Header:   opts.Header,
	})
	out, err := emitter.Format(ctx, entries)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	if len(out) == 0 {
		return "", ErrEmptyInput
	}

	if n := len(emitter.Warnings()); n > 0 {
		logger.Info("skipped %d declarations with invalid values", n)
	}
	return string(out), nil
}
