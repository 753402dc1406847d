/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package collector gathers variable collections and their variables from a
// provider, preserving provider order.
package collector

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/variable"
)

// DefaultConcurrency bounds parallel variable fetches within a collection.
const DefaultConcurrency = 8

// ErrEmptyInput indicates that the provider reported no collections.
var ErrEmptyInput = errors.New("no variable collections")

// Entry is a collection with its variables in collection order.
type Entry struct {
	Collection *variable.Collection
	Variables  []*variable.Variable
}

// Options configures collection.
type Options struct {
	// Concurrency bounds parallel fetches within a collection.
	// Zero means DefaultConcurrency.
	Concurrency int
}

// Collect lists every collection and fetches its variables. Fetches within a
// collection run concurrently; results keep the collection's id order.
// Ids the provider reports as not found are skipped with a warning.
// Any other provider error aborts collection.
func Collect(ctx context.Context, p provider.Provider, opts Options) ([]Entry, error) {
	collections, err := p.ListVariableCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	if len(collections) == 0 {
		return nil, ErrEmptyInput
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	entries := make([]Entry, 0, len(collections))
	for _, c := range collections {
		vars, err := fetchVariables(ctx, p, c, limit)
		if err != nil {
			return nil, err
		}
		logger.Debug("collected %d variables from %q", len(vars), c.Name)
		entries = append(entries, Entry{Collection: c, Variables: vars})
	}
	return entries, nil
}

func fetchVariables(ctx context.Context, p provider.Provider, c *variable.Collection, limit int) ([]*variable.Variable, error) {
	slots := make([]*variable.Variable, len(c.VariableIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range c.VariableIDs {
		i, id := i, id
		g.Go(func() error {
			v, err := p.GetVariableByID(gctx, id)
			if errors.Is(err, provider.ErrNotFound) {
				logger.Warn("collection %q lists unknown variable %s", c.Name, id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching variable %s of %q: %w", id, c.Name, err)
			}
			slots[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vars := make([]*variable.Variable, 0, len(slots))
	for _, v := range slots {
		if v != nil {
			vars = append(vars, v)
		}
	}
	return vars, nil
}
