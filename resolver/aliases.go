/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver dereferences alias values through a provider.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/variable"
)

// Resolution is the outcome of resolving a value.
// AliasName is empty when the value was passed through unchanged.
type Resolution struct {
	// AliasName is the full name of the referenced variable.
	AliasName string

	// Value is the referenced variable's first-mode value, or the input value.
	Value variable.Value
}

// IsAlias reports whether the resolution dereferenced an alias.
func (r Resolution) IsAlias() bool {
	return r.AliasName != ""
}

// Resolver resolves alias values one hop deep.
type Resolver struct {
	provider provider.Provider
}

// New creates a Resolver backed by p.
func New(p provider.Provider) *Resolver {
	return &Resolver{provider: p}
}

// Resolve dereferences v when it is an alias. The referenced variable's own
// value is returned as-is, even when it is itself an alias.
// Non-alias values, and aliases whose target is missing, pass through.
func (r *Resolver) Resolve(ctx context.Context, v variable.Value) (Resolution, error) {
	alias, ok := asAlias(v)
	if !ok {
		return Resolution{Value: v}, nil
	}

	target, err := r.provider.GetVariableByID(ctx, alias.ID)
	if errors.Is(err, provider.ErrNotFound) {
		logger.Debug("alias target %s not found", alias.ID)
		return Resolution{Value: v}, nil
	}
	if err != nil {
		return Resolution{}, fmt.Errorf("resolving alias %s: %w", alias.ID, err)
	}

	value, ok := target.FirstValue()
	if !ok {
		logger.Debug("alias target %s has no modes", target.Name)
		return Resolution{Value: v}, nil
	}

	return Resolution{AliasName: target.Name, Value: value}, nil
}

func asAlias(v variable.Value) (variable.Alias, bool) {
	switch a := v.(type) {
	case variable.Alias:
		return a, true
	case *variable.Alias:
		if a != nil {
			return *a, true
		}
	}
	return variable.Alias{}, false
}
