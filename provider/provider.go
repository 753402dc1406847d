/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package provider defines the boundary to the host application that owns
// variable collections, plus an in-memory implementation.
package provider

import (
	"context"
	"errors"

	"bennypowers.dev/figvars/variable"
)

// ErrNotFound indicates that no variable exists for the requested id.
var ErrNotFound = errors.New("variable not found")

// Provider supplies variable collections and variables.
// Implementations must be safe for concurrent GetVariableByID calls.
type Provider interface {
	// ListVariableCollections returns every collection in host order.
	ListVariableCollections(ctx context.Context) ([]*variable.Collection, error)

	// GetVariableByID returns the variable with the given id,
	// or an error wrapping ErrNotFound.
	GetVariableByID(ctx context.Context, id string) (*variable.Variable, error)
}
