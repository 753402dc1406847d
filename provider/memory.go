/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package provider

import (
	"context"
	"fmt"
	"sync"

	"bennypowers.dev/figvars/variable"
)

// Memory is an in-memory Provider. Collections are reported in insertion order.
type Memory struct {
	mu          sync.RWMutex
	collections []*variable.Collection
	variables   map[string]*variable.Variable
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		variables: make(map[string]*variable.Variable),
	}
}

// AddCollection appends a collection.
func (m *Memory) AddCollection(c *variable.Collection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections = append(m.collections, c)
}

// AddVariable stores a variable, replacing any previous one with the same id.
func (m *Memory) AddVariable(v *variable.Variable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variables[v.ID] = v
}

// Add appends a collection whose variable ids are taken from vars,
// and stores the variables.
func (m *Memory) Add(c *variable.Collection, vars ...*variable.Variable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range vars {
		if v.CollectionID == "" {
			v.CollectionID = c.ID
		}
		c.VariableIDs = append(c.VariableIDs, v.ID)
		m.variables[v.ID] = v
	}
	m.collections = append(m.collections, c)
}

// ListVariableCollections implements Provider.
func (m *Memory) ListVariableCollections(ctx context.Context) ([]*variable.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*variable.Collection, len(m.collections))
	copy(out, m.collections)
	return out, nil
}

// GetVariableByID implements Provider.
func (m *Memory) GetVariableByID(ctx context.Context, id string) (*variable.Variable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.variables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return v, nil
}
