/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/variable"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := provider.NewMemory()

	primitives := &variable.Collection{ID: "c1", Name: "Primitives"}
	m.Add(primitives,
		&variable.Variable{ID: "v1", Name: "Content/Body", ResolvedType: variable.TypeString},
		&variable.Variable{ID: "v2", Name: "Content/Title", ResolvedType: variable.TypeString},
	)
	m.AddCollection(&variable.Collection{ID: "c2", Name: "Theme"})

	t.Run("collections keep insertion order", func(t *testing.T) {
		got, err := m.ListVariableCollections(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, "c2", got[1].ID)
		assert.Equal(t, []string{"v1", "v2"}, got[0].VariableIDs)
	})

	t.Run("variables inherit the collection id", func(t *testing.T) {
		v, err := m.GetVariableByID(ctx, "v2")
		require.NoError(t, err)
		assert.Equal(t, "c1", v.CollectionID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := m.GetVariableByID(ctx, "nope")
		assert.ErrorIs(t, err, provider.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := m.ListVariableCollections(cctx)
		assert.ErrorIs(t, err, context.Canceled)
		_, err = m.GetVariableByID(cctx, "v1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
