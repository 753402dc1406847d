/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figvars/convert/formatter/css"
	"bennypowers.dev/figvars/export"
	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/provider/snapshot"
	"bennypowers.dev/figvars/testutil"
	"bennypowers.dev/figvars/variable"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func single(id, name string, typ variable.Type, value variable.Value) *variable.Variable {
	return &variable.Variable{
		ID:           id,
		Name:         name,
		ResolvedType: typ,
		Values:       []variable.ModeValue{{ModeID: "m", Value: value}},
	}
}

func TestRun_Snapshot(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/brand", ".")
	p, err := snapshot.Load(mfs, "variables.yaml")
	require.NoError(t, err)

	out, err := export.Run(context.Background(), p, export.Options{AddPx: true})
	require.NoError(t, err)
	testutil.AssertGolden(t, filepath.Join("fixtures", "brand", "expected.css"), []byte(out))
}

func TestRun_SharedGroupAcrossCollections(t *testing.T) {
	m := provider.NewMemory()
	m.Add(&variable.Collection{ID: "a"}, single("1", "Content/Title", variable.TypeString, "Hello"))
	m.Add(&variable.Collection{ID: "b"}, single("2", "Content/Subtitle", variable.TypeString, "World"))

	out, err := export.Run(context.Background(), m, export.Options{})
	require.NoError(t, err)
	assert.Equal(t, "\n/* Content */\n--Title: Hello;\n--Subtitle: World;\n", out)
}

func TestRun_NoCollections(t *testing.T) {
	_, err := export.Run(context.Background(), provider.NewMemory(), export.Options{})
	assert.ErrorIs(t, err, export.ErrEmptyInput)
	assert.NotErrorIs(t, err, export.ErrProviderFailure)
}

func TestRun_NothingInListedGroups(t *testing.T) {
	m := provider.NewMemory()
	m.Add(&variable.Collection{ID: "a"}, single("1", "Experimental/Glow", variable.TypeColor, variable.Color{R: 1}))

	out, err := export.Run(context.Background(), m, export.Options{})
	assert.ErrorIs(t, err, export.ErrEmptyInput)
	assert.Empty(t, out)
}

func TestRun_Selector(t *testing.T) {
	m := provider.NewMemory()
	m.Add(&variable.Collection{ID: "a"}, single("1", "UI Sizes/Gap", variable.TypeFloat, 4.0))

	out, err := export.Run(context.Background(), m, export.Options{
		Selector: css.SelectorHost,
		Header:   "Do not edit",
	})
	require.NoError(t, err)
	assert.Equal(t, "/* Do not edit */\n\n:host {\n  /* UI Sizes */\n  --Gap: 4;\n}\n", out)
}

func TestRun_Groups(t *testing.T) {
	m := provider.NewMemory()
	m.Add(&variable.Collection{ID: "a"},
		single("1", "Brand/Logo", variable.TypeString, "mark"),
		single("2", "Content/Body", variable.TypeString, "text"),
	)

	out, err := export.Run(context.Background(), m, export.Options{Groups: []string{"Brand"}})
	require.NoError(t, err)
	assert.Equal(t, "\n/* Brand */\n--Logo: mark;\n", out)
}

type listFailure struct{ *provider.Memory }

var errBackend = errors.New("backend unavailable")

func (listFailure) ListVariableCollections(context.Context) ([]*variable.Collection, error) {
	return nil, errBackend
}

func TestRun_ProviderFailure(t *testing.T) {
	_, err := export.Run(context.Background(), listFailure{provider.NewMemory()}, export.Options{})
	assert.ErrorIs(t, err, export.ErrProviderFailure)
	assert.ErrorIs(t, err, errBackend)
}

// aliasFailure fails only on alias lookups made while emitting.
type aliasFailure struct {
	*provider.Memory
	target string
}

func (p aliasFailure) GetVariableByID(ctx context.Context, id string) (*variable.Variable, error) {
	if id == p.target {
		return nil, errBackend
	}
	return p.Memory.GetVariableByID(ctx, id)
}

func TestRun_ResolverFailure(t *testing.T) {
	m := provider.NewMemory()
	m.Add(&variable.Collection{ID: "a"},
		single("1", "Content/Ref", variable.TypeString, variable.Alias{ID: "remote"}),
	)

	out, err := export.Run(context.Background(), aliasFailure{Memory: m, target: "remote"}, export.Options{})
	assert.ErrorIs(t, err, export.ErrProviderFailure)
	assert.ErrorIs(t, err, errBackend)
	assert.Empty(t, out)
}

// blocking never answers until its context is done.
type blocking struct{ *provider.Memory }

func (blocking) ListVariableCollections(ctx context.Context) ([]*variable.Collection, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestRun_Timeout(t *testing.T) {
	_, err := export.Run(context.Background(), blocking{provider.NewMemory()}, export.Options{
		Timeout: 10 * time.Millisecond,
	})
	assert.ErrorIs(t, err, export.ErrProviderFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
