/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figvars/config"
	"bennypowers.dev/figvars/internal/mapfs"
)

func TestValidate_AllValid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("ok.yaml", `
meta:
  variableCollections:
    c: { name: Brand, modes: [{ modeId: m, name: M }], variableIds: [a, b] }
  variables:
    a: { name: Theme colors/Primary, resolvedType: COLOR, valuesByMode: { m: "#ff0000" } }
    b: { name: Theme colors/Link, resolvedType: COLOR, valuesByMode: { m: { type: VARIABLE_ALIAS, id: a } } }
`, 0o644)

	var stdout, stderr bytes.Buffer
	err := Validate(context.Background(), mfs, config.Default(), []string{"ok.yaml"}, false, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "2 variables in 1 collections, all valid.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestValidate_Problems(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("bad.yaml", `
meta:
  variableCollections:
    c: { name: Brand, modes: [{ modeId: m, name: M }], variableIds: [a] }
  variables:
    a: { name: Theme colors/Ghost, resolvedType: COLOR, valuesByMode: { m: { type: VARIABLE_ALIAS, id: gone } } }
`, 0o644)

	var stdout, stderr bytes.Buffer
	err := Validate(context.Background(), mfs, config.Default(), []string{"bad.yaml"}, true, &stdout, &stderr)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, stderr.String(), "Brand: Theme colors/Ghost (mode m): alias target gone not found")
	assert.Empty(t, stdout.String())
}
