/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
	flags.StringSlice(KeyGroups, nil, "")
	flags.Bool(KeyAddPx, false, "")
	flags.String(KeyPxGroup, "", "")
	flags.String(KeySelector, "", "")
	flags.StringP(KeyOutput, "o", "", "")
	flags.String(KeyTimeout, "", "")
	return flags
}

func TestResolve_FileValuesSurviveUnchangedFlags(t *testing.T) {
	cfg := &Config{AddPx: true, Selector: ":root", Output: "out.css", Groups: []string{"Content"}}
	flags := exportFlags()
	require.NoError(t, flags.Parse(nil))

	got, err := cfg.Resolve(flags)
	require.NoError(t, err)
	assert.True(t, got.AddPx)
	assert.Equal(t, ":root", got.Selector)
	assert.Equal(t, "out.css", got.Output)
	assert.Equal(t, []string{"Content"}, got.Groups)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := &Config{Selector: ":root", Groups: []string{"Content"}}
	flags := exportFlags()
	require.NoError(t, flags.Parse([]string{
		"--selector", ":host",
		"--groups", "Theme colors",
		"--groups", "UI Sizes",
		"-o", "tokens.css",
	}))

	got, err := cfg.Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, ":host", got.Selector)
	assert.Equal(t, []string{"Theme colors", "UI Sizes"}, got.Groups)
	assert.Equal(t, "tokens.css", got.Output)
}

func TestResolve_Environment(t *testing.T) {
	t.Setenv("FIGVARS_ADD_PX", "true")
	t.Setenv("FIGVARS_GROUPS", "Theme colors, Font sizes")
	t.Setenv("FIGVARS_PX_GROUP", "Font sizes")

	flags := exportFlags()
	require.NoError(t, flags.Parse(nil))

	got, err := Default().Resolve(flags)
	require.NoError(t, err)
	assert.True(t, got.AddPx)
	assert.Equal(t, []string{"Theme colors", "Font sizes"}, got.Groups)
	assert.Equal(t, "Font sizes", got.PxGroup)
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("FIGVARS_SELECTOR", ":root")

	flags := exportFlags()
	require.NoError(t, flags.Parse([]string{"--selector", ":host"}))

	got, err := Default().Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, ":host", got.Selector)
}

func TestResolve_InvalidTimeout(t *testing.T) {
	flags := exportFlags()
	require.NoError(t, flags.Parse([]string{"--timeout", "eventually"}))

	_, err := Default().Resolve(flags)
	assert.Error(t, err)
}

func TestResolve_NilFlags(t *testing.T) {
	got, err := (&Config{Output: "x.css"}).Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "x.css", got.Output)
	assert.Equal(t, Default().Groups, got.Groups)
}
