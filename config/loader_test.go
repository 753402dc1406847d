/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figvars/convert/formatter/css"
	"bennypowers.dev/figvars/internal/logger"
	"bennypowers.dev/figvars/internal/mapfs"
	"bennypowers.dev/figvars/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"Theme colors", "UI Sizes"}, cfg.Groups)
	assert.True(t, cfg.AddPx)
	assert.Equal(t, "UI Sizes", cfg.PxGroup)
	assert.Equal(t, ":root", cfg.Selector)
	assert.Equal(t, "Generated by figvars", cfg.Header)
	assert.Equal(t, []string{"./variables/*.json"}, cfg.Files)
	assert.Equal(t, "dist/tokens.css", cfg.Output)
	assert.Equal(t, 4, cfg.Concurrency)

	timeout, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, "30s", timeout.String())
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"Content"}, cfg.Groups)
	assert.Equal(t, ":host", cfg.Selector)
	assert.Equal(t, []string{"variables.yaml"}, cfg.Files)
}

func TestLoad_TOML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/toml", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"Theme colors", "Font sizes"}, cfg.Groups)
	assert.True(t, cfg.AddPx)
	assert.Equal(t, "Font sizes", cfg.PxGroup)
	assert.Equal(t, ":root", cfg.Selector)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, "10s", cfg.Timeout)
}

func TestLoad_InvalidTOML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/figvars.toml", "groups = [", 0o644)

	_, err := Load(mfs, "/project")
	assert.ErrorContains(t, err, "figvars.toml")
}

func TestLoad_FillsDefaults(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/partial", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.AddPx)
	assert.Equal(t, css.DefaultGroups(), cfg.Groups)
	assert.Equal(t, css.DefaultPxGroup, cfg.PxGroup)
	assert.Equal(t, Default().Concurrency, cfg.Concurrency)
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/figvars.yaml", "groups: [unterminated", 0o644)

	_, err := Load(mfs, "/project")
	assert.Error(t, err)
}

func TestLoad_Priority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/figvars.json", `{"output": "from-json.css"}`, 0o644)
	mfs.AddFile("/project/.config/figvars.yaml", "output: from-yaml.css\n", 0o644)

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, "from-yaml.css", cfg.Output)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")
		cfg := LoadOrDefault(mfs, "/project")
		assert.Equal(t, []string{"Content"}, cfg.Groups)
	})

	t.Run("not found", func(t *testing.T) {
		cfg := LoadOrDefault(mapfs.New(), "/project")
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/project/.config/figvars.json", "{", 0o644)
		cfg := LoadOrDefault(mfs, "/project")
		assert.Equal(t, Default(), cfg)
	})
}

func TestTimeoutDuration_Invalid(t *testing.T) {
	cfg := &Config{Timeout: "soon"}
	_, err := cfg.TimeoutDuration()
	assert.Error(t, err)
}

func TestExpandPatterns(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/variables/brand.json", "{}", 0o644)
	mfs.AddFile("/project/variables/product.json", "{}", 0o644)
	mfs.AddFile("/project/variables/notes.txt", "", 0o644)
	mfs.AddFile("/project/variables/nested/extra.yaml", "", 0o644)

	tests := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{
			name:     "plain path passes through",
			patterns: []string{"missing.json"},
			expected: []string{"/project/missing.json"},
		},
		{
			name:     "single star",
			patterns: []string{"variables/*.json"},
			expected: []string{"/project/variables/brand.json", "/project/variables/product.json"},
		},
		{
			name:     "double star with alternatives",
			patterns: []string{"variables/**/*.{json,yaml}"},
			expected: []string{
				"/project/variables/brand.json",
				"/project/variables/nested/extra.yaml",
				"/project/variables/product.json",
			},
		},
		{
			name:     "patterns keep argument order",
			patterns: []string{"variables/product.json", "variables/b*.json"},
			expected: []string{"/project/variables/product.json", "/project/variables/brand.json"},
		},
		{
			name:     "absolute pattern ignores root",
			patterns: []string{"/project/variables/p*.json"},
			expected: []string{"/project/variables/product.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPatterns(mfs, "/project", tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfig_ExpandFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/a.yaml", "", 0o644)
	cfg := &Config{Files: []string{"*.yaml"}}

	got, err := cfg.ExpandFiles(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/a.yaml"}, got)
}

func TestLoadFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/elsewhere/figvars.yml", "selector: \":host\"\n", 0o644)
	mfs.AddFile("/elsewhere/figvars.ini", "selector = :host\n", 0o644)

	cfg, err := LoadFile(mfs, "/elsewhere/figvars.yml")
	require.NoError(t, err)
	assert.Equal(t, ":host", cfg.Selector)

	_, err = LoadFile(mfs, "/elsewhere/figvars.ini")
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = LoadFile(mfs, "/elsewhere/missing.yaml")
	assert.Error(t, err)
}
