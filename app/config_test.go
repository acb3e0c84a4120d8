// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
)

const sampleYAML = `
app:
  name: hello
  version: 7
runtime:
  backend: sim
  form_factor: hmd
  extensions: [XR_KHR_opengl_es_enable, XR_KHR_opengl_enable]
graphics:
  api: OpenGL ES
  version_major: 3
  version_minor: 1
render:
  target: color
  parallel_views: true
max_restarts: 5
log_level: debug
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "hello", cfg.App.Name)
	assert.Equal(t, uint32(7), cfg.App.Version)
	assert.Equal(t, "sim", cfg.Runtime.Backend)
	assert.Equal(t, []string{"XR_KHR_opengl_es_enable", "XR_KHR_opengl_enable"}, cfg.Runtime.Extensions)
	assert.Equal(t, xr.MakeVersion(3, 1, 0), cfg.GraphicsVersion())
	assert.True(t, cfg.Render.ParallelViews)
	assert.Equal(t, 5, cfg.MaxRestarts)

	kind, err := cfg.TargetKind()
	require.NoError(t, err)
	assert.Equal(t, graphics.ColorOnly, kind)

	// Unset fields keep their defaults.
	depth, err := cfg.DepthFormat()
	require.NoError(t, err)
	assert.Equal(t, graphics.DefaultDepthFormat, depth)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/no/such/xr.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("XRFRAME_TEST_BACKEND", "openxr")
	cfg, err := ParseConfig([]byte("runtime:\n  backend: ${XRFRAME_TEST_BACKEND}\n"))
	require.NoError(t, err)
	assert.Equal(t, "openxr", cfg.Runtime.Backend)
}

func TestParseConfig_DepthFormats(t *testing.T) {
	tests := map[string]gputypes.TextureFormat{
		"depth16unorm":          gputypes.TextureFormatDepth16Unorm,
		"depth24plus":           gputypes.TextureFormatDepth24Plus,
		"depth24plus-stencil8":  gputypes.TextureFormatDepth24PlusStencil8,
		"depth32float":          gputypes.TextureFormatDepth32Float,
		"depth32float-stencil8": gputypes.TextureFormatDepth32FloatStencil8,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte("render:\n  depth_format: " + name + "\n"))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			got, err := cfg.DepthFormat()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("app: [unterminated"))
	assert.Error(t, err)
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	ff, err := cfg.FormFactor()
	require.NoError(t, err)
	assert.Equal(t, xr.FormFactorHeadMountedDisplay, ff)
	kind, err := cfg.TargetKind()
	require.NoError(t, err)
	assert.Equal(t, graphics.ColorAndDepth, kind)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no app name", func(c *Config) { c.App.Name = "" }},
		{"bad form factor", func(c *Config) { c.Runtime.FormFactor = "watch" }},
		{"no graphics version", func(c *Config) { c.Graphics.VersionMajor = 0 }},
		{"bad target", func(c *Config) { c.Render.Target = "depth" }},
		{"bad depth format", func(c *Config) { c.Render.DepthFormat = "r8unorm" }},
		{"negative restarts", func(c *Config) { c.MaxRestarts = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"empty extension", func(c *Config) { c.Runtime.Extensions = []string{""} }},
		{"duplicate extension", func(c *Config) { c.Runtime.Extensions = []string{"A", "A"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
