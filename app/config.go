// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
)

// Config is the top-level application configuration.
type Config struct {
	App         AppConfig      `yaml:"app"`
	Runtime     RuntimeConfig  `yaml:"runtime"`
	Graphics    GraphicsConfig `yaml:"graphics"`
	Render      RenderConfig   `yaml:"render"`
	MaxRestarts int            `yaml:"max_restarts"` // Reconnections allowed after session loss.
	LogLevel    string         `yaml:"log_level"`    // debug, info, warn or error.
}

// AppConfig identifies the application to the runtime.
type AppConfig struct {
	Name    string `yaml:"name"`
	Version uint32 `yaml:"version"`
}

// RuntimeConfig selects the XR runtime backend.
type RuntimeConfig struct {
	Backend    string   `yaml:"backend"`     // Registry name; empty picks the best available.
	FormFactor string   `yaml:"form_factor"` // hmd or handheld.
	Extensions []string `yaml:"extensions"`
}

// GraphicsConfig describes the host graphics context.
type GraphicsConfig struct {
	API          string `yaml:"api"`
	VersionMajor uint32 `yaml:"version_major"`
	VersionMinor uint32 `yaml:"version_minor"`
}

// RenderConfig controls backbuffer creation and view rendering.
type RenderConfig struct {
	Target        string `yaml:"target"`       // color or color+depth.
	DepthFormat   string `yaml:"depth_format"` // Empty selects depth24plus-stencil8.
	ParallelViews bool   `yaml:"parallel_views"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		App: AppConfig{Name: "xrframe", Version: 1},
		Runtime: RuntimeConfig{
			FormFactor: "hmd",
			Extensions: []string{"XR_KHR_opengl_es_enable"},
		},
		Graphics: GraphicsConfig{
			API:          "OpenGL ES",
			VersionMajor: 3,
			VersionMinor: 2,
		},
		Render: RenderConfig{
			Target:      "color+depth",
			DepthFormat: "depth24plus-stencil8",
		},
		MaxRestarts: 3,
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("app: load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over DefaultConfig, expanding environment variables.
func ParseConfig(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))
	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("app: parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app: config: app name is required")
	}
	if _, err := c.FormFactor(); err != nil {
		return err
	}
	if c.Graphics.VersionMajor == 0 {
		return fmt.Errorf("app: config: graphics version_major is required")
	}
	if _, err := c.TargetKind(); err != nil {
		return fmt.Errorf("app: config: %w", err)
	}
	if _, err := c.DepthFormat(); err != nil {
		return fmt.Errorf("app: config: %w", err)
	}
	if c.MaxRestarts < 0 {
		return fmt.Errorf("app: config: max_restarts must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Runtime.Extensions))
	for _, ext := range c.Runtime.Extensions {
		if ext == "" {
			return fmt.Errorf("app: config: empty extension name")
		}
		if _, dup := seen[ext]; dup {
			return fmt.Errorf("app: config: duplicate extension %q", ext)
		}
		seen[ext] = struct{}{}
	}
	return nil
}

// FormFactor returns the configured form factor.
func (c Config) FormFactor() (xr.FormFactor, error) {
	switch strings.ToLower(c.Runtime.FormFactor) {
	case "", "hmd", "head_mounted_display":
		return xr.FormFactorHeadMountedDisplay, nil
	case "handheld", "handheld_display":
		return xr.FormFactorHandheldDisplay, nil
	default:
		return 0, fmt.Errorf("app: config: unknown form factor %q", c.Runtime.FormFactor)
	}
}

// GraphicsVersion returns the host graphics API version.
func (c Config) GraphicsVersion() xr.Version {
	return xr.MakeVersion(c.Graphics.VersionMajor, c.Graphics.VersionMinor, 0)
}

// TargetKind returns the configured backbuffer variant.
func (c Config) TargetKind() (graphics.TargetKind, error) {
	return graphics.ParseTargetKind(c.Render.Target)
}

// DepthFormat returns the configured depth attachment format.
func (c Config) DepthFormat() (gputypes.TextureFormat, error) {
	return graphics.ParseDepthFormat(c.Render.DepthFormat)
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("app: config: unknown log level %q", c.LogLevel)
	}
}
