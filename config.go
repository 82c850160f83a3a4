// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The default configuration trusts a recognized file extension and only reads
// the file if the extension is missing or unknown.
type Config struct {
	// homeDir overrides the home directory used to expand a leading "~"
	homeDir string

	// logger stream for identification
	logger logger

	// signatureOnly skips the extension lookup and always reads the file header
	signatureOnly bool

	// telemetryHook is a function to consume telemetry data after finished identification
	telemetryHook TelemetryHook
}

// HomeDir returns the configured home directory. An empty string means the
// home directory of the current user is used.
func (c *Config) HomeDir() string {
	return c.homeDir
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// SignatureOnly returns true if the file extension is ignored and the format
// is determined by signature only.
func (c *Config) SignatureOnly() bool {
	return c.signatureOnly
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

// resolveHomeDir returns the configured home directory or the one of the current user.
func (c *Config) resolveHomeDir() (string, error) {
	if c.homeDir != "" {
		return c.homeDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", errors.New("empty home directory")
	}
	return home, nil
}

const (
	defaultHomeDir       = ""    // use the home directory of the current user
	defaultSignatureOnly = false // trust a known file extension
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		homeDir:       defaultHomeDir,
		logger:        defaultLogger,
		signatureOnly: defaultSignatureOnly,
		telemetryHook: defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithHomeDir options pattern function to set the home directory that replaces
// a leading "~". If dir is empty, the home directory of the current user is used.
func WithHomeDir(dir string) ConfigOption {
	return func(c *Config) {
		c.homeDir = dir
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSignatureOnly options pattern function to ignore the file extension and
// determine the format by signature only. The two heuristics are never
// combined: with this option a recognized extension is not consulted at all.
func WithSignatureOnly(enable bool) ConfigOption {
	return func(c *Config) {
		c.signatureOnly = enable
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after identification.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
