// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/hashicorp/go-archtype"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := archtype.NewConfig()

	if cfg.HomeDir() != "" {
		t.Errorf("HomeDir() = %q, want empty", cfg.HomeDir())
	}
	if cfg.SignatureOnly() {
		t.Errorf("SignatureOnly() = true, want false")
	}
	if cfg.Logger() == nil {
		t.Errorf("Logger() = nil, want discarding logger")
	}
	if cfg.TelemetryHook() == nil {
		t.Errorf("TelemetryHook() = nil, want noop hook")
	}

	// noop hook must not panic
	cfg.TelemetryHook()(context.Background(), &archtype.TelemetryData{})
}

func TestWithHomeDir(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "custom home directory", dir: "/home/alice", want: "/home/alice"},
		{name: "empty uses current user", dir: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := archtype.NewConfig(archtype.WithHomeDir(tt.dir))
			if got := cfg.HomeDir(); got != tt.want {
				t.Errorf("HomeDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithSignatureOnly(t *testing.T) {
	tests := []struct {
		name string
		cfg  *archtype.Config
		want bool
	}{
		{
			name: "signatureOnly is true",
			cfg:  archtype.NewConfig(archtype.WithSignatureOnly(true)),
			want: true,
		},
		{
			name: "signatureOnly is false",
			cfg:  archtype.NewConfig(archtype.WithSignatureOnly(false)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SignatureOnly(); got != tt.want {
				t.Errorf("SignatureOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	cfg := archtype.NewConfig(archtype.WithLogger(logger))

	if cfg.Logger() != logger {
		t.Errorf("Logger() did not return the configured logger")
	}
}

func TestWithTelemetryHook(t *testing.T) {
	called := false
	hook := func(ctx context.Context, td *archtype.TelemetryData) {
		called = true
	}
	cfg := archtype.NewConfig(archtype.WithTelemetryHook(hook))
	cfg.TelemetryHook()(context.Background(), &archtype.TelemetryData{})

	if !called {
		t.Errorf("TelemetryHook() did not return the configured hook")
	}

	// a nil hook falls back to noop
	cfg = archtype.NewConfig(archtype.WithTelemetryHook(nil))
	if cfg.TelemetryHook() == nil {
		t.Errorf("TelemetryHook() = nil for nil hook")
	}
}
