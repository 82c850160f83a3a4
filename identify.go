// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"context"
	"time"
)

// Identify determines the archive format of the file at path.
//
// The path is resolved with [ResolvePath] first; resolution errors are returned
// as they are. If the file extension is known, its format is returned without
// reading the file. Otherwise the file header is matched against the known
// signatures and that result, either a format or an error wrapping
// [ErrUnknownSignature] or [ErrIO], is returned.
//
// The extension is trusted over the content: a zip archive renamed to
// "x.tar" is reported as [Tar]. Use [WithSignatureOnly] to ignore extensions.
//
// Identification is not cancellable; ctx is handed to the [TelemetryHook].
func Identify(ctx context.Context, path string, cfg *Config) (Format, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	td := &TelemetryData{Path: path}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureDuration(td, time.Now())

	format, err := identify(path, cfg, td)
	td.Format = format
	td.Error = err
	if err != nil {
		cfg.Logger().Debug("identification failed", "path", path, "error", err)
		return Unknown, err
	}

	cfg.Logger().Debug("identified", "path", td.ResolvedPath, "format", format, "method", td.Method)
	return format, nil
}

// identify walks through path resolution, extension and signature matching
// and records progress in td.
func identify(path string, cfg *Config, td *TelemetryData) (Format, error) {
	resolved, err := ResolvePath(path, cfg)
	if err != nil {
		return Unknown, err
	}
	td.ResolvedPath = resolved

	if !cfg.SignatureOnly() {
		format, err := MatchExtension(resolved)
		if err == nil {
			td.Method = MethodExtension
			return format, nil
		}
		cfg.Logger().Debug("falling back to signature", "path", resolved, "reason", err)
	}

	format, n, err := scanSignature(resolved)
	td.HeaderSize = n
	if err != nil {
		return Unknown, err
	}
	td.Method = MethodSignature
	return format, nil
}
