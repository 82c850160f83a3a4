// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ResolvePath expands a leading "~" or "~user" in path, canonicalizes the
// result to an absolute path without symlinks and checks that it points to a
// regular file.
//
// Errors wrap [ErrHomeDirectoryUnresolved], [ErrPathNotFound] or
// [ErrNotARegularFile].
func ResolvePath(path string, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	expanded, err := expandHome(path, cfg)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathNotFound, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathNotFound, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s (%s)", ErrNotARegularFile, canonical, info.Mode().Type())
	}

	return canonical, nil
}

// expandHome replaces a leading "~" with the home directory of the current
// user and a leading "~name" with the home directory of user name. Paths
// without a leading "~" are returned unchanged.
func expandHome(path string, cfg *Config) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest, _ := strings.Cut(path[1:], string(filepath.Separator))

	var home string
	if name == "" {
		h, err := cfg.resolveHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHomeDirectoryUnresolved, err)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHomeDirectoryUnresolved, err)
		}
		home = u.HomeDir
	}

	if home == "" {
		return "", ErrHomeDirectoryUnresolved
	}

	return filepath.Join(home, rest), nil
}
