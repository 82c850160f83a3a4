// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import "errors"

var (
	// ErrHomeDirectoryUnresolved is returned if a path starts with "~" but no
	// home directory is known.
	ErrHomeDirectoryUnresolved = errors.New("archtype: home directory unresolved")

	// ErrPathNotFound is returned if a path cannot be canonicalized, e.g.
	// because it does not exist.
	ErrPathNotFound = errors.New("archtype: path not found")

	// ErrNotARegularFile is returned if a path exists but is a directory,
	// device, socket or other non-regular entry.
	ErrNotARegularFile = errors.New("archtype: not a regular file")

	// ErrUnknownExtension is returned if a file name has no extension or an
	// extension that is not known.
	ErrUnknownExtension = errors.New("archtype: unknown extension")

	// ErrUnknownSignature is returned if no known signature matches the
	// header of a file.
	ErrUnknownSignature = errors.New("archtype: unknown signature")

	// ErrIO is returned if the header of a file could not be read.
	ErrIO = errors.New("archtype: i/o failure")
)
