// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"fmt"
	"path/filepath"
	"strings"
)

// file extensions, without the leading dot
const (
	fileExtensionZip         = "zip"
	fileExtensionRar         = "rar"
	fileExtension7zip        = "7z"
	fileExtensionTar         = "tar"
	fileExtensionTarBzip2    = "tar.bz2"
	fileExtensionTarGzip     = "tar.gz"
	fileExtensionTarLzip     = "tar.lz"
	fileExtensionTarLzop     = "tar.lzo"
	fileExtensionTarXz       = "tar.xz"
	fileExtensionTarCompress = "tar.Z"
	fileExtensionTarZstd     = "tar.zst"
)

// ExtensionRule maps a literal file extension (without the leading dot) to
// exactly one format.
type ExtensionRule struct {
	Extension string
	Format    Format
}

// extensionRules is the lookup table for [MatchExtension]. Every extension
// appears only once.
var extensionRules = []ExtensionRule{
	{fileExtensionZip, Zip},
	{fileExtensionRar, Rar},
	{fileExtension7zip, SevenZip},
	{fileExtensionTar, Tar},
	{fileExtensionTarBzip2, TarBzip2},
	{fileExtensionTarGzip, TarGzip},
	{fileExtensionTarLzip, TarLzip},
	{fileExtensionTarLzop, TarLzop},
	{fileExtensionTarXz, TarXz},
	{fileExtensionTarCompress, TarCompress},
	{fileExtensionTarZstd, TarZstd},
}

// Extensions returns a copy of the extension table.
func Extensions() []ExtensionRule {
	out := make([]ExtensionRule, len(extensionRules))
	copy(out, extensionRules)
	return out
}

// MatchExtension determines the format of path by its file extension. The
// extension is everything after the first dot of the base name, so compound
// extensions like "tar.gz" are matched as a whole. The comparison is case
// sensitive. The file itself is never read.
//
// If the base name has no dot, ends with a dot, or carries an extension that
// is not in the table, an error wrapping [ErrUnknownExtension] is returned.
func MatchExtension(path string) (Format, error) {
	name := filepath.Base(path)

	_, ext, found := strings.Cut(name, ".")
	if !found || strings.HasSuffix(name, ".") {
		return Unknown, fmt.Errorf("%w: %s has no extension", ErrUnknownExtension, name)
	}

	for _, rule := range extensionRules {
		if rule.Extension == ext {
			return rule.Format, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}
