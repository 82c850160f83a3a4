// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import "fmt"

// Format is an archive or container format that can be identified.
type Format uint8

const (
	// Unknown is the zero value. It is never returned together with a nil error.
	Unknown Format = iota
	Zip
	Rar
	SevenZip
	Tar
	TarBzip2
	TarGzip
	TarLzip
	TarLzop
	TarXz
	TarCompress
	TarZstd
)

// formats lists all known formats in declaration order.
var formats = []Format{
	Zip,
	Rar,
	SevenZip,
	Tar,
	TarBzip2,
	TarGzip,
	TarLzip,
	TarLzop,
	TarXz,
	TarCompress,
	TarZstd,
}

// Formats returns all known formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// String returns the name of the format, e.g. "TarGzip".
func (f Format) String() string {
	switch f {
	case Zip:
		return "Zip"
	case Rar:
		return "Rar"
	case SevenZip:
		return "SevenZip"
	case Tar:
		return "Tar"
	case TarBzip2:
		return "TarBzip2"
	case TarGzip:
		return "TarGzip"
	case TarLzip:
		return "TarLzip"
	case TarLzop:
		return "TarLzop"
	case TarXz:
		return "TarXz"
	case TarCompress:
		return "TarCompress"
	case TarZstd:
		return "TarZstd"
	case Unknown:
		return "Unknown"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Extension returns the canonical file extension of the format, including
// the leading dot, e.g. ".tar.gz". Unknown returns an empty string.
func (f Format) Extension() string {
	switch f {
	case Zip:
		return "." + fileExtensionZip
	case Rar:
		return "." + fileExtensionRar
	case SevenZip:
		return "." + fileExtension7zip
	case Tar:
		return "." + fileExtensionTar
	case TarBzip2:
		return "." + fileExtensionTarBzip2
	case TarGzip:
		return "." + fileExtensionTarGzip
	case TarLzip:
		return "." + fileExtensionTarLzip
	case TarLzop:
		return "." + fileExtensionTarLzop
	case TarXz:
		return "." + fileExtensionTarXz
	case TarCompress:
		return "." + fileExtensionTarCompress
	case TarZstd:
		return "." + fileExtensionTarZstd
	}
	return ""
}

// ParseFormat returns the format with the given name. The name is compared
// case-sensitively against [Format.String].
func ParseFormat(name string) (Format, error) {
	for _, f := range formats {
		if f.String() == name {
			return f, nil
		}
	}
	return Unknown, fmt.Errorf("unknown format name %q", name)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
