// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import "strings"

// Command is an external command line that unpacks an archive. It is only a
// description, nothing in this package executes it.
type Command struct {
	Name string
	Args []string
}

// String returns the command line with arguments separated by spaces.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// UnpackCommand returns the command a dispatcher would run to unpack archive
// of format f into the current working directory. For [Unknown] the zero
// Command is returned.
func UnpackCommand(f Format, archive string) Command {
	switch f {
	case Zip:
		return Command{Name: "unzip", Args: []string{archive}}
	case Rar:
		return Command{Name: "unrar", Args: []string{"x", archive}}
	case SevenZip:
		return Command{Name: "7z", Args: []string{"x", archive}}
	case Tar:
		return untar("", archive)
	case TarBzip2:
		return untar("--bzip2", archive)
	case TarGzip:
		return untar("--gzip", archive)
	case TarLzip:
		return untar("--lzip", archive)
	case TarLzop:
		return untar("--lzop", archive)
	case TarXz:
		return untar("--xz", archive)
	case TarCompress:
		return untar("--uncompress", archive)
	case TarZstd:
		return untar("--zstd", archive)
	}
	return Command{}
}

// untar builds a tar extraction command with an optional decompression flag.
func untar(flag string, archive string) Command {
	args := []string{"-xf", archive}
	if flag != "" {
		args = append([]string{flag}, args...)
	}
	return Command{Name: "tar", Args: args}
}
