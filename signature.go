// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// init calculates the maximum header length
func init() {
	for _, sig := range signatures {
		if needs := sig.Offset + len(sig.MagicBytes); needs > maxHeaderLength {
			maxHeaderLength = needs
		}
	}
}

// maxHeaderLength is the number of bytes needed to check every signature
var maxHeaderLength int

// offsetTar is the offset of the ustar marker inside the first 512 byte
// header block of a tar archive.
const offsetTar = 257

// Signature is a byte pattern expected at a fixed offset of a file.
type Signature struct {
	Format     Format
	MagicBytes []byte
	Offset     int
}

// signatures is checked in order, the first match wins. Formats with offset 0
// must differ in their leading bytes.
var signatures = []Signature{
	// 50 4B 03 04, 50 4B 05 06 (empty), 50 4B 07 08 (spanned)
	{Format: Zip, MagicBytes: []byte("PK")},
	// 52 61 72 21 1A 07 00 (v1.5), 52 61 72 21 1A 07 01 00 (v5)
	{Format: Rar, MagicBytes: []byte("Rar!")},
	// 37 7A BC AF 27 1C
	{Format: SevenZip, MagicBytes: []byte("7z")},
	// "ustar\x0000" (posix), "ustar  \x00" (gnu)
	{Format: Tar, MagicBytes: []byte("ustar"), Offset: offsetTar},
	{Format: TarBzip2, MagicBytes: []byte("BZh")},
	{Format: TarGzip, MagicBytes: []byte{0x1F, 0x8B}},
	{Format: TarLzip, MagicBytes: []byte("LZIP")},
	{Format: TarLzop, MagicBytes: []byte{0x89, 0x4C, 0x5A, 0x4F, 0x00, 0x0D, 0x0A, 0x1A, 0x0A}},
	// reference https://tukaani.org/xz/xz-file-format-1.0.4.txt
	{Format: TarXz, MagicBytes: []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
	// 1F 9D (LZW); 1F A0 (LZH) is not recognized
	{Format: TarCompress, MagicBytes: []byte{0x1F, 0x9D}},
	// reference: https://www.rfc-editor.org/rfc/rfc8878.html
	{Format: TarZstd, MagicBytes: []byte{0x28, 0xB5, 0x2F, 0xFD}},
}

// Signatures returns a copy of the signature table in the order it is checked.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	for i, sig := range signatures {
		out[i] = Signature{
			Format:     sig.Format,
			MagicBytes: bytes.Clone(sig.MagicBytes),
			Offset:     sig.Offset,
		}
	}
	return out
}

// MaxHeaderLength returns the number of leading bytes that are inspected to
// identify a file by its signature.
func MaxHeaderLength() int {
	return maxHeaderLength
}

// matches checks if header is long enough to hold the signature and carries
// the magic bytes at the signature's offset.
func (s Signature) matches(header []byte) bool {
	end := s.Offset + len(s.MagicBytes)
	if end > len(header) {
		return false
	}
	return bytes.Equal(s.MagicBytes, header[s.Offset:end])
}

// MatchSignature determines the format from the leading bytes of a file. If
// no signature matches, an error wrapping [ErrUnknownSignature] is returned.
func MatchSignature(header []byte) (Format, error) {
	for _, sig := range signatures {
		if sig.matches(header) {
			return sig.Format, nil
		}
	}
	return Unknown, ErrUnknownSignature
}

// ScanSignature reads the leading bytes of the file at path and determines
// its format by signature. The file is expected to be a regular file, see
// [ResolvePath]. Open and read failures are returned wrapped in [ErrIO].
func ScanSignature(path string) (Format, error) {
	f, _, err := scanSignature(path)
	return f, err
}

// scanSignature does the work of [ScanSignature] and additionally reports how
// many header bytes have been read.
func scanSignature(path string) (Format, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return Unknown, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	hr, err := newHeaderReader(file, maxHeaderLength)
	if err != nil {
		return Unknown, 0, err
	}
	header := hr.PeekHeader()

	format, err := MatchSignature(header)
	if err != nil {
		return Unknown, len(header), fmt.Errorf("%w: %s", err, path)
	}
	return format, len(header), nil
}

// IdentifyReader determines the format of a stream by signature. Up to
// [MaxHeaderLength] bytes are read from r. The returned reader yields the
// complete stream, including the inspected header, and should be used instead
// of r afterwards by callers that go on to consume the stream. It is nil only
// if reading the header failed.
func IdentifyReader(r io.Reader) (Format, io.Reader, error) {
	hr, err := newHeaderReader(r, maxHeaderLength)
	if err != nil {
		return Unknown, nil, err
	}

	format, err := MatchSignature(hr.PeekHeader())
	return format, hr, err
}
