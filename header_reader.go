// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// headerReader buffers the leading bytes of a stream so they can be matched
// against the signature table and still be handed on with the rest of the
// stream. Reading yields the buffered header followed by the remaining source.
type headerReader struct {
	io.Reader
	header []byte
}

// newHeaderReader reads up to size bytes from r. A short read is not an
// error, whatever was read before EOF becomes the header.
func newHeaderReader(r io.Reader, size int) (*headerReader, error) {
	header := make([]byte, size)
	n, err := io.ReadFull(r, header)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		return nil, fmt.Errorf("%w: cannot read header: %w", ErrIO, err)
	}
	header = header[:n]

	return &headerReader{
		Reader: io.MultiReader(bytes.NewReader(header), r),
		header: header,
	}, nil
}

// PeekHeader returns the buffered header. Reading from the stream does not
// consume it.
func (h *headerReader) PeekHeader() []byte {
	return h.header
}
