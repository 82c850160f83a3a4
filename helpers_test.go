// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype_test

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// createTestFile writes content to dir/name and returns the path
func createTestFile(t *testing.T, dir string, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0640); err != nil {
		t.Fatalf("cannot create test file %s: %s", path, err)
	}
	return path
}

// withMagic returns a buffer of size bytes that carries magic at offset
func withMagic(magic []byte, offset int, size int) []byte {
	if size < offset+len(magic) {
		size = offset + len(magic)
	}
	buf := make([]byte, size)
	copy(buf[offset:], magic)
	return buf
}

// createTestTar returns a tar archive with a single file
func createTestTar(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	content := []byte("hello world")
	if err := tw.WriteHeader(&tar.Header{Name: "hello.txt", Mode: 0640, Size: int64(len(content)), Typeflag: tar.TypeReg}); err != nil {
		t.Fatalf("cannot write tar header: %s", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("cannot write tar content: %s", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("cannot close tar writer: %s", err)
	}
	return buf.Bytes()
}

// createTestZip returns a zip archive with a single file
func createTestZip(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("hello.txt")
	if err != nil {
		t.Fatalf("cannot create zip entry: %s", err)
	}
	if _, err := w.Write([]byte("hello world")); err != nil {
		t.Fatalf("cannot write zip entry: %s", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close zip writer: %s", err)
	}
	return buf.Bytes()
}

// compressWith streams data through the writer created by newWriter
func compressWith(t *testing.T, data []byte, newWriter func(io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	if err != nil {
		t.Fatalf("cannot create compressor: %s", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot compress: %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close compressor: %s", err)
	}
	return buf.Bytes()
}

func gzipWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func zstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

func xzWriter(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}

func bzip2Writer(w io.Writer) (io.WriteCloser, error) {
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.BestCompression})
}

func lz4Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func snappyWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}
