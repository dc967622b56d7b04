package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/fraghash/filelist"
	"github.com/klauspost/compress/zstd"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type zstdWriteCloser struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdWriteCloser) Write(p []byte) (int, error) { return z.enc.Write(p) }

func (z *zstdWriteCloser) Close() error {
	err := z.enc.Close()
	if cerr := z.f.Close(); err == nil {
		err = cerr
	}
	return err
}

type zstdReadCloser struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdReadCloser) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return z.f.Close()
}

func isZstd(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// createDestination opens the manifest destination. An empty path or "-"
// means stdout. Existing files are never overwritten. Paths ending in .zst
// are written zstd-compressed.
func createDestination(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	if !isZstd(path) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &zstdWriteCloser{enc: enc, f: f}, nil
}

// openManifest opens a manifest for reading, "-" meaning stdin. Paths
// ending in .zst are decompressed.
func openManifest(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	if !isZstd(path) {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &zstdReadCloser{dec: dec, f: f}, nil
}

// pathsOverlap reports whether one path is equal to or contained in the other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err := filepath.Abs(path1)
	if err != nil {
		return false
	}
	abs2, err := filepath.Abs(path2)
	if err != nil {
		return false
	}
	return within(abs1, abs2) || within(abs2, abs1)
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// withoutFile drops the listed entries that are the same file as path.
// The manifest being written or checked must not hash itself.
func withoutFile(entries []filelist.Entry, path string) []filelist.Entry {
	target, err := os.Stat(path)
	if err != nil {
		return entries
	}
	out := make([]filelist.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			if info, err := os.Stat(e.Path); err == nil && os.SameFile(info, target) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
