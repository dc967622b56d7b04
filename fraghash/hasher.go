package fraghash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dendrascience/fraghash/filelist"
	"github.com/dendrascience/fraghash/manifest"
	"github.com/dendrascience/fraghash/pathnorm"
	"github.com/dendrascience/fraghash/progress"
	"github.com/dendrascience/fraghash/version"
)

// Options configures a Hasher.
type Options struct {
	// FragmentSize is the fragment length in bytes.
	FragmentSize int
	// Width is the digest length in bytes, 32 or 64.
	Width int
	// Writer identifies the producing program in the header. Defaults to
	// "fraghash@<commit>".
	Writer string
	// Custom and SumCustom override the customization strings of the
	// fragment and sum contexts. They default to FragmentCustom and
	// SumCustom; anything else produces a manifest other standard
	// implementations will not reproduce.
	Custom    string
	SumCustom string
	// Progress receives per-file byte counters. May be nil.
	Progress *progress.Reporter
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
}

// Stats summarises a run.
type Stats struct {
	Files uint64
	Bytes uint64
}

// Hasher writes one manifest. Call WriteHeader once, HashFile for every
// file in listing order, then Flush.
type Hasher struct {
	alg      Algorithm
	header   manifest.Header
	out      *manifest.Writer
	progress *progress.Reporter
	log      *slog.Logger

	frag *Context
	sum  *Context

	buf    []byte
	digest []byte
	hexBuf []byte

	stats Stats
}

// New validates opts and returns a Hasher writing to w. Nothing is written
// until WriteHeader is called.
func New(w io.Writer, opts Options) (*Hasher, error) {
	if opts.FragmentSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFragmentSize, opts.FragmentSize)
	}
	alg, err := ForWidth(opts.Width)
	if err != nil {
		return nil, err
	}
	if opts.Custom == "" {
		opts.Custom = FragmentCustom
	}
	if opts.SumCustom == "" {
		opts.SumCustom = SumCustom
	}
	if strings.ContainsRune(opts.Custom, '\n') || strings.ContainsRune(opts.SumCustom, '\n') {
		return nil, ErrInvalidCustom
	}
	if opts.Writer == "" {
		opts.Writer = version.WriterIdentity("fraghash")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Hasher{
		alg: alg,
		header: manifest.Header{
			Writer:    opts.Writer,
			Alg:       alg.Name,
			Custom:    opts.Custom,
			SumAlg:    alg.Name,
			SumCustom: opts.SumCustom,
			Frag:      uint64(opts.FragmentSize),
		},
		out:      manifest.NewWriter(w),
		progress: opts.Progress,
		log:      opts.Logger,
		frag:     NewContext(opts.Custom),
		sum:      NewContext(opts.SumCustom),
		buf:      make([]byte, opts.FragmentSize),
		digest:   make([]byte, alg.Size),
		hexBuf:   make([]byte, alg.Size*2),
	}, nil
}

// Header returns the header the Hasher writes.
func (h *Hasher) Header() manifest.Header {
	return h.header
}

// Stats returns the files and bytes hashed so far.
func (h *Hasher) Stats() Stats {
	return h.stats
}

// WriteHeader writes the manifest header.
func (h *Hasher) WriteHeader() error {
	if err := h.out.WriteHeader(h.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// HashFile appends the block for the file at path. The recorded name is
// the normalized path with '/' separators; it is checked before the file
// is opened.
func (h *Hasher) HashFile(path string) error {
	name := pathnorm.ManifestName(path)
	if err := manifest.ValidateName(name); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, filelist.ErrNotRegular)
	}
	size := uint64(info.Size())

	if err := h.out.BeginFile(name, size); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	h.progress.StartFile(name)

	var read, index uint64
	for {
		n, err := io.ReadFull(f, h.buf)
		if n > 0 {
			chunk := h.buf[:n]
			h.frag.Absorb(chunk)
			h.sum.Absorb(chunk)
			h.frag.SqueezeReset(h.digest)
			hex.Encode(h.hexBuf, h.digest)
			if werr := h.out.WriteFragment(h.hexBuf, index); werr != nil {
				return fmt.Errorf("write %s: %w", name, werr)
			}
			index++
			read += uint64(n)
			h.progress.Advance(read)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}

	h.progress.EndFile()
	if read != size {
		return fmt.Errorf("%s: %w: read %d, size %d", path, ErrSizeMismatch, read, size)
	}

	h.sum.Squeeze(h.digest)
	hex.Encode(h.hexBuf, h.digest)
	if err := h.out.WriteSum(h.hexBuf); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	h.stats.Files++
	h.stats.Bytes += read
	h.log.Debug("hashed file", "name", name, "size", size, "fragments", index)
	return nil
}

// Flush writes buffered manifest output.
func (h *Hasher) Flush() error {
	if err := h.out.Flush(); err != nil {
		return fmt.Errorf("flush manifest: %w", err)
	}
	return nil
}

// HashTree writes a complete manifest for entries to w. Directory entries
// are skipped. The first error aborts the run; output written before it
// is flushed as far as possible and must be treated as incomplete.
func HashTree(w io.Writer, entries []filelist.Entry, opts Options) (Stats, error) {
	h, err := New(w, opts)
	if err != nil {
		return Stats{}, err
	}
	if err := h.WriteHeader(); err != nil {
		return h.Stats(), err
	}
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if err := h.HashFile(e.Path); err != nil {
			h.Flush()
			return h.Stats(), err
		}
	}
	return h.Stats(), h.Flush()
}
