package fraghash

import (
	"bytes"
	"fmt"
	"math"

	"github.com/dendrascience/fraghash/filelist"
	"github.com/dendrascience/fraghash/manifest"
)

// Verify hashes entries again using the algorithm, customization strings
// and fragment size declared in want's header, and returns how the fresh
// manifest differs from want. Only opts.Progress and opts.Logger are used.
func Verify(want *manifest.Document, entries []filelist.Entry, opts Options) ([]manifest.Mismatch, error) {
	h := want.Header
	alg, err := ByName(h.Alg)
	if err != nil {
		return nil, err
	}
	if h.SumAlg != h.Alg {
		return nil, fmt.Errorf("%w: sum_alg %q differs from alg %q", ErrUnknownAlgorithm, h.SumAlg, h.Alg)
	}
	if h.Frag == 0 || h.Frag > math.MaxInt {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFragmentSize, h.Frag)
	}

	var buf bytes.Buffer
	_, err = HashTree(&buf, entries, Options{
		FragmentSize: int(h.Frag),
		Width:        alg.Size,
		Custom:       h.Custom,
		SumCustom:    h.SumCustom,
		Progress:     opts.Progress,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	got, err := manifest.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse regenerated manifest: %w", err)
	}
	return manifest.Compare(want, got), nil
}
