package cmd

import (
	"fmt"
	"math"

	"github.com/dendrascience/fraghash/fraghash"
	"github.com/dendrascience/fraghash/progress"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type hashOptions struct {
	fragmentMiB int
	width       int
	output      string
	progress    bool
	tree        treeFlags
}

// NewHashCmd creates and returns the hash subcommand for the fraghash CLI.
// It writes a fragment hash manifest for a file or directory tree.
func NewHashCmd() *cobra.Command {
	var o hashOptions

	cmd := &cobra.Command{
		Use:   "hash [SRC]",
		Short: "Write a fragment hash manifest for a file or directory tree",
		Long: `Write a File Fragment Hash Standard manifest for SRC (default ".").

Files are listed recursively, sorted by path, and read in fragments of
--fragment MiB. For every fragment a cSHAKE256 hash is written, followed per
file by a SUM hash over all bytes read so far in the run.

The manifest goes to stdout unless --output is given. An existing output
file is never overwritten; a name ending in .zst is written compressed.
Byte counters are printed to stderr while reading unless --progress=false.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, &o, sourceRoot(args))
		},
	}

	cmd.Flags().IntVarP(&o.fragmentMiB, "fragment", "f", 0, "Fragment size in MiB (required unless set in config)")
	cmd.Flags().IntVarP(&o.width, "width", "w", 32, "Digest width in bytes: 32 (cshake256_256) or 64 (cshake256_512)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Destination file, created exclusively (default stdout)")
	cmd.Flags().BoolVar(&o.progress, "progress", true, "Print per-file byte progress to stderr")
	o.tree.register(cmd)

	return cmd
}

func runHash(cmd *cobra.Command, o *hashOptions, src string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyInt(cmd, "fragment", &o.fragmentMiB, cfg.FragmentMiB)
	applyInt(cmd, "width", &o.width, cfg.Width)
	applyBool(cmd, "progress", &o.progress, cfg.Progress)
	o.tree.apply(cmd, cfg)

	if o.fragmentMiB <= 0 || o.fragmentMiB > math.MaxInt>>20 {
		return fmt.Errorf("%w: %d", errInvalidFragmentMB, o.fragmentMiB)
	}
	if _, err := fraghash.ForWidth(o.width); err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Debug("listing tree", "src", src, "max_depth", o.tree.maxDepth)
	entries, err := o.tree.list(src)
	if err != nil {
		return err
	}

	dst, err := createDestination(cmd.OutOrStdout(), o.output)
	if err != nil {
		return err
	}

	var reporter *progress.Reporter
	if o.progress {
		reporter = progress.New(cmd.ErrOrStderr())
	}
	stats, err := fraghash.HashTree(dst, entries, fraghash.Options{
		FragmentSize: o.fragmentMiB << 20,
		Width:        o.width,
		Progress:     reporter,
		Logger:       logger,
	})
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close destination: %w", cerr)
	}
	if err != nil {
		return err
	}
	warnProgress(logger, reporter)

	logger.Info("manifest written",
		"files", stats.Files,
		"bytes", humanize.IBytes(stats.Bytes),
		"fragment", humanize.IBytes(uint64(o.fragmentMiB)<<20),
	)
	return nil
}
