package cmd

import (
	"fmt"

	"github.com/dendrascience/fraghash/fraghash"
	"github.com/dendrascience/fraghash/manifest"
	"github.com/dendrascience/fraghash/progress"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify subcommand for the fraghash CLI.
// It re-hashes a tree and compares the result with an existing manifest.
func NewVerifyCmd() *cobra.Command {
	var (
		tree         treeFlags
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "verify MANIFEST [SRC]",
		Short: "Check a file tree against a manifest",
		Long: `Re-hash SRC (default ".") with the algorithm and fragment size recorded
in MANIFEST and report every difference.

SRC must be given the same way it was given to "hash", since file names are
compared as recorded. MANIFEST may be "-" for stdin and may be
zstd-compressed (.zst). A manifest stored inside SRC is not hashed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, &tree, showProgress, args[0], sourceRoot(args[1:]))
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Print per-file byte progress to stderr")
	tree.register(cmd)

	return cmd
}

func runVerify(cmd *cobra.Command, tree *treeFlags, showProgress bool, manifestPath, src string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree.apply(cmd, cfg)
	logger := newLogger(cmd)

	rc, err := openManifest(cmd.InOrStdin(), manifestPath)
	if err != nil {
		return err
	}
	want, err := manifest.Parse(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", manifestPath, err)
	}
	logger.Debug("manifest loaded", "writer", want.Header.Writer, "alg", want.Header.Alg,
		"fragment", humanize.IBytes(want.Header.Frag), "files", len(want.Files))

	entries, err := tree.list(src)
	if err != nil {
		return err
	}
	if manifestPath != "-" && pathsOverlap(src, manifestPath) {
		entries = withoutFile(entries, manifestPath)
	}

	var reporter *progress.Reporter
	if showProgress {
		reporter = progress.New(cmd.ErrOrStderr())
	}
	mismatches, err := fraghash.Verify(want, entries, fraghash.Options{Progress: reporter, Logger: logger})
	if err != nil {
		return err
	}
	warnProgress(logger, reporter)

	out := cmd.OutOrStdout()
	for _, m := range mismatches {
		fmt.Fprintln(out, m.String())
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %d differences", errVerifyFailed, len(mismatches))
	}
	fmt.Fprintf(out, "OK: %d files match\n", len(want.Files))
	return nil
}
