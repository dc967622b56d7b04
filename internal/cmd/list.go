package cmd

import (
	"fmt"

	"github.com/dendrascience/fraghash/filelist"
	"github.com/dendrascience/fraghash/manifest"
	"github.com/dendrascience/fraghash/pathnorm"
	"github.com/dendrascience/fraghash/version"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the list subcommand for the fraghash CLI.
// It writes the normalized names of all files in manifest order.
func NewListCmd() *cobra.Command {
	var (
		tree   treeFlags
		output string
		concat bool
		count  bool
	)

	cmd := &cobra.Command{
		Use:   "list [SRC]",
		Short: "List files in manifest order",
		Long: `Write the normalized names of all files below SRC (default ".") in the
order "hash" would process them, one per line, after a short header.

With --concat the header is omitted and each line reads file '<name>', the
input format of ffmpeg's concat demuxer. Names containing a single quote
are rejected in that mode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, &tree, output, concat, count, sourceRoot(args))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file, created exclusively (default stdout)")
	cmd.Flags().BoolVar(&concat, "concat", false, "Write ffmpeg concat demuxer lines without header")
	cmd.Flags().BoolVar(&count, "count", false, "Only write the number of files")
	tree.register(cmd)

	return cmd
}

func runList(cmd *cobra.Command, tree *treeFlags, output string, concat, count bool, src string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree.apply(cmd, cfg)

	entries, err := tree.list(src)
	if err != nil {
		return err
	}
	files := filelist.Files(entries)
	newLogger(cmd).Debug("tree listed", "src", src, "files", len(files))

	dst, err := createDestination(cmd.OutOrStdout(), output)
	if err != nil {
		return err
	}
	if count {
		_, err = fmt.Fprintf(dst, "Total files: %d\n", len(files))
	} else {
		err = writeList(manifest.NewListWriter(dst, concat), files)
	}
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close destination: %w", cerr)
	}
	return err
}

func writeList(lw *manifest.ListWriter, files []string) error {
	if err := lw.WriteHeader(version.WriterIdentity("filelist")); err != nil {
		return err
	}
	for _, f := range files {
		if err := lw.WriteName(pathnorm.ManifestName(f)); err != nil {
			lw.Flush()
			return fmt.Errorf("%q: %w", f, err)
		}
	}
	return lw.Flush()
}
