package cmd

import (
	"github.com/dendrascience/fraghash/filelist"
	"github.com/spf13/cobra"
)

// treeFlags are the listing flags shared by hash, verify and list.
type treeFlags struct {
	maxDepth int
	exclude  []string
}

func (t *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&t.maxDepth, "max-depth", 0, "Maximum recursion depth, 0 for unlimited")
	cmd.Flags().StringSliceVar(&t.exclude, "exclude", nil, "Directory or file names to skip (repeatable)")
}

func (t *treeFlags) apply(cmd *cobra.Command, cfg Config) {
	applyInt(cmd, "max-depth", &t.maxDepth, cfg.MaxDepth)
	t.exclude = append(t.exclude, cfg.Exclude...)
}

func (t *treeFlags) list(root string) ([]filelist.Entry, error) {
	opts := []filelist.Option{filelist.WithMaxDepth(t.maxDepth)}
	if len(t.exclude) > 0 {
		opts = append(opts, filelist.WithExclude(filelist.ExcludeNames(filelist.DefaultExclude, t.exclude...)))
	}
	return filelist.List(root, opts...)
}

func sourceRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
