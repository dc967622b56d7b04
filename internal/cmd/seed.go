package cmd

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	output   string
	count    int
	maxSize  string
	maxDepth int
}

// NewSeedCmd creates and returns the seed subcommand for the fraghash CLI.
// It fills a directory with random files for trying out hash and verify.
func NewSeedCmd() *cobra.Command {
	var o seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a tree of random test files",
		Long: `Generate a tree of files with random content for trying out hash and
verify on a realistic input.

Files get UUID names and random sizes up to --max-size (for example "3MiB"),
with an empty file now and then. They are spread over nested directories up
to --depth levels deep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, &o)
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&o.count, "count", "c", 100, "Number of files to generate")
	cmd.Flags().StringVar(&o.maxSize, "max-size", "4MiB", "Largest file size")
	cmd.Flags().IntVar(&o.maxDepth, "depth", 3, "Deepest directory level")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, o *seedOptions) error {
	maxSize, err := humanize.ParseBytes(o.maxSize)
	if err != nil {
		return fmt.Errorf("invalid --max-size: %w", err)
	}
	if o.count < 0 || o.maxDepth < 0 {
		return fmt.Errorf("--count and --depth must not be negative")
	}
	logger := newLogger(cmd)

	if err := os.MkdirAll(o.output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Pool of directory names shared by all levels, so siblings repeat.
	dirPool := make([]string, 8)
	for i := range dirPool {
		dirPool[i] = uuid.NewString()[:8]
	}

	var total uint64
	dirs := make(map[string]struct{})
	for i := 0; i < o.count; i++ {
		dir := o.output
		for range randInt(o.maxDepth + 1) {
			dir = filepath.Join(dir, dirPool[randInt(len(dirPool))])
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}

		var size uint64
		if randInt(10) > 0 {
			size = uint64(randInt64(int64(maxSize) + 1))
		}
		path := filepath.Join(dir, uuid.NewString()+".bin")
		if err := writeRandomFile(path, size); err != nil {
			return err
		}
		total += size

		if (i+1)%100 == 0 {
			logger.Debug("seeding", "files", i+1, "of", o.count)
		}
	}

	logger.Info("seed complete",
		"files", o.count,
		"directories", len(dirs),
		"bytes", humanize.IBytes(total),
	)
	return nil
}

func writeRandomFile(path string, size uint64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.CopyN(f, rand.Reader, int64(size)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func randInt(n int) int {
	return int(randInt64(int64(n)))
}

func randInt64(n int64) int64 {
	if n <= 1 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(n))
	return v.Int64()
}
