package filelist

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Entry is one listed path.
type Entry struct {
	Path  string
	IsDir bool
}

// ExcludeFunc reports whether the directory entry with the given base name
// should be left out of the listing.
type ExcludeFunc func(name string, isDir bool) bool

type options struct {
	maxDepth int
	exclude  ExcludeFunc
}

// Option configures List.
type Option func(*options)

// WithMaxDepth limits recursion. A depth of 1 lists only the direct
// children of the root. Zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithExclude replaces DefaultExclude. A nil predicate excludes nothing.
func WithExclude(exclude ExcludeFunc) Option {
	return func(o *options) {
		o.exclude = exclude
	}
}

// List returns the entries below root sorted by path.
//
// If root is a regular file the result is that single file. Symlinks are
// classified by their target and never descended. Devices, pipes and
// sockets are skipped. Any error reading the tree aborts the listing.
func List(root string, opts ...Option) ([]Entry, error) {
	o := options{exclude: DefaultExclude}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDepth < 0 {
		return nil, ErrInvalidDepth
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrNotRegular, root)
		}
		return []Entry{{Path: root}}, nil
	}

	var entries []Entry
	if err := walk(root, 1, &o, &entries); err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// Files returns the paths of the non-directory entries, keeping their order.
func Files(entries []Entry) []string {
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			files = append(files, e.Path)
		}
	}
	return files
}

func walk(dir string, depth int, o *options, out *[]Entry) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, de := range dirEntries {
		path := join(dir, de.Name())
		isDir, keep, err := classify(path, de)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		if o.exclude != nil && o.exclude(de.Name(), isDir) {
			continue
		}

		*out = append(*out, Entry{Path: path, IsDir: isDir})

		descend := isDir && de.Type()&fs.ModeSymlink == 0
		if descend && (o.maxDepth == 0 || depth < o.maxDepth) {
			if err := walk(path, depth+1, o, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// classify returns whether path is a directory and whether it belongs in
// the listing at all.
func classify(path string, de fs.DirEntry) (isDir, keep bool, err error) {
	mode := de.Type()
	switch {
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return false, false, fmt.Errorf("resolve symlink %s: %w", path, err)
		}
		return info.IsDir(), info.IsDir() || info.Mode().IsRegular(), nil
	case mode.IsDir():
		return true, true, nil
	case mode.IsRegular():
		return false, true, nil
	default:
		return false, false, nil
	}
}

func join(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
