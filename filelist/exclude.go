package filelist

import "strings"

// DefaultExclude skips the platform's known metadata directories.
func DefaultExclude(name string, isDir bool) bool {
	return isDir && matchMetadataDir(metadataDirs, name, foldMetadataCase)
}

// matchMetadataDir reports whether name is one of dirs, ignoring case when
// foldCase is set.
func matchMetadataDir(dirs []string, name string, foldCase bool) bool {
	for _, d := range dirs {
		if d == name || (foldCase && strings.EqualFold(d, name)) {
			return true
		}
	}
	return false
}

// ExcludeNames returns a predicate that skips entries with any of the given
// base names, in addition to whatever base excludes.
func ExcludeNames(base ExcludeFunc, names ...string) ExcludeFunc {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string, isDir bool) bool {
		if _, ok := set[name]; ok {
			return true
		}
		return base != nil && base(name, isDir)
	}
}
