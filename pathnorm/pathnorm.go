// Package pathnorm turns filesystem paths into the canonical names written
// to manifests.
//
// Normalization is lexical only. A ".." component drops the previously
// kept segment, or nothing if there is none, so the result can differ from
// what the filesystem would resolve when symlinks are involved.
package pathnorm

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Normalize collapses the components of path.
//
// The volume name (drive letter or UNC prefix) is kept verbatim, a leading
// root separator is kept, "." components are dropped and ".." components
// pop the last named segment. The remaining segments are joined with the
// host separator. Normalize(".") is the empty string.
func Normalize(path string) string {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	rooted := len(rest) > 0 && os.IsPathSeparator(rest[0])

	var segments []string
	for _, seg := range strings.FieldsFunc(rest, isSeparator) {
		switch seg {
		case ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}

	var b strings.Builder
	b.Grow(len(path))
	b.WriteString(vol)
	if rooted {
		b.WriteByte(filepath.Separator)
	}
	b.WriteString(strings.Join(segments, string(filepath.Separator)))
	return b.String()
}

// ManifestName returns the normalized form of path using '/' as the
// separator on every platform.
func ManifestName(path string) string {
	return filepath.ToSlash(Normalize(path))
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
