package fraghash

import "errors"

// Sentinel errors for package fraghash.
var (
	// Configuration errors, reported before any output is written
	ErrInvalidFragmentSize = errors.New("fragment size must be at least one byte")
	ErrUnsupportedWidth    = errors.New("unsupported hash width")
	ErrUnknownAlgorithm    = errors.New("unknown algorithm")
	ErrInvalidCustom       = errors.New("customization string contains a line feed")

	// The file changed length while it was being read
	ErrSizeMismatch = errors.New("bytes read do not match file size")
)
