package filelist

import "errors"

var (
	ErrNotRegular   = errors.New("not a regular file or directory")
	ErrInvalidDepth = errors.New("max depth must not be negative")
)
