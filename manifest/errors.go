package manifest

import "errors"

// Sentinel errors for package manifest.
var (
	ErrNameContainsNewline = errors.New("name contains a line feed")
	ErrNameContainsQuote   = errors.New("name contains a single quote")
	ErrMalformed           = errors.New("malformed manifest")
)
