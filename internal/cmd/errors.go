package cmd

import "errors"

var (
	errVerifyFailed      = errors.New("manifest does not match tree")
	errInvalidFragmentMB = errors.New("fragment size must be a positive number of MiB")
)
