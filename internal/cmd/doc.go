// Package cmd provides the command-line interface implementation for fraghash.
//
// It uses the Cobra library for command structure and Fang for styling,
// error rendering and exit codes. Each command lives in its own file with
// a constructor returning a *cobra.Command:
//   - root: command tree and global flags
//   - hash: write a fragment hash manifest for a file or directory tree
//   - verify: re-hash a tree and compare it with an existing manifest
//   - list: write the normalized file list, optionally in concat form
//   - algorithms: show the supported hash widths
//   - seed: generate a random tree to exercise the hasher
//   - version: print build information
//
// Commands share the YAML config loader, the slog logger setup and the
// destination handling (exclusive creation, optional zstd compression).
package cmd
