// Package main provides the fraghash command-line interface.
//
// fraghash writes and checks File Fragment Hash Standard manifests. Every
// regular file below a root is read in fixed-size fragments, each fragment
// is hashed with cSHAKE256, and a running SUM hash covers all bytes read so
// far in the run. The manifest is plain text and byte-stable for the same
// tree, fragment size and algorithm.
//
// The main binary supports multiple subcommands:
//   - hash: Write a manifest for a file or directory tree
//   - verify: Re-hash a tree and compare it with a manifest
//   - list: Write the file list in manifest order
//   - algorithms: Show the supported digest widths
//   - seed: Generate a tree of random test files
//   - version: Print build information
package main
