// Package filelist enumerates the entries below a root path in the stable
// order manifests are written in.
//
// Paths are built by appending entry names to the root exactly as given,
// so a root of "." yields paths such as "./a/b.txt". The list is sorted by
// those raw path strings, byte by byte, before any normalization happens.
// Callers that display or record normalized names must keep this order.
//
// Directories matched by the exclude predicate are neither listed nor
// descended. DefaultExclude skips the metadata directories a platform is
// known to create at volume roots.
package filelist
