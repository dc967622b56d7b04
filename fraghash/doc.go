// Package fraghash hashes files in fixed-size fragments and writes the
// results as a File Fragment Hash Standard manifest.
//
// Two cSHAKE256 contexts are driven by the same stream of fragments. The
// fragment context is customized with FragmentCustom and reset after every
// fragment, so each fragment line is the hash of that fragment alone. The
// sum context is customized with SumCustom and is never reset: the SUM line
// written after a file covers every byte of every file hashed so far in the
// run, in listing order. When a run hashes a single file that fits in one
// fragment, its fragment hash and its SUM hash are therefore computed over
// the same bytes.
//
// Fragment boundaries fall every FragmentSize bytes from the start of a
// file. A file of length L produces ceil(L/FragmentSize) fragment lines; an
// empty file produces none and only its SUM line.
//
// A Hasher is single-threaded. It keeps one read buffer, one digest buffer
// and one hex buffer for the whole run, and holds at most one source file
// open at a time.
package fraghash
