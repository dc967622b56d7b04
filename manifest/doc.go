// Package manifest reads and writes File Fragment Hash Standard documents.
//
// A manifest is UTF-8 text with LF line endings:
//
//	Berylsoft File Fragment Hash Standard Version 2.1
//
//	writer=fraghash@<commit>
//	alg=cshake256_256
//	custom=BerylsoftFragHashV1
//	sum_alg=cshake256_256
//	sum_custom=BerylsoftFragHashSumV1
//	frag=1048576
//
//	name(5)=a.txt
//	size=5
//	<hex digest> 0
//	<hex digest> SUM
//
// Every file block starts with an empty line. Names are prefixed with
// their byte length, so they need no escaping; the only byte a name may
// not contain is LF. Numbers are plain decimal.
//
// The package also writes the header-less name lists used to feed external
// concatenation tools, see ListWriter.
package manifest
