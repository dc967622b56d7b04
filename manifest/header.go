package manifest

import "strings"

const (
	// FormatLine opens every manifest.
	FormatLine = "Berylsoft File Fragment Hash Standard Version 2.1"
	// ListFormatLine opens a plain name list.
	ListFormatLine = "NOTA " + FormatLine
)

// Header carries the fields written before the first file block.
type Header struct {
	Writer    string
	Alg       string
	Custom    string
	SumAlg    string
	SumCustom string
	Frag      uint64
}

// ValidateName reports whether name can be written to a manifest.
func ValidateName(name string) error {
	if strings.IndexByte(name, '\n') >= 0 {
		return ErrNameContainsNewline
	}
	return nil
}
