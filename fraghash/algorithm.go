package fraghash

import (
	"fmt"
	"slices"
)

const (
	// FragmentCustom customizes the per-fragment hash context.
	FragmentCustom = "BerylsoftFragHashV1"
	// SumCustom customizes the running sum hash context.
	SumCustom = "BerylsoftFragHashSumV1"
)

// Algorithm names a cSHAKE256 output width.
type Algorithm struct {
	Name string
	Size int // digest bytes
}

var algorithms = []Algorithm{
	{Name: "cshake256_256", Size: 32},
	{Name: "cshake256_512", Size: 64},
}

// Algorithms returns the supported algorithms, narrowest first.
func Algorithms() []Algorithm {
	return slices.Clone(algorithms)
}

// ForWidth returns the algorithm producing width-byte digests.
func ForWidth(width int) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Size == width {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, width)
}

// ByName looks an algorithm up by its manifest name.
func ByName(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
