package fraghash

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func cshake(custom string, size int, data ...[]byte) []byte {
	h := sha3.NewCShake256(nil, []byte(custom))
	for _, d := range data {
		h.Write(d)
	}
	out := make([]byte, size)
	h.Read(out)
	return out
}

func TestContextMatchesCShake(t *testing.T) {
	c := NewContext(FragmentCustom)
	c.Absorb([]byte("hello"))
	out := make([]byte, 32)
	c.Squeeze(out)
	require.Equal(t, cshake(FragmentCustom, 32, []byte("hello")), out)
	require.Equal(t, FragmentCustom, c.Custom())
}

func TestContextSqueezeKeepsAbsorbing(t *testing.T) {
	c := NewContext(SumCustom)
	out := make([]byte, 64)

	c.Absorb([]byte("hello"))
	c.Squeeze(out)
	require.Equal(t, cshake(SumCustom, 64, []byte("hello")), out)

	c.Absorb([]byte("world"))
	c.Squeeze(out)
	require.Equal(t, cshake(SumCustom, 64, []byte("helloworld")), out)
}

func TestContextReset(t *testing.T) {
	c := NewContext(FragmentCustom)
	first := make([]byte, 32)
	second := make([]byte, 32)

	c.Absorb([]byte("one"))
	c.Squeeze(first)
	c.Reset()
	c.Absorb([]byte("one"))
	c.Squeeze(second)
	require.Equal(t, first, second)
}

func TestContextSqueezeReset(t *testing.T) {
	c := NewContext(FragmentCustom)
	out := make([]byte, 32)

	c.Absorb([]byte("one"))
	c.SqueezeReset(out)
	require.Equal(t, cshake(FragmentCustom, 32, []byte("one")), out)

	// Absorbing after the reset starts a fresh fragment.
	c.Absorb([]byte("two"))
	c.SqueezeReset(out)
	require.Equal(t, cshake(FragmentCustom, 32, []byte("two")), out)
}

func TestCustomizationSeparatesDomains(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	fc := NewContext(FragmentCustom)
	sc := NewContext(SumCustom)
	fc.Absorb([]byte("same input"))
	sc.Absorb([]byte("same input"))
	fc.Squeeze(a)
	sc.Squeeze(b)
	require.False(t, bytes.Equal(a, b))
}

func TestAlgorithms(t *testing.T) {
	tests := []struct {
		width   int
		want    string
		wantErr error
	}{
		{width: 32, want: "cshake256_256"},
		{width: 64, want: "cshake256_512"},
		{width: 48, wantErr: ErrUnsupportedWidth},
		{width: 0, wantErr: ErrUnsupportedWidth},
	}
	for _, tt := range tests {
		alg, err := ForWidth(tt.width)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, alg.Name)
		require.Equal(t, tt.width, alg.Size)

		byName, err := ByName(tt.want)
		require.NoError(t, err)
		require.Equal(t, alg, byName)
	}

	_, err := ByName("sha256")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Len(t, Algorithms(), 2)
}
