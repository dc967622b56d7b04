package manifest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const headerText = "Berylsoft File Fragment Hash Standard Version 2.1\n" +
	"\n" +
	"writer=fraghash@abc1234\n" +
	"alg=cshake256_256\n" +
	"custom=BerylsoftFragHashV1\n" +
	"sum_alg=cshake256_256\n" +
	"sum_custom=BerylsoftFragHashSumV1\n" +
	"frag=4\n"

func TestParse(t *testing.T) {
	text := headerText +
		"\nname(5)=a.txt\nsize=5\naa 0\nbb 1\ncc SUM\n" +
		"\nname(11)=x)y=\"z\" 'q'\nsize=0\ndd SUM\n"

	doc, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	h := testHeader()
	h.Frag = 4
	require.Equal(t, h, doc.Header)
	require.Equal(t, []FileBlock{
		{Name: "a.txt", Size: 5, Fragments: []string{"aa", "bb"}, Sum: "cc"},
		{Name: "x)y=\"z\" 'q'", Size: 0, Sum: "dd"},
	}, doc.Files)
}

func TestParseHeaderOnly(t *testing.T) {
	doc, err := Parse(strings.NewReader(headerText))
	require.NoError(t, err)
	require.Empty(t, doc.Files)
}

func TestParseWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(testHeader()))
	require.NoError(t, w.BeginFile("sub dir/ünïcode name", 3))
	require.NoError(t, w.WriteFragment([]byte("0123456789abcdef"), 0))
	require.NoError(t, w.WriteSum([]byte("fedcba9876543210")))
	require.NoError(t, w.Flush())

	doc, err := Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, testHeader(), doc.Header)
	require.Len(t, doc.Files, 1)
	require.Equal(t, "sub dir/ünïcode name", doc.Files[0].Name)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "wrong format line", text: strings.Replace(headerText, "2.1", "2.0", 1)},
		{name: "fields out of order", text: strings.Replace(headerText, "alg=", "algo=", 1)},
		{name: "zero fragment size", text: strings.Replace(headerText, "frag=4", "frag=0", 1)},
		{name: "leading zero", text: strings.Replace(headerText, "frag=4", "frag=04", 1)},
		{name: "missing separator", text: headerText + "name(1)=a\nsize=0\naa SUM\n"},
		{name: "name too short", text: headerText + "\nname(9)=a\nsize=0\naa SUM\n"},
		{name: "name too long", text: headerText + "\nname(1)=ab\nsize=0\naa SUM\n"},
		{name: "missing sum", text: headerText + "\nname(1)=a\nsize=1\naa 0\n"},
		{name: "skipped index", text: headerText + "\nname(1)=a\nsize=5\naa 0\nbb 2\ncc SUM\n"},
		{name: "too few fragments", text: headerText + "\nname(1)=a\nsize=5\naa 0\ncc SUM\n"},
		{name: "fragment for empty file", text: headerText + "\nname(1)=a\nsize=0\naa 0\ncc SUM\n"},
		{name: "uppercase hex", text: headerText + "\nname(1)=a\nsize=0\nAA SUM\n"},
		{name: "no trailing newline", text: headerText + "\nname(1)=a\nsize=0\naa SUM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformed), "error %v is not ErrMalformed", err)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	text := headerText + "\nname(1)=a\nsize=1\nzz 0\naa SUM\n"
	_, err := Parse(strings.NewReader(text))
	require.ErrorIs(t, err, ErrMalformed)
	require.Contains(t, err.Error(), "line 12")
}

func TestCompare(t *testing.T) {
	base := func() *Document {
		h := testHeader()
		return &Document{
			Header: h,
			Files: []FileBlock{
				{Name: "a", Size: 2, Fragments: []string{"01"}, Sum: "02"},
				{Name: "b", Size: 2, Fragments: []string{"03"}, Sum: "04"},
			},
		}
	}

	t.Run("identical except writer", func(t *testing.T) {
		got := base()
		got.Header.Writer = "fraghash@other"
		require.Empty(t, Compare(base(), got))
	})

	t.Run("changed content", func(t *testing.T) {
		got := base()
		got.Files[1].Fragments[0] = "ff"
		got.Files[1].Sum = "ee"
		require.Equal(t, []Mismatch{
			{Name: "b", Field: "fragment 0", Want: "03", Got: "ff"},
			{Name: "b", Field: "sum", Want: "04", Got: "ee"},
		}, Compare(base(), got))
	})

	t.Run("missing and unexpected files", func(t *testing.T) {
		got := base()
		got.Files[0].Name = "c"
		mismatches := Compare(base(), got)
		require.Equal(t, []Mismatch{
			{Name: "a", Field: "file", Want: "present", Got: "missing"},
			{Name: "c", Field: "file", Want: "absent", Got: "present"},
		}, mismatches)
	})

	t.Run("header and size", func(t *testing.T) {
		got := base()
		got.Header.Frag = 8
		got.Files[0].Size = 3
		got.Files[0].Fragments = append(got.Files[0].Fragments, "09")
		require.Equal(t, []Mismatch{
			{Field: "frag", Want: "1048576", Got: "8"},
			{Name: "a", Field: "size", Want: "2", Got: "3"},
			{Name: "a", Field: "fragments", Want: "1", Got: "2"},
		}, Compare(base(), got))
	})
}

func TestMismatchString(t *testing.T) {
	require.Equal(t, `header alg: want "x", got "y"`, Mismatch{Field: "alg", Want: "x", Got: "y"}.String())
	require.Equal(t, "f: sum: want aa, got bb", Mismatch{Name: "f", Field: "sum", Want: "aa", Got: "bb"}.String())
}
