package manifest

import (
	"fmt"
	"strconv"
)

// Mismatch describes one difference between two manifests. Name is empty
// for header fields.
type Mismatch struct {
	Name  string
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	if m.Name == "" {
		return fmt.Sprintf("header %s: want %q, got %q", m.Field, m.Want, m.Got)
	}
	return fmt.Sprintf("%s: %s: want %s, got %s", m.Name, m.Field, m.Want, m.Got)
}

// Compare lists the differences between want and got. The writer field is
// ignored; everything else in the header and every file block must match.
// Files are matched by name.
func Compare(want, got *Document) []Mismatch {
	var out []Mismatch

	header := func(field, w, g string) {
		if w != g {
			out = append(out, Mismatch{Field: field, Want: w, Got: g})
		}
	}
	header("alg", want.Header.Alg, got.Header.Alg)
	header("custom", want.Header.Custom, got.Header.Custom)
	header("sum_alg", want.Header.SumAlg, got.Header.SumAlg)
	header("sum_custom", want.Header.SumCustom, got.Header.SumCustom)
	header("frag", strconv.FormatUint(want.Header.Frag, 10), strconv.FormatUint(got.Header.Frag, 10))

	gotFiles := make(map[string]*FileBlock, len(got.Files))
	for i := range got.Files {
		gotFiles[got.Files[i].Name] = &got.Files[i]
	}

	seen := make(map[string]bool, len(want.Files))
	for i := range want.Files {
		w := &want.Files[i]
		seen[w.Name] = true
		g, ok := gotFiles[w.Name]
		if !ok {
			out = append(out, Mismatch{Name: w.Name, Field: "file", Want: "present", Got: "missing"})
			continue
		}
		out = append(out, compareFile(w, g)...)
	}
	for i := range got.Files {
		if !seen[got.Files[i].Name] {
			out = append(out, Mismatch{Name: got.Files[i].Name, Field: "file", Want: "absent", Got: "present"})
		}
	}
	return out
}

func compareFile(w, g *FileBlock) []Mismatch {
	var out []Mismatch
	if w.Size != g.Size {
		out = append(out, Mismatch{
			Name: w.Name, Field: "size",
			Want: strconv.FormatUint(w.Size, 10), Got: strconv.FormatUint(g.Size, 10),
		})
	}
	if len(w.Fragments) != len(g.Fragments) {
		out = append(out, Mismatch{
			Name: w.Name, Field: "fragments",
			Want: strconv.Itoa(len(w.Fragments)), Got: strconv.Itoa(len(g.Fragments)),
		})
	}
	for i := 0; i < min(len(w.Fragments), len(g.Fragments)); i++ {
		if w.Fragments[i] != g.Fragments[i] {
			out = append(out, Mismatch{
				Name: w.Name, Field: "fragment " + strconv.Itoa(i),
				Want: w.Fragments[i], Got: g.Fragments[i],
			})
		}
	}
	if w.Sum != g.Sum {
		out = append(out, Mismatch{Name: w.Name, Field: "sum", Want: w.Sum, Got: g.Sum})
	}
	return out
}
