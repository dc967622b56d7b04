package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FileBlock is one parsed file block.
type FileBlock struct {
	Name      string
	Size      uint64
	Fragments []string
	Sum       string
}

// Document is a parsed manifest.
type Document struct {
	Header Header
	Files  []FileBlock
}

// Parse reads a complete manifest from r. Besides the layout it checks
// that fragment indexes count up from zero and that each file has exactly
// as many fragments as its size and the header's fragment size imply.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{r: bufio.NewReader(r)}
	doc := &Document{}
	if err := p.header(&doc.Header); err != nil {
		return nil, err
	}

	for {
		sep, err := p.next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		if sep != "" {
			return nil, p.errorf("expected empty line before file block, got %q", sep)
		}
		fb, err := p.file(doc.Header.Frag)
		if err != nil {
			return nil, err
		}
		doc.Files = append(doc.Files, fb)
	}
}

// maxNameLen bounds the declared name length accepted by Parse.
const maxNameLen = 1 << 16

type parser struct {
	r    *bufio.Reader
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(format, args...))
}

// next returns the next line without its terminator, or io.EOF at a clean
// end of input.
func (p *parser) next() (string, error) {
	s, err := p.r.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", io.EOF
		}
		p.line++
		return "", p.errorf("missing line feed at end of input")
	}
	if err != nil {
		return "", err
	}
	p.line++
	return s[:len(s)-1], nil
}

func (p *parser) mustNext() (string, error) {
	s, err := p.next()
	if err == io.EOF {
		return "", p.errorf("unexpected end of input")
	}
	return s, err
}

func (p *parser) expect(want string) error {
	s, err := p.mustNext()
	if err != nil {
		return err
	}
	if s != want {
		return p.errorf("expected %q, got %q", want, s)
	}
	return nil
}

func (p *parser) field(key string) (string, error) {
	s, err := p.mustNext()
	if err != nil {
		return "", err
	}
	v, ok := strings.CutPrefix(s, key+"=")
	if !ok {
		return "", p.errorf("expected %s field, got %q", key, s)
	}
	return v, nil
}

func (p *parser) numField(key string) (uint64, error) {
	v, err := p.field(key)
	if err != nil {
		return 0, err
	}
	n, ok := parseDecimal(v)
	if !ok {
		return 0, p.errorf("invalid %s value %q", key, v)
	}
	return n, nil
}

func (p *parser) header(h *Header) error {
	if err := p.expect(FormatLine); err != nil {
		return err
	}
	if err := p.expect(""); err != nil {
		return err
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"writer", &h.Writer},
		{"alg", &h.Alg},
		{"custom", &h.Custom},
		{"sum_alg", &h.SumAlg},
		{"sum_custom", &h.SumCustom},
	}
	for _, f := range fields {
		v, err := p.field(f.key)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	frag, err := p.numField("frag")
	if err != nil {
		return err
	}
	if frag == 0 {
		return p.errorf("fragment size is zero")
	}
	h.Frag = frag
	return nil
}

func (p *parser) file(frag uint64) (FileBlock, error) {
	var fb FileBlock

	name, err := p.name()
	if err != nil {
		return fb, err
	}
	fb.Name = name

	if fb.Size, err = p.numField("size"); err != nil {
		return fb, err
	}

	for {
		s, err := p.mustNext()
		if err != nil {
			return fb, err
		}
		digest, tag, ok := strings.Cut(s, " ")
		if !ok || !isHexDigest(digest) {
			return fb, p.errorf("expected hash line, got %q", s)
		}
		if tag == "SUM" {
			fb.Sum = digest
			break
		}
		index, ok := parseDecimal(tag)
		if !ok || index != uint64(len(fb.Fragments)) {
			return fb, p.errorf("expected fragment %d, got %q", len(fb.Fragments), tag)
		}
		fb.Fragments = append(fb.Fragments, digest)
	}

	want := fb.Size / frag
	if fb.Size%frag != 0 {
		want++
	}
	if uint64(len(fb.Fragments)) != want {
		return fb, p.errorf("%q has %d fragments, size %d needs %d", fb.Name, len(fb.Fragments), fb.Size, want)
	}
	return fb, nil
}

// name reads a "name(<len>)=<name>" line. The name is taken by length, not
// by scanning for the line end.
func (p *parser) name() (string, error) {
	line := p.line + 1
	prefix, err := p.r.ReadString(')')
	if err != nil {
		p.line = line
		if err == io.EOF {
			return "", p.errorf("unexpected end of input")
		}
		return "", err
	}
	digits, ok := strings.CutPrefix(prefix[:len(prefix)-1], "name(")
	n, valid := parseDecimal(digits)
	if !ok || !valid {
		p.line = line
		return "", p.errorf("expected name field, got %q", prefix)
	}
	if n > maxNameLen {
		p.line = line
		return "", p.errorf("name length %d exceeds %d bytes", n, maxNameLen)
	}

	buf := make([]byte, n+2)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		p.line = line
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", p.errorf("name shorter than declared %d bytes", n)
		}
		return "", err
	}
	p.line = line
	if buf[0] != '=' || buf[len(buf)-1] != '\n' {
		return "", p.errorf("name length %d does not match name line", n)
	}
	name := string(buf[1 : len(buf)-1])
	if err := ValidateName(name); err != nil {
		return "", p.errorf("%v", err)
	}
	return name, nil
}

// parseDecimal accepts canonical decimal numbers only: digits, no sign and
// no leading zeros.
func parseDecimal(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}

func isHexDigest(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
