// Package diag turns uuidlit parse errors into diagnostics located in Go
// source text.
package diag

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Lzww0608/uuidlit"
)

// Diagnostic is a located, rendered problem with a UUID literal.
type Diagnostic struct {
	Pos     token.Position // start of the highlighted text
	Length  int            // highlighted bytes
	Message string
}

// New builds the diagnostic for err, raised while parsing the string literal
// whose token text is raw and which starts at lit.
func New(lit token.Position, raw string, err error) Diagnostic {
	offset, length := 0, len(raw)
	var perr *uuidlit.ParseError
	if errors.As(err, &perr) {
		offset, length = Locate(raw, perr)
	}
	return Diagnostic{
		Pos:     advance(lit, raw[:offset]),
		Length:  length,
		Message: err.Error(),
	}
}

// String formats the diagnostic as file:line:column: message
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Render writes the diagnostic followed by the source line and an underline
// beneath the highlighted text.
func (d Diagnostic) Render(w io.Writer, line string) error {
	col := d.Pos.Column - 1
	if col < 0 || col > len(line) {
		_, err := fmt.Fprintln(w, d.String())
		return err
	}

	end := col + d.Length
	if end > len(line) {
		end = len(line)
	}
	width := utf8.RuneCountInString(line[col:end])
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(d.String())
	b.WriteString("\n\t")
	b.WriteString(line)
	b.WriteString("\n\t")
	for _, r := range line[:col] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", width-1))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Locate maps perr onto raw, the token text of the Go string literal that
// was parsed, quotes included. It returns the byte offset and byte length of
// the text to highlight. Character and group errors are narrowed to the
// offending characters; everything else, and any literal whose source text
// differs from its value because of escapes, highlights the whole token.
func Locate(raw string, perr *uuidlit.ParseError) (offset, length int) {
	whole := len(raw)
	if perr == nil {
		return 0, whole
	}
	switch perr.Kind {
	case uuidlit.KindChar, uuidlit.KindGroupLength:
	default:
		return 0, whole
	}

	body, ok := literalBody(raw)
	if !ok {
		return 0, whole
	}
	start, n := perr.Span()
	from, to, ok := byteRange(body, start, n)
	if !ok {
		return 0, whole
	}
	// +1 skips the opening quote
	return 1 + from, to - from
}

// literalBody returns the text between the quotes of raw if it reads the
// same as the literal's value.
func literalBody(raw string) (string, bool) {
	value, err := strconv.Unquote(raw)
	if err != nil {
		return "", false
	}
	body := raw[1 : len(raw)-1]
	if body != value {
		return "", false
	}
	return body, true
}

// byteRange converts the character range [start, start+n) of s to bytes.
func byteRange(s string, start, n int) (from, to int, ok bool) {
	from, to = -1, -1
	i := 0
	for off := range s {
		if i == start {
			from = off
		}
		if i == start+n {
			to = off
		}
		i++
	}
	if i == start {
		from = len(s)
	}
	if i == start+n {
		to = len(s)
	}
	return from, to, from >= 0 && to >= from
}

// advance moves pos forward over text.
func advance(pos token.Position, text string) token.Position {
	for i := 0; i < len(text); i++ {
		pos.Offset++
		if text[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// Line returns the source line containing the byte at offset.
func Line(src []byte, offset int) string {
	if offset < 0 || offset > len(src) {
		return ""
	}
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return strings.TrimSuffix(string(src[start:end]), "\r")
}

// Expr renders u as the Go expression a literal stands for.
func Expr(u uuidlit.UUID) string {
	var b strings.Builder
	b.WriteString("[16]byte{")
	for i, c := range u {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", c)
	}
	b.WriteByte('}')
	return b.String()
}
