package diag

import (
	"errors"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/uuidlit"
)

func parseErr(t *testing.T, value string) *uuidlit.ParseError {
	t.Helper()
	_, err := uuidlit.TryParse(value)
	var perr *uuidlit.ParseError
	require.True(t, errors.As(err, &perr), "TryParse(%q) = %v", value, err)
	return perr
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantOffset int
		wantLength int
	}{
		{
			name:       "character",
			raw:        `"67e5504X-10b1-426f-9247-bb680e5fe0c8"`,
			wantOffset: 8,
			wantLength: 1,
		},
		{
			name:       "multi-byte character",
			raw:        `"67e5504é-10b1-426f-9247-bb680e5fe0c8"`,
			wantOffset: 8,
			wantLength: 2,
		},
		{
			name:       "group length",
			raw:        `"67e55044-10b-1426f-9247-bb680e5fe0c8"`,
			wantOffset: 10,
			wantLength: 3,
		},
		{
			name:       "group with multi-byte character",
			raw:        `"6é-10b1-426f-9247-bb680e5fe0c8"`,
			wantOffset: 1,
			wantLength: 3,
		},
		{
			name:       "raw string",
			raw:        "`67e55044-10b-1426f-9247-bb680e5fe0c8`",
			wantOffset: 10,
			wantLength: 3,
		},
		{
			name:       "braced",
			raw:        `"{67e55044-10b1-426f-9247-bb680e5fe0cZ}"`,
			wantOffset: 37,
			wantLength: 1,
		},
		{
			name:       "escaped literal highlights whole token",
			raw:        `"67e5504\x58-10b1-426f-9247-bb680e5fe0c8"`,
			wantOffset: 0,
			wantLength: 41,
		},
		{
			name:       "group count highlights whole token",
			raw:        `"67e55044-10b1-426f-9247-bb680e5fe0c8-extra"`,
			wantOffset: 0,
			wantLength: 44,
		},
		{
			name:       "length highlights whole token",
			raw:        `""`,
			wantOffset: 0,
			wantLength: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := literalBody(tt.raw)
			if !ok {
				// escaped literals are parsed by value, not by source text
				value = strings.ReplaceAll(tt.raw[1:len(tt.raw)-1], `\x58`, "X")
			}
			offset, length := Locate(tt.raw, parseErr(t, value))
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLength, length)
		})
	}

	offset, length := Locate(`"abc"`, nil)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 5, length)
}

func TestNew(t *testing.T) {
	lit := token.Position{Filename: "ids.go", Offset: 100, Line: 3, Column: 20}
	raw := `"67e5504X-10b1-426f-9247-bb680e5fe0c8"`

	d := New(lit, raw, parseErr(t, raw[1:len(raw)-1]))
	assert.Equal(t, token.Position{Filename: "ids.go", Offset: 108, Line: 3, Column: 28}, d.Pos)
	assert.Equal(t, 1, d.Length)
	assert.Equal(t, "ids.go:3:28: invalid character: expected an ASCII hex digit, found X, at 7", d.String())
}

func TestNew_OtherError(t *testing.T) {
	lit := token.Position{Filename: "ids.go", Offset: 10, Line: 1, Column: 11}
	d := New(lit, "id", errors.New("expected string literal"))
	assert.Equal(t, lit, d.Pos)
	assert.Equal(t, 2, d.Length)
	assert.Equal(t, "ids.go:1:11: expected string literal", d.String())
}

func TestAdvance(t *testing.T) {
	pos := token.Position{Filename: "ids.go", Offset: 4, Line: 1, Column: 5}
	got := advance(pos, "`\nab")
	assert.Equal(t, token.Position{Filename: "ids.go", Offset: 8, Line: 2, Column: 3}, got)
}

func TestDiagnostic_Render(t *testing.T) {
	line := `var id = uuidlit.MustParse("67e55044-10b-1426f-9247-bb680e5fe0c8")`
	q := strings.Index(line, `"`)
	raw := line[q : strings.LastIndex(line, `"`)+1]
	lit := token.Position{Filename: "ids.go", Offset: q, Line: 1, Column: q + 1}

	d := New(lit, raw, parseErr(t, raw[1:len(raw)-1]))

	var b strings.Builder
	require.NoError(t, d.Render(&b, line))
	want := d.String() + "\n\t" + line + "\n\t" + strings.Repeat(" ", q+10) + "^~~\n"
	assert.Equal(t, want, b.String())
}

func TestDiagnostic_RenderKeepsTabs(t *testing.T) {
	line := "\tid := MustParse(\"67e5504X-10b1-426f-9247-bb680e5fe0c8\")"
	q := strings.Index(line, `"`)
	d := Diagnostic{Pos: token.Position{Line: 1, Column: q + 9}, Length: 1, Message: "bad"}

	var b strings.Builder
	require.NoError(t, d.Render(&b, line))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "\t\t"+strings.Repeat(" ", q+7)+"^", lines[2])
}

func TestDiagnostic_RenderOutsideLine(t *testing.T) {
	d := Diagnostic{Pos: token.Position{Filename: "a.go", Line: 1, Column: 50}, Message: "bad"}

	var b strings.Builder
	require.NoError(t, d.Render(&b, "short"))
	assert.Equal(t, "a.go:1:50: bad\n", b.String())
}

func TestLine(t *testing.T) {
	src := []byte("package ids\r\n\nvar a = 1\nvar b = 2")
	assert.Equal(t, "package ids", Line(src, 3))
	assert.Equal(t, "", Line(src, 13))
	assert.Equal(t, "var a = 1", Line(src, 18))
	assert.Equal(t, "var b = 2", Line(src, len(src)))
	assert.Equal(t, "", Line(src, -1))
}

func TestExpr(t *testing.T) {
	u := uuidlit.MustParse("67e55044-10b1-426f-9247-bb680e5fe0c8")
	assert.Equal(t,
		"[16]byte{0x67, 0xe5, 0x50, 0x44, 0x10, 0xb1, 0x42, 0x6f, 0x92, 0x47, 0xbb, 0x68, 0x0e, 0x5f, 0xe0, 0xc8}",
		Expr(u),
	)
}
