package scan

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idsSrc = `package ids

import "github.com/Lzww0608/uuidlit"

var (
	a = uuidlit.MustParse("67e55044-10b1-426f-9247-bb680e5fe0c8")
	b = uuidlit.MustParse(` + "`{67e55044-10b1-426f-9247-bb680e5fe0c8}`" + `)
	c = uuidlit.TryParse("ignored")
	d = MustParse("67e5504X-10b1-426f-9247-bb680e5fe0c8")
	e = uuidlit.MustParse(name)
	f = uuidlit.MustParse(name) //uuidlit:literal
	g = other.pkg.MustParse("not matched")
)

var name = "x"
`

func parseSrc(t *testing.T, src string) (*token.FileSet, []Literal) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "ids.go", src, parser.ParseComments)
	require.NoError(t, err)
	return fset, Literals(fset, file, []byte(src), []string{"uuidlit.MustParse", "MustParse"})
}

func TestLiterals(t *testing.T) {
	_, lits := parseSrc(t, idsSrc)
	require.Len(t, lits, 4)

	assert.Equal(t, "uuidlit.MustParse", lits[0].Func)
	assert.Equal(t, `"67e55044-10b1-426f-9247-bb680e5fe0c8"`, lits[0].Raw)
	assert.Equal(t, "67e55044-10b1-426f-9247-bb680e5fe0c8", lits[0].Value)
	assert.Equal(t, 6, lits[0].Pos.Line)
	assert.Equal(t, 24, lits[0].Pos.Column)
	assert.NoError(t, lits[0].Err)

	assert.Equal(t, "`{67e55044-10b1-426f-9247-bb680e5fe0c8}`", lits[1].Raw)
	assert.Equal(t, "{67e55044-10b1-426f-9247-bb680e5fe0c8}", lits[1].Value)

	assert.Equal(t, "MustParse", lits[2].Func)
	assert.Equal(t, "67e5504X-10b1-426f-9247-bb680e5fe0c8", lits[2].Value)

	assert.Equal(t, 11, lits[3].Pos.Line)
	assert.Equal(t, "name", lits[3].Raw)
	assert.ErrorIs(t, lits[3].Err, ErrNotStringLiteral)
	assert.Empty(t, lits[3].Value)
}

func TestLiterals_NoCalls(t *testing.T) {
	_, lits := parseSrc(t, "package ids\n\nfunc f() { println(\"hi\") }\n")
	assert.Empty(t, lits)
}

func TestCalleeName(t *testing.T) {
	fset := token.NewFileSet()
	tests := []struct {
		expr string
		want string
	}{
		{"MustParse", "MustParse"},
		{"uuidlit.MustParse", "uuidlit.MustParse"},
		{"a.b.MustParse", ""},
		{"f()", ""},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := parser.ParseExprFrom(fset, "", tt.expr, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, calleeName(e))
		})
	}
}
