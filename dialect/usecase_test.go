package dialect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/yumldot/notation"
)

func TestUseCaseExtendScenario(t *testing.T) {
	out := compose(t, UseCase{}, "TB", "(Login)<(Forgot Password)")
	want := `    ranksep = 0.7
    rankdir = TB
    A0 [shape="ellipse", height=0.5, fontsize=10, margin="0.20,0.05", label="Login"]
    A1 [shape="ellipse", height=0.5, fontsize=10, margin="0.20,0.05", label="Forgot Password"]
    A0 -> A1 [dir="both", style="dashed", arrowtail="vee", arrowhead="none", label="<<extend>>", labeldistance=2, fontsize=10]
}
`
	assert.Equal(t, want, out)
	reparse(t, out)
}

func TestUseCaseInclude(t *testing.T) {
	g := reparse(t, compose(t, UseCase{}, "LR", "(Register)>(Confirm Email)"))
	require.Len(t, g.Edges, 1)
	e := g.Edges[0].Attrs
	assert.Equal(t, "none", attr(t, e, "arrowtail"))
	assert.Equal(t, "vee", attr(t, e, "arrowhead"))
	assert.Equal(t, "<<include>>", attr(t, e, "label"))
	assert.Equal(t, "dashed", attr(t, e, "style"))
}

func TestUseCaseActors(t *testing.T) {
	out := compose(t, UseCase{}, "LR",
		"[Customer{bg:red}]-(Login)",
		"[Admin]^[Customer]",
	)
	assert.Contains(t, statementLines(out),
		`A0 [shape="none", height=1, fontsize=10, margin="0.05,0.05", label="{img:actor} Customer"]`)
	assert.NotContains(t, out, "fillcolor")

	g := reparse(t, out)
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, "solid", attr(t, g.Edges[0].Attrs, "style"))
	_, hasLabel := g.Edges[0].Attr("label")
	assert.False(t, hasLabel, "plain association carries no label")

	inherit := g.Edges[1].Attrs
	assert.Equal(t, "empty", attr(t, inherit, "arrowhead"))
	assert.Equal(t, "solid", attr(t, inherit, "style"))
	assert.Equal(t, "A2", g.Edges[1].From)
	assert.Equal(t, "A0", g.Edges[1].To)
}

func TestUseCaseNoteAndWrap(t *testing.T) {
	out := compose(t, UseCase{}, "LR",
		"[Admin]-(note: Most privileged user)",
		"(Users can reset their password by email)",
	)
	lines := statementLines(out)
	assert.Contains(t, lines,
		`A1 [shape="note", height=0.5, fontsize=10, margin="0.20,0.05", label="Most privileged user"]`)
	assert.Contains(t, lines,
		`A2 [shape="ellipse", height=0.5, fontsize=10, margin="0.20,0.05", label="Users can reset\ntheir password by\nemail"]`)
	assert.Contains(t, lines,
		`{ rank=same; A0 -> A1 [dir="both", style="dashed", arrowtail="none", arrowhead="none", labeldistance=2, fontsize=10]; }`)
	reparse(t, out)
}

func TestUseCaseErrors(t *testing.T) {
	tests := []struct {
		line  string
		token string
	}{
		{"(A)~(B)", "~"},
		{"(A)->(B)", "->"},
		{"(A)<(B)<(C)", "<"},
		{"(A)-(B)(C)", "(C)"},
	}
	for _, tt := range tests {
		_, err := UseCase{}.Compose([]string{tt.line}, Options{Direction: "LR"})
		var pe *notation.ParseError
		require.True(t, errors.As(err, &pe), "line: %s", tt.line)
		assert.Equal(t, tt.token, pe.Token, "line: %s", tt.line)
	}
}
