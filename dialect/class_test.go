package dialect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/yumldot/notation"
)

func TestClassAggregationScenario(t *testing.T) {
	out := compose(t, Class{}, "LR", "[Customer]<>1-*>[Order]")

	want := `    ranksep = 0.7
    rankdir = LR
    A0 [shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="Customer"]
    A1 [shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="Order"]
    A0 -> A1 [dir="both", style="solid", arrowtail="odiamond", taillabel="1", arrowhead="vee", headlabel="*", labeldistance=2, fontsize=10]
}
`
	assert.Equal(t, want, out)
	reparse(t, out)
}

func TestClassRecordLabelTopDown(t *testing.T) {
	out := compose(t, Class{}, "TB", "[Customer|Forename;Surname;Email|Save()]")
	assert.Contains(t, out, `label="{Customer|Forename\nSurname\nEmail|Save()}"`)

	g := reparse(t, out)
	label := attr(t, g.NodeByID("A0").Attrs, "label")
	assert.Equal(t, "{Customer|Forename\nSurname\nEmail|Save()}", label)
}

func TestClassOperators(t *testing.T) {
	tests := []struct {
		op        string
		tail      string
		tailLabel string
		head      string
		headLabel string
		style     string
	}{
		{"->", "none", "", "vee", "", "solid"},
		{"<->", "vee", "", "vee", "", "solid"},
		{"-", "none", "", "none", "", "solid"},
		{"+-", "odiamond", "", "none", "", "solid"},
		{"<>-", "odiamond", "", "none", "", "solid"},
		{"++-", "diamond", "", "none", "", "solid"},
		{"-++", "none", "", "diamond", "", "solid"},
		{"uses-.->", "none", "uses", "vee", "", "dashed"},
		{"<1-1..2>", "vee", "1", "vee", "1..2", "solid"},
		{"customer-billingAddress", "none", "customer", "none", "billingAddress", "solid"},
		{"^-", "empty", "", "none", "", "solid"},
		{"-^", "none", "", "empty", "", "solid"},
		{"^", "empty", "", "none", "", "solid"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			g := reparse(t, compose(t, Class{}, "LR", "[A]"+tt.op+"[B]"))
			require.Len(t, g.Edges, 1)
			e := g.Edges[0].Attrs
			assert.Equal(t, tt.tail, attr(t, e, "arrowtail"))
			assert.Equal(t, tt.head, attr(t, e, "arrowhead"))
			assert.Equal(t, tt.style, attr(t, e, "style"))
			tl, _ := e.Get("taillabel")
			assert.Equal(t, tt.tailLabel, tl.Str)
			hl, _ := e.Get("headlabel")
			assert.Equal(t, tt.headLabel, hl.Str)
		})
	}
}

func TestClassDedupFirstOccurrenceWins(t *testing.T) {
	out := compose(t, Class{}, "LR",
		"[Customer{bg:orange}]->[Order]",
		"[Customer{bg:green}]-[Address]",
		"[Customer|name]",
	)
	g := reparse(t, out)
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, "orange", attr(t, g.NodeByID("A0").Attrs, "fillcolor"))
	assert.NotContains(t, out, "green")
	assert.Len(t, g.EdgesFrom("A0"), 2)
}

func TestClassNoteForcesDashed(t *testing.T) {
	out := compose(t, Class{}, "LR",
		"[Person]-[Address]",
		"[Address]->[note: Value Object]",
	)
	lines := statementLines(out)
	assert.Contains(t, lines,
		`{ rank=same; A1 -> A2 [dir="both", style="dashed", arrowtail="none", arrowhead="vee", labeldistance=2, fontsize=10]; }`)
	assert.Contains(t, lines, `A2 [shape="note", height=0.5, fontsize=10, margin="0.20,0.05", label="Value Object"]`)

	g := reparse(t, out)
	assert.Equal(t, "solid", attr(t, g.EdgesFrom("A0")[0].Attrs, "style"))
	require.Len(t, g.Subgraphs, 1)
}

func TestClassInheritanceNeverDashed(t *testing.T) {
	g := reparse(t, compose(t, Class{}, "TB", "[note: abstract]^[Shape]"))
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "solid", attr(t, g.Edges[0].Attrs, "style"))
	assert.Equal(t, "empty", attr(t, g.Edges[0].Attrs, "arrowtail"))
}

func TestClassAssociationClass(t *testing.T) {
	out := compose(t, Class{}, "TB", "[Student]*-*[Course][Enrollment]")
	lines := statementLines(out)
	assert.Equal(t, []string{
		"ranksep = 0.7",
		"rankdir = TB",
		`A0 [shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="{Student}"]`,
		`A1 [shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="{Course}"]`,
		`A2 [shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="{Enrollment}"]`,
		`A0JA1 [shape="point", height=0.01, width=0.01, label="", style="invis"]`,
		`A0 -> A0JA1 [dir="both", style="solid", arrowtail="none", taillabel="*", arrowhead="none", labeldistance=2, fontsize=10]`,
		`A0JA1 -> A1 [dir="both", style="solid", arrowtail="none", arrowhead="none", headlabel="*", labeldistance=2, fontsize=10]`,
		`{ rank=same; A2 -> A0JA1 [dir="both", style="dashed", arrowtail="none", arrowhead="vee", labeldistance=2]; }`,
		"}",
	}, lines)
	reparse(t, out)
}

func TestClassAssociationClassReusesJunction(t *testing.T) {
	g := reparse(t, compose(t, Class{}, "LR",
		"[Student]-[Course][Enrollment]",
		"[Student]-[Course][Grade]",
	))
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Edges, 6)
}

func TestClassDeclarationsOnly(t *testing.T) {
	g := reparse(t, compose(t, Class{}, "LR", "[A][B][C]", "", "[A]"))
	assert.Len(t, g.Nodes, 3)
	assert.Empty(t, g.Edges)
}

func TestClassContrastFontColor(t *testing.T) {
	g := reparse(t, compose(t, Class{}, "LR",
		"[Dark{bg:black}]",
		"[Light{bg:yellow}]",
		"[Mid{bg:orange}]",
		"[Custom{bg:black;fg:red}]",
	))
	assert.Equal(t, "white", attr(t, g.NodeByID("A0").Attrs, "fontcolor"))
	assert.Equal(t, "black", attr(t, g.NodeByID("A1").Attrs, "fontcolor"))
	_, ok := g.NodeByID("A2").Attr("fontcolor")
	assert.False(t, ok)
	assert.Equal(t, "red", attr(t, g.NodeByID("A3").Attrs, "fontcolor"))
}

func TestClassErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		token string
	}{
		{"unknown operator", "[Customer]~[Order]", "~"},
		{"too many sides", "[A]--[B]", "--"},
		{"second edge", "[A]-[B]-[C]", "-"},
		{"leading operator", "-[A]", "-"},
		{"trailing operator", "[A]-[B]-", "-"},
		{"association with note", "[A]-[B][note: x]", "[note: x]"},
		{"unbalanced", "[A]-[B", ""},
		{"unterminated directive", "[A{bg:red]", "{bg:red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Class{}.Compose([]string{"[Ok]", tt.line}, Options{Direction: "TB"})
			require.Error(t, err)
			assert.Empty(t, out)

			var pe *notation.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			if tt.token != "" {
				assert.Equal(t, tt.token, pe.Token)
			}
		})
	}
}
