package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNodeAttrs(t *testing.T) {
	attrs := NodeAttrs{
		Shape:     "record",
		Height:    0.5,
		FontSize:  10,
		Margin:    "0.20,0.05",
		Label:     "Customer",
		Style:     "filled",
		FillColor: "orange",
	}
	assert.Equal(t,
		`[shape="record", height=0.5, fontsize=10, margin="0.20,0.05", label="Customer", style="filled", fillcolor="orange"]`,
		attrs.String())
}

func TestFormatAttrsKeepsEmptyLabel(t *testing.T) {
	attrs := NodeAttrs{Shape: "point", Style: "invis", Height: 0.01, Width: 0.01}
	assert.Equal(t, `[shape="point", height=0.01, width=0.01, label="", style="invis"]`, FormatAttrs(attrs))
}

func TestFormatEdgeAttrsSkipsUnset(t *testing.T) {
	attrs := EdgeAttrs{
		Dir:           "both",
		Style:         "solid",
		ArrowTail:     "odiamond",
		TailLabel:     "1",
		ArrowHead:     "vee",
		HeadLabel:     "*",
		LabelDistance: 2,
		FontSize:      10,
	}
	assert.Equal(t,
		`[dir="both", style="solid", arrowtail="odiamond", taillabel="1", arrowhead="vee", headlabel="*", labeldistance=2, fontsize=10]`,
		FormatAttrs(&attrs))

	assert.Equal(t, "[]", FormatAttrs(EdgeAttrs{}))
}

func TestFormatAttrsCustomStruct(t *testing.T) {
	type defaults struct {
		BgColor  string `dot:"bgcolor"`
		FontName string `dot:"fontname"`
		Margin   int    `dot:"margin,keep"`
		Internal string
		Skipped  string `dot:"-"`
		Fixed    bool   `dot:"fixedsize"`
	}
	got := FormatAttrs(defaults{BgColor: "transparent", FontName: "Helvetica", Internal: "x", Skipped: "y", Fixed: true})
	assert.Equal(t, `[bgcolor="transparent", fontname="Helvetica", margin=0, fixedsize=true]`, got)
}

func TestFormatAttrsPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() { FormatAttrs("label") })
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"two\nlines", `"two\nlines"`},
		{`already\nescaped`, `"already\nescaped"`},
		{`Customer\ Name|\{x\}`, `"Customer\ Name|\{x\}"`},
		{`keep \"this\"`, `"keep \"this\""`},
		{`trailing\`, `"trailing\\"`},
		{"crlf\r\n", `"crlf\n"`},
		{"<<extend>>", `"<<extend>>"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "input: %q", tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.7", FormatNumber(0.7))
	assert.Equal(t, "1", FormatNumber(1))
	assert.Equal(t, "0.01", FormatNumber(0.01))
}
