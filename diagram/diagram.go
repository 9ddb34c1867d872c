package diagram

import (
	"io"
	"strings"

	"github.com/martinemde/yumldot/dot"
)

// Diagram is a finished node and edge list ready to be written as the body
// of a digraph block.
type Diagram struct {
	RankSep   float64
	Direction string
	Nodes     []*Node
	Edges     []Edge
}

// WriteTo writes the diagram body: rank separation, direction, every node
// in first-seen order, every edge in encounter order and the closing brace.
func (d *Diagram) WriteTo(w io.Writer) (int64, error) {
	dw := dot.NewWriter(w)
	dw.Attr("ranksep", dot.FormatNumber(d.RankSep))
	dw.Attr("rankdir", d.Direction)
	for _, n := range d.Nodes {
		dw.Node(n.ID, n.Attrs)
	}
	for _, e := range d.Edges {
		dw.Edge(e.From, e.To, e.Attrs(), e.SameRank)
	}
	err := dw.Close()
	return dw.Written(), err
}

func (d *Diagram) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}
