package diagram

import (
	"fmt"

	"github.com/martinemde/yumldot/dot"
)

// Kind classifies a node independently of the shape it is drawn with.
type Kind int

const (
	KindRecord Kind = iota
	KindNote
	KindBox3D
	KindTab
	KindActor
	KindJunction
)

var kindNames = map[Kind]string{
	KindRecord:   "record",
	KindNote:     "note",
	KindBox3D:    "box3d",
	KindTab:      "tab",
	KindActor:    "actor",
	KindJunction: "junction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arrow is an arrow shape at one end of an edge.
type Arrow string

const (
	ArrowNone     Arrow = "none"
	ArrowVee      Arrow = "vee"
	ArrowEmpty    Arrow = "empty"
	ArrowODiamond Arrow = "odiamond"
	ArrowDiamond  Arrow = "diamond"
)

// LineStyle is the stroke of an edge.
type LineStyle string

const (
	Solid  LineStyle = "solid"
	Dashed LineStyle = "dashed"
)

// Node is one resolved entity. Key is the identity key it was registered
// under; Attrs is what gets written to the node statement.
type Node struct {
	ID         string
	Key        string
	Kind       Kind
	Label      string
	Background string
	FontColor  string
	Attrs      dot.NodeAttrs
}

// DefaultFontSize is the font size of node and edge text.
const DefaultFontSize = 10

// LabelDistance is the distance of head and tail labels from the edge end.
const LabelDistance = 2

// Edge connects two registered node ids.
type Edge struct {
	From      string
	To        string
	Tail      Arrow
	Head      Arrow
	TailLabel string
	HeadLabel string
	Label     string
	Style     LineStyle
	SameRank  bool // emit inside a { rank=same; ... } block
	FontSize  int  // zero omits the attribute
}

// Attrs returns the edge statement attributes. Edges are always drawn with
// dir=both so that both arrow ends are honored.
func (e Edge) Attrs() dot.EdgeAttrs {
	return dot.EdgeAttrs{
		Dir:           "both",
		Style:         string(e.Style),
		ArrowTail:     string(e.Tail),
		TailLabel:     e.TailLabel,
		ArrowHead:     string(e.Head),
		HeadLabel:     e.HeadLabel,
		Label:         e.Label,
		LabelDistance: LabelDistance,
		FontSize:      e.FontSize,
	}
}
