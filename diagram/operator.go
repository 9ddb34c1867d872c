package diagram

import "fmt"

// OpKind is the closed set of operator variants across all dialects.
type OpKind int

const (
	// OpNone is an empty gap between two entities. It draws nothing.
	OpNone OpKind = iota
	OpInheritance
	OpAssociation
	OpFlow
	OpConnector
	OpLink
	OpDependency
	OpInclude
	OpExtend
)

var opKindNames = map[OpKind]string{
	OpNone:        "none",
	OpInheritance: "inheritance",
	OpAssociation: "association",
	OpFlow:        "flow",
	OpConnector:   "connector",
	OpLink:        "link",
	OpDependency:  "dependency",
	OpInclude:     "include",
	OpExtend:      "extend",
}

func (k OpKind) String() string {
	if name, ok := opKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Operator is a parsed operator string. Dialects fill in the fields their
// variant uses; unset arrows and styles are defaulted by Normalize.
type Operator struct {
	Kind      OpKind
	Tail      Arrow
	Head      Arrow
	TailLabel string
	HeadLabel string
	Label     string
	Style     LineStyle
}

// Draws reports whether the operator produces an edge.
func (op Operator) Draws() bool { return op.Kind != OpNone }

// Normalize turns an operator between nodes of the given kinds into an
// edge description, applying the rules shared by every dialect: an edge
// touching a note is dashed and kept on the note's rank, and inheritance
// is always solid. From and To are left for the caller.
func Normalize(op Operator, from, to Kind) Edge {
	e := Edge{
		Tail:      op.Tail,
		Head:      op.Head,
		TailLabel: op.TailLabel,
		HeadLabel: op.HeadLabel,
		Label:     op.Label,
		Style:     op.Style,
		FontSize:  DefaultFontSize,
	}
	if e.Tail == "" {
		e.Tail = ArrowNone
	}
	if e.Head == "" {
		e.Head = ArrowNone
	}
	if e.Style == "" {
		e.Style = Solid
	}
	if from == KindNote || to == KindNote {
		e.Style = Dashed
		e.SameRank = true
	}
	if op.Kind == OpInheritance {
		e.Style = Solid
	}
	return e
}
