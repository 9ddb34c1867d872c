package dialect

import (
	"strings"

	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/notation"
)

// Class composes class diagrams:
//
//	[Customer]<>1-*>[Order]
//	[Customer]^[Premium Customer]
//	[Customer]uses-.->[PaymentStrategy]
//	[Customer|Forename;Surname|Save()]
//	[Student]*-*[Course][Enrollment]
type Class struct{}

var classGrammar = &grammar{
	name:     "class",
	openers:  "[",
	rankSep:  0.7,
	node:     classNode,
	operator: classOperator,
	connect:  connectClass,
}

func (Class) Name() string    { return classGrammar.name }
func (Class) Openers() string { return classGrammar.openers }

func (Class) Compose(lines []string, opts Options) (string, error) {
	return classGrammar.compose(lines, opts)
}

func classNode(_ notation.Fragment, a notation.Annotation, opts Options) diagram.Node {
	if a.IsNote {
		return styledNode(diagram.KindNote, "note", plainLabel(a.Label), a)
	}
	n := styledNode(diagram.KindRecord, "record", recordLabel(a.Label), a)
	if opts.Direction == "TB" {
		n.Attrs.Label = "{" + n.Attrs.Label + "}"
	}
	return n
}

// tailMarkers and headMarkers map arrow markers to shapes, longest first.
var tailMarkers = []struct {
	marker string
	arrow  diagram.Arrow
}{
	{"<>", diagram.ArrowODiamond},
	{"++", diagram.ArrowDiamond},
	{"+", diagram.ArrowODiamond},
	{"<", diagram.ArrowVee},
	{"^", diagram.ArrowEmpty},
}

var headMarkers = []struct {
	marker string
	arrow  diagram.Arrow
}{
	{"<>", diagram.ArrowODiamond},
	{"++", diagram.ArrowDiamond},
	{"+", diagram.ArrowODiamond},
	{">", diagram.ArrowVee},
	{"^", diagram.ArrowEmpty},
}

func classOperator(text string) (diagram.Operator, bool) {
	if text == "^" {
		return diagram.Operator{
			Kind:  diagram.OpInheritance,
			Tail:  diagram.ArrowEmpty,
			Head:  diagram.ArrowNone,
			Style: diagram.Solid,
		}, true
	}
	if !strings.Contains(text, "-") {
		return diagram.Operator{}, false
	}

	style, sep := diagram.Solid, "-"
	if strings.Contains(text, "-.-") {
		style, sep = diagram.Dashed, "-.-"
	}
	sides := strings.Split(text, sep)
	if len(sides) != 2 {
		return diagram.Operator{}, false
	}

	op := diagram.Operator{Kind: diagram.OpAssociation, Style: style}
	op.Tail, op.TailLabel = tailEnd(sides[0])
	op.Head, op.HeadLabel = headEnd(sides[1])
	return op, true
}

// tailEnd reads an arrow marker at the start of the left side of an
// association; the rest is the tail label.
func tailEnd(side string) (diagram.Arrow, string) {
	for _, m := range tailMarkers {
		if rest, ok := strings.CutPrefix(side, m.marker); ok {
			return m.arrow, strings.TrimSpace(rest)
		}
	}
	return diagram.ArrowNone, strings.TrimSpace(side)
}

// headEnd reads an arrow marker at the end of the right side. A side
// written with a leading marker is read like a tail.
func headEnd(side string) (diagram.Arrow, string) {
	for _, m := range headMarkers {
		if rest, ok := strings.CutSuffix(side, m.marker); ok {
			return m.arrow, strings.TrimSpace(rest)
		}
	}
	return tailEnd(side)
}

// connectClass accepts declarations, E op E, and the association class
// pattern E op E E.
func connectClass(b *diagram.Builder, line string, elems []element) error {
	if len(elems) == 5 && elems[1].op.Draws() && !elems[3].op.Draws() {
		return associationClass(b, line, elems[0], elems[1].op, elems[2], elems[4])
	}
	return connectPair(b, line, elems)
}

// associationClass splits the edge between from and to at an invisible
// junction and hangs assoc off the junction with a dashed arrow.
func associationClass(b *diagram.Builder, line string, from element, op diagram.Operator, to, assoc element) error {
	for _, el := range []element{from, to, assoc} {
		if el.kind != diagram.KindRecord {
			return &notation.ParseError{
				Line:    line,
				Token:   el.frag.String(),
				Message: "association class needs three classes",
			}
		}
	}

	j := b.Junction(from.id, to.id)
	edge := diagram.Normalize(op, diagram.KindRecord, diagram.KindRecord)

	tail := edge
	tail.From, tail.To = from.id, j
	tail.Head, tail.HeadLabel = diagram.ArrowNone, ""
	b.Connect(tail)

	head := edge
	head.From, head.To = j, to.id
	head.Tail, head.TailLabel = diagram.ArrowNone, ""
	b.Connect(head)

	b.Connect(diagram.Edge{
		From:     assoc.id,
		To:       j,
		Tail:     diagram.ArrowNone,
		Head:     diagram.ArrowVee,
		Style:    diagram.Dashed,
		SameRank: true,
	})
	return nil
}
