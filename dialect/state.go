package dialect

import (
	"strings"

	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/dot"
	"github.com/martinemde/yumldot/notation"
)

// State composes state and activity diagrams. (start) and (end) are the
// pseudo-states; everything else is a rounded box:
//
//	(start)->(Find Products)->(end)
//	(Running)[Pause]->(Paused|do/wait)
//	(Paused)-(note: resumes on input)
type State struct{}

var stateGrammar = &grammar{
	name:     "state",
	openers:  "(",
	rankSep:  0.5,
	node:     stateNode,
	operator: stateOperator,
	connect:  connectChain,
}

func (State) Name() string    { return stateGrammar.name }
func (State) Openers() string { return stateGrammar.openers }

func (State) Compose(lines []string, opts Options) (string, error) {
	return stateGrammar.compose(lines, opts)
}

func stateNode(_ notation.Fragment, a notation.Annotation, _ Options) diagram.Node {
	if a.IsNote {
		return styledNode(diagram.KindNote, "note", plainLabel(a.Label), a)
	}

	switch a.Label {
	case "start":
		n := pseudoState("circle")
		n.Attrs.Style = "filled"
		n.Attrs.FillColor = "black"
		return n
	case "end":
		return pseudoState("doublecircle")
	}

	n := styledNode(diagram.KindRecord, "record", recordLabel(a.Label), a)
	n.Attrs.Label = "{" + n.Attrs.Label + "}"
	if n.Attrs.Style == "" {
		n.Attrs.Style = "rounded"
	} else {
		n.Attrs.Style = "rounded," + n.Attrs.Style
	}
	return n
}

func pseudoState(shape string) diagram.Node {
	return diagram.Node{
		Kind: diagram.KindRecord,
		Attrs: dot.NodeAttrs{
			Shape:  shape,
			Height: 0.3,
			Width:  0.3,
			Margin: "0,0",
			Label:  "",
		},
	}
}

func stateOperator(text string) (diagram.Operator, bool) {
	if text == "-" {
		return diagram.Operator{Kind: diagram.OpConnector, Style: diagram.Solid}, true
	}
	if label, ok := strings.CutSuffix(text, "->"); ok {
		return diagram.Operator{
			Kind:  diagram.OpFlow,
			Head:  diagram.ArrowVee,
			Label: strings.TrimSpace(label),
			Style: diagram.Solid,
		}, true
	}
	return diagram.Operator{}, false
}
