package dialect

import (
	"strings"

	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/notation"
)

// Deployment composes deployment diagrams of box3d nodes joined by
// optionally labeled links: [Web]https-[App]jdbc-[Database].
type Deployment struct{}

var deploymentGrammar = &grammar{
	name:     "deployment",
	openers:  "[",
	rankSep:  0.5,
	node:     deploymentNode,
	operator: deploymentOperator,
	connect:  connectChain,
}

func (Deployment) Name() string    { return deploymentGrammar.name }
func (Deployment) Openers() string { return deploymentGrammar.openers }

func (Deployment) Compose(lines []string, opts Options) (string, error) {
	return deploymentGrammar.compose(lines, opts)
}

func deploymentNode(_ notation.Fragment, a notation.Annotation, _ Options) diagram.Node {
	if a.IsNote {
		return styledNode(diagram.KindNote, "note", plainLabel(a.Label), a)
	}
	return styledNode(diagram.KindBox3D, "box3d", plainLabel(a.Label), a)
}

func deploymentOperator(text string) (diagram.Operator, bool) {
	label, ok := strings.CutSuffix(text, "-")
	if !ok {
		return diagram.Operator{}, false
	}
	return diagram.Operator{
		Kind:  diagram.OpLink,
		Label: strings.TrimSpace(label),
		Style: diagram.Solid,
	}, true
}
