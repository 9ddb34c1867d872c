package dialect

import (
	"strings"

	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/notation"
)

// Package composes package diagrams. "-" is a plain dashed connector and
// "label->" a labeled dependency: [app]uses->[core]-[note: shared].
type Package struct{}

var packageGrammar = &grammar{
	name:     "package",
	openers:  "[",
	rankSep:  0.5,
	node:     packageNode,
	operator: packageOperator,
	connect:  connectChain,
}

func (Package) Name() string    { return packageGrammar.name }
func (Package) Openers() string { return packageGrammar.openers }

func (Package) Compose(lines []string, opts Options) (string, error) {
	return packageGrammar.compose(lines, opts)
}

func packageNode(_ notation.Fragment, a notation.Annotation, _ Options) diagram.Node {
	if a.IsNote {
		return styledNode(diagram.KindNote, "note", plainLabel(a.Label), a)
	}
	return styledNode(diagram.KindTab, "tab", plainLabel(a.Label), a)
}

func packageOperator(text string) (diagram.Operator, bool) {
	if text == "-" {
		return diagram.Operator{Kind: diagram.OpConnector, Style: diagram.Dashed}, true
	}
	if label, ok := strings.CutSuffix(text, "->"); ok {
		return diagram.Operator{
			Kind:  diagram.OpDependency,
			Head:  diagram.ArrowVee,
			Label: strings.TrimSpace(label),
			Style: diagram.Dashed,
		}, true
	}
	return diagram.Operator{}, false
}
