package dialect

import (
	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/dot"
	"github.com/martinemde/yumldot/notation"
)

// UseCase composes use-case diagrams. Round brackets are use cases and
// notes, square brackets are actors:
//
//	[Customer]-(Login)
//	(Login)<(Forgot Password)
//	(Register)>(Confirm Email)
//	[Admin]^[User]
type UseCase struct{}

var useCaseGrammar = &grammar{
	name:     "usecase",
	openers:  "[(",
	rankSep:  0.7,
	node:     useCaseNode,
	operator: useCaseOperator,
	connect:  connectPair,
}

func (UseCase) Name() string    { return useCaseGrammar.name }
func (UseCase) Openers() string { return useCaseGrammar.openers }

func (UseCase) Compose(lines []string, opts Options) (string, error) {
	return useCaseGrammar.compose(lines, opts)
}

const actorImage = "{img:actor} "

func useCaseNode(f notation.Fragment, a notation.Annotation, _ Options) diagram.Node {
	label := plainLabel(a.Label)
	if f.Open == '[' {
		// actors are drawn as a figure; colors do not apply
		return diagram.Node{
			Kind:  diagram.KindActor,
			Label: label,
			Attrs: dot.NodeAttrs{
				Shape:    "none",
				Height:   1,
				FontSize: diagram.DefaultFontSize,
				Margin:   "0.05,0.05",
				Label:    actorImage + label,
			},
		}
	}
	if a.IsNote {
		return styledNode(diagram.KindNote, "note", label, a)
	}
	return styledNode(diagram.KindRecord, "ellipse", label, a)
}

var useCaseOperators = map[string]diagram.Operator{
	"<": {
		Kind:  diagram.OpExtend,
		Tail:  diagram.ArrowVee,
		Head:  diagram.ArrowNone,
		Label: "<<extend>>",
		Style: diagram.Dashed,
	},
	">": {
		Kind:  diagram.OpInclude,
		Tail:  diagram.ArrowNone,
		Head:  diagram.ArrowVee,
		Label: "<<include>>",
		Style: diagram.Dashed,
	},
	"-": {
		Kind:  diagram.OpConnector,
		Style: diagram.Solid,
	},
	"^": {
		Kind:  diagram.OpInheritance,
		Head:  diagram.ArrowEmpty,
		Style: diagram.Solid,
	},
}

func useCaseOperator(text string) (diagram.Operator, bool) {
	op, ok := useCaseOperators[text]
	return op, ok
}
