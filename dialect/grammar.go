package dialect

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/martinemde/yumldot/diagram"
	"github.com/martinemde/yumldot/dot"
	"github.com/martinemde/yumldot/notation"
)

// element is a scanned fragment. Entities carry the node they describe and,
// once registered, the id and kind of the node that owns their identity
// key. Operators carry the parsed operator; an empty gap is diagram.OpNone.
type element struct {
	frag notation.Fragment
	node diagram.Node
	id   string
	kind diagram.Kind
	op   diagram.Operator
}

func (e element) isEntity() bool { return e.frag.IsEntity() }

// grammar is the table a dialect is built from.
type grammar struct {
	name    string
	openers string
	rankSep float64

	// node classifies an entity. Key is filled in by the scanner.
	node func(f notation.Fragment, a notation.Annotation, opts Options) diagram.Node
	// operator parses non-empty operator text.
	operator func(text string) (diagram.Operator, bool)
	// connect applies the dialect's line pattern to registered elements.
	connect func(b *diagram.Builder, line string, elems []element) error
}

func (g *grammar) compose(lines []string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	logger := opts.logger().With(zap.String("dialect", g.name))
	b := diagram.NewBuilder(logger)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		elems, err := g.scan(line, opts)
		if err != nil {
			logger.Debug("line rejected", zap.String("line", line), zap.Error(err))
			return "", err
		}
		for i := range elems {
			if elems[i].isEntity() {
				elems[i].id, _ = b.Register(elems[i].node)
				elems[i].kind = b.Node(elems[i].id).Kind
			}
		}
		if err := g.connect(b, line, elems); err != nil {
			logger.Debug("line rejected", zap.String("line", line), zap.Error(err))
			return "", err
		}
		logger.Debug("line composed", zap.String("line", line), zap.Int("fragments", len(elems)))
	}

	d := b.Build(g.rankSep, opts.Direction)
	logger.Debug("diagram composed",
		zap.Int("nodes", len(d.Nodes)),
		zap.Int("edges", len(d.Edges)),
	)
	return d.String(), nil
}

// scan splits a line and classifies every fragment without touching the
// builder, so a rejected line leaves nothing behind.
func (g *grammar) scan(line string, opts Options) ([]element, error) {
	frags, err := notation.Split(line, g.openers)
	if err != nil {
		return nil, atLine(err, line)
	}

	elems := make([]element, 0, len(frags))
	for _, f := range frags {
		el := element{frag: f}
		switch {
		case f.IsEntity():
			a, err := notation.Extract(f.Text, true)
			if err != nil {
				return nil, atLine(err, line)
			}
			el.node = g.node(f, a, opts)
			el.node.Key = notation.Key(a.Label)
		case f.Text != "":
			op, ok := g.operator(f.Text)
			if !ok {
				return nil, &notation.ParseError{Line: line, Token: f.Text, Message: "unrecognized operator"}
			}
			el.op = op
		}
		elems = append(elems, el)
	}

	if len(elems) == 0 {
		return nil, nil
	}
	if !elems[0].isEntity() {
		return nil, &notation.ParseError{Line: line, Token: elems[0].frag.Text, Message: "operator has no source entity"}
	}
	if last := elems[len(elems)-1]; !last.isEntity() {
		return nil, &notation.ParseError{Line: line, Token: last.frag.Text, Message: "operator has no target entity"}
	}
	return elems, nil
}

// atLine fills in the line of a ParseError raised below the line scanner.
func atLine(err error, line string) error {
	var pe *notation.ParseError
	if errors.As(err, &pe) && pe.Line == "" {
		pe.Line = line
	}
	return err
}

// draws reports whether any operator on the line produces an edge.
func draws(elems []element) bool {
	for _, el := range elems {
		if !el.isEntity() && el.op.Draws() {
			return true
		}
	}
	return false
}

// link connects two registered entities through op.
func link(b *diagram.Builder, from, to element, op diagram.Operator) {
	e := diagram.Normalize(op, from.kind, to.kind)
	e.From, e.To = from.id, to.id
	b.Connect(e)
}

// connectPair accepts declarations and the single E op E pattern.
func connectPair(b *diagram.Builder, line string, elems []element) error {
	switch {
	case !draws(elems):
		return nil
	case len(elems) == 3 && elems[1].op.Draws():
		link(b, elems[0], elems[2], elems[1].op)
		return nil
	default:
		return unexpected(line, elems, 3)
	}
}

// connectChain accepts E op E op E ...; every non-empty operator links its
// two neighbors.
func connectChain(b *diagram.Builder, line string, elems []element) error {
	for i := 1; i+1 < len(elems); i += 2 {
		if elems[i].op.Draws() {
			link(b, elems[i-1], elems[i+1], elems[i].op)
		}
	}
	return nil
}

// unexpected reports the first fragment past a pattern of at most max
// fragments: an operator beyond the first gap, or else the first entity
// past max.
func unexpected(line string, elems []element, max int) error {
	tok := elems[len(elems)-1].frag
	for i := 2; i < len(elems); i++ {
		if !elems[i].isEntity() && elems[i].op.Draws() {
			tok = elems[i].frag
			break
		}
		if i >= max && elems[i].isEntity() {
			tok = elems[i].frag
			break
		}
	}
	return &notation.ParseError{Line: line, Token: tok.String(), Message: "unexpected fragment"}
}

// styledNode builds the common node statement: the given shape, standard
// size and margin, and the entity's colors.
func styledNode(kind diagram.Kind, shape, label string, a notation.Annotation) diagram.Node {
	n := diagram.Node{
		Kind:       kind,
		Label:      label,
		Background: a.Background,
		FontColor:  fontColor(a),
		Attrs: dot.NodeAttrs{
			Shape:    shape,
			Height:   0.5,
			FontSize: diagram.DefaultFontSize,
			Margin:   "0.20,0.05",
			Label:    label,
		},
	}
	if n.Background != "" {
		n.Attrs.Style = "filled"
		n.Attrs.FillColor = n.Background
	}
	n.Attrs.FontColor = n.FontColor
	return n
}

// fontColor returns the explicit fg color, or one that contrasts with bg.
func fontColor(a notation.Annotation) string {
	if a.FontColor != "" || a.Background == "" {
		return a.FontColor
	}
	return notation.ContrastColor(a.Background)
}

func plainLabel(label string) string {
	return notation.FormatLabel(label, notation.LabelWidth, false)
}

func recordLabel(label string) string {
	return notation.FormatLabel(label, notation.LabelWidth, true)
}
