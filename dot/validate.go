package dot

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the renderer will draw something other than what was meant.
	Error Severity = iota
	// Warning means the document renders but may not look as intended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "node_label")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	NodeID   string   // related node ID (optional)
	Edge     *EdgeRef // related edge as (from, to) (optional)
	Fix      string   // suggested fix (optional)
}

// EdgeRef identifies an edge by its endpoints.
type EdgeRef struct {
	From string
	To   string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.NodeID != "" {
		fmt.Fprintf(&b, " (node: %s)", d.NodeID)
	}
	if d.Edge != nil {
		fmt.Fprintf(&b, " (edge: %s -> %s)", d.Edge.From, d.Edge.To)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(g *Graph) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the graph.
// Returns all diagnostics regardless of severity.
func Validate(g *Graph, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(g)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(g *Graph, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(g, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		edgeEndpointDeclaredRule{},
		nodeLabelRule{},
		arrowKnownRule{},
		edgeStyleKnownRule{},
		shapeKnownRule{},
		rankSameHasEdgesRule{},
	}
}

// KnownArrows lists the arrow shapes the composers emit, plus Graphviz's default.
var KnownArrows = map[string]bool{
	"none":     true,
	"normal":   true,
	"vee":      true,
	"empty":    true,
	"odiamond": true,
	"diamond":  true,
}

// KnownShapes lists the node shapes the composers emit.
var KnownShapes = map[string]bool{
	"record":       true,
	"note":         true,
	"box3d":        true,
	"tab":          true,
	"ellipse":      true,
	"none":         true,
	"point":        true,
	"circle":       true,
	"doublecircle": true,
	"box":          true,
}

var knownEdgeStyles = map[string]bool{
	"solid":  true,
	"dashed": true,
	"dotted": true,
	"bold":   true,
	"invis":  true,
}

// --- Rule implementations ---

// edge_endpoint_declared: every edge endpoint has its own node statement.
// Graphviz would silently create an unlabeled node otherwise.
type edgeEndpointDeclaredRule struct{}

func (edgeEndpointDeclaredRule) Name() string { return "edge_endpoint_declared" }

func (edgeEndpointDeclaredRule) Apply(g *Graph) []Diagnostic {
	declared := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		declared[n.ID] = n.Declared
	}

	var diags []Diagnostic
	for _, e := range g.Edges {
		for _, id := range []string{e.From, e.To} {
			if declared[id] {
				continue
			}
			diags = append(diags, Diagnostic{
				Rule:     "edge_endpoint_declared",
				Severity: Error,
				Message:  fmt.Sprintf("edge endpoint %q has no node statement", id),
				Edge:     &EdgeRef{From: e.From, To: e.To},
				Fix:      fmt.Sprintf("declare node %q before the edge", id),
			})
		}
	}
	return diags
}

// node_label: declared nodes carry a label, so internal IDs never show.
type nodeLabelRule struct{}

func (nodeLabelRule) Name() string { return "node_label" }

func (nodeLabelRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, n := range g.Nodes {
		if !n.Declared {
			continue
		}
		if _, ok := n.Attr("label"); !ok {
			diags = append(diags, Diagnostic{
				Rule:     "node_label",
				Severity: Error,
				Message:  "node has no label attribute",
				NodeID:   n.ID,
				Fix:      `add label="" to hide the ID`,
			})
		}
	}
	return diags
}

// arrow_known: arrowhead and arrowtail use a known shape.
type arrowKnownRule struct{}

func (arrowKnownRule) Name() string { return "arrow_known" }

func (arrowKnownRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, e := range g.Edges {
		for _, key := range []string{"arrowtail", "arrowhead"} {
			v, ok := e.Attr(key)
			if !ok || KnownArrows[v.Str] {
				continue
			}
			diags = append(diags, Diagnostic{
				Rule:     "arrow_known",
				Severity: Error,
				Message:  fmt.Sprintf("unknown %s %q", key, v.Raw),
				Edge:     &EdgeRef{From: e.From, To: e.To},
			})
		}
	}
	return diags
}

// edge_style_known: edge style is one Graphviz understands.
type edgeStyleKnownRule struct{}

func (edgeStyleKnownRule) Name() string { return "edge_style_known" }

func (edgeStyleKnownRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, e := range g.Edges {
		v, ok := e.Attr("style")
		if !ok || knownEdgeStyles[v.Str] {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "edge_style_known",
			Severity: Warning,
			Message:  fmt.Sprintf("unknown edge style %q", v.Raw),
			Edge:     &EdgeRef{From: e.From, To: e.To},
		})
	}
	return diags
}

// shape_known: node shapes come from the set the composers emit.
type shapeKnownRule struct{}

func (shapeKnownRule) Name() string { return "shape_known" }

func (shapeKnownRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, n := range g.Nodes {
		v, ok := n.Attr("shape")
		if !ok || KnownShapes[v.Str] {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "shape_known",
			Severity: Warning,
			Message:  fmt.Sprintf("unknown shape %q", v.Raw),
			NodeID:   n.ID,
		})
	}
	return diags
}

// rank_same_has_edges: a rank=same block constrains something.
type rankSameHasEdgesRule struct{}

func (rankSameHasEdgesRule) Name() string { return "rank_same_has_edges" }

func (rankSameHasEdgesRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, sg := range g.Subgraphs {
		rank, ok := sg.Attr("rank")
		if !ok || rank.Str != "same" {
			continue
		}
		if len(sg.Edges) == 0 && len(sg.Nodes) < 2 {
			diags = append(diags, Diagnostic{
				Rule:     "rank_same_has_edges",
				Severity: Warning,
				Message:  fmt.Sprintf("rank=same block at line %d constrains nothing", sg.Pos.Line),
			})
		}
	}
	return diags
}
