package diagram

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/martinemde/yumldot/dot"
)

// Builder accumulates the nodes and edges of one diagram. It is not safe for
// concurrent use; create one per composition.
type Builder struct {
	logger *zap.Logger
	next   int
	ids    map[string]string // identity key -> node id
	byID   map[string]*Node  // every registered node, junctions included
	nodes  []*Node
	edges  []Edge
}

// NewBuilder returns an empty Builder. A nil logger disables logging.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		logger: logger,
		ids:    make(map[string]string),
		byID:   make(map[string]*Node),
	}
}

// Register adds n under n.Key and returns its id. When the key is already
// taken the existing id is returned with created == false and n is
// discarded, styling included.
func (b *Builder) Register(n Node) (id string, created bool) {
	if id, ok := b.ids[n.Key]; ok {
		b.logger.Debug("duplicate entity ignored",
			zap.String("key", n.Key),
			zap.String("id", id),
		)
		return id, false
	}
	n.ID = fmt.Sprintf("A%d", b.next)
	b.next++
	b.ids[n.Key] = n.ID
	b.byID[n.ID] = &n
	b.nodes = append(b.nodes, &n)
	b.logger.Debug("node registered",
		zap.String("id", n.ID),
		zap.String("kind", n.Kind.String()),
		zap.String("key", n.Key),
	)
	return n.ID, true
}

// ID returns the node id registered for key.
func (b *Builder) ID(key string) (string, bool) {
	id, ok := b.ids[key]
	return id, ok
}

// Node returns the node registered under id, or nil.
func (b *Builder) Node(id string) *Node {
	return b.byID[id]
}

// Junction returns the id of the invisible point that splits the edge
// between fromID and toID, registering it on first use.
func (b *Builder) Junction(fromID, toID string) string {
	id := fromID + "J" + toID
	if _, ok := b.byID[id]; ok {
		return id
	}
	n := &Node{
		ID:   id,
		Kind: KindJunction,
		Attrs: dot.NodeAttrs{
			Shape:  "point",
			Style:  "invis",
			Label:  "",
			Height: 0.01,
			Width:  0.01,
		},
	}
	b.byID[id] = n
	b.nodes = append(b.nodes, n)
	return id
}

// Connect appends an edge. Both endpoints must already be registered; an
// unknown id is a programming error and panics.
func (b *Builder) Connect(e Edge) {
	for _, id := range []string{e.From, e.To} {
		if _, ok := b.byID[id]; !ok {
			panic(fmt.Sprintf("diagram: edge %s -> %s references unregistered node %q", e.From, e.To, id))
		}
	}
	b.edges = append(b.edges, e)
}

// Len returns the number of nodes and edges collected so far.
func (b *Builder) Len() (nodes, edges int) {
	return len(b.nodes), len(b.edges)
}

// Build returns the finished diagram.
func (b *Builder) Build(rankSep float64, direction string) *Diagram {
	return &Diagram{
		RankSep:   rankSep,
		Direction: direction,
		Nodes:     b.nodes,
		Edges:     b.edges,
	}
}
