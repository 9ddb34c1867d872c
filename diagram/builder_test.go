package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/yumldot/dot"
)

func record(key string) Node {
	return Node{Key: key, Kind: KindRecord, Label: key, Attrs: dot.NodeAttrs{Shape: "record", Label: key}}
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	b := NewBuilder(nil)
	for i, key := range []string{"Customer", "Order", "Address"} {
		id, created := b.Register(record(key))
		assert.True(t, created)
		assert.Equal(t, []string{"A0", "A1", "A2"}[i], id)
	}
	nodes, edges := b.Len()
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 0, edges)
}

func TestRegisterFirstOccurrenceWins(t *testing.T) {
	b := NewBuilder(nil)
	first := record("Customer")
	first.Background = "orange"
	id, created := b.Register(first)
	require.True(t, created)

	second := record("Customer")
	second.Background = "green"
	dup, created := b.Register(second)
	assert.False(t, created)
	assert.Equal(t, id, dup)

	d := b.Build(0.7, "TB")
	require.Len(t, d.Nodes, 1)
	assert.Equal(t, "orange", d.Nodes[0].Background)
}

func TestIDLookup(t *testing.T) {
	b := NewBuilder(nil)
	b.Register(record("Order"))
	id, ok := b.ID("Order")
	assert.True(t, ok)
	assert.Equal(t, "A0", id)
	_, ok = b.ID("Customer")
	assert.False(t, ok)

	require.NotNil(t, b.Node("A0"))
	assert.Equal(t, "Order", b.Node("A0").Key)
	assert.Nil(t, b.Node("A7"))
}

func TestJunctionIsReused(t *testing.T) {
	b := NewBuilder(nil)
	from, _ := b.Register(record("Customer"))
	to, _ := b.Register(record("Order"))

	j := b.Junction(from, to)
	assert.Equal(t, "A0JA1", j)
	assert.Equal(t, j, b.Junction(from, to))

	d := b.Build(0.7, "TB")
	require.Len(t, d.Nodes, 3)
	junction := d.Nodes[2]
	assert.Equal(t, KindJunction, junction.Kind)
	assert.Equal(t, "point", junction.Attrs.Shape)
	assert.Equal(t, "invis", junction.Attrs.Style)

	// junctions do not consume entity ids
	id, _ := b.Register(record("LineItem"))
	assert.Equal(t, "A2", id)
}

func TestConnectPanicsOnUnknownNode(t *testing.T) {
	b := NewBuilder(nil)
	from, _ := b.Register(record("Customer"))
	assert.Panics(t, func() {
		b.Connect(Edge{From: from, To: "A9"})
	})
	assert.NotPanics(t, func() {
		b.Connect(Edge{From: from, To: from})
	})
}

func TestNormalizeDefaults(t *testing.T) {
	e := Normalize(Operator{Kind: OpConnector}, KindRecord, KindRecord)
	assert.Equal(t, ArrowNone, e.Tail)
	assert.Equal(t, ArrowNone, e.Head)
	assert.Equal(t, Solid, e.Style)
	assert.Equal(t, DefaultFontSize, e.FontSize)
	assert.False(t, e.SameRank)
}

func TestNormalizeNoteForcesDashed(t *testing.T) {
	op := Operator{Kind: OpAssociation, Head: ArrowVee, Style: Solid}
	for _, kinds := range [][2]Kind{{KindNote, KindRecord}, {KindRecord, KindNote}, {KindNote, KindNote}} {
		e := Normalize(op, kinds[0], kinds[1])
		assert.Equal(t, Dashed, e.Style, "kinds: %v", kinds)
		assert.True(t, e.SameRank, "kinds: %v", kinds)
		assert.Equal(t, ArrowVee, e.Head)
	}
}

func TestNormalizeInheritanceNeverDashed(t *testing.T) {
	op := Operator{Kind: OpInheritance, Tail: ArrowEmpty, Style: Dashed}
	e := Normalize(op, KindNote, KindRecord)
	assert.Equal(t, Solid, e.Style)
	assert.Equal(t, ArrowEmpty, e.Tail)
}

func TestEdgeAttrs(t *testing.T) {
	e := Normalize(Operator{
		Kind:      OpAssociation,
		Tail:      ArrowODiamond,
		TailLabel: "1",
		Head:      ArrowVee,
		HeadLabel: "*",
	}, KindRecord, KindRecord)
	assert.Equal(t,
		`[dir="both", style="solid", arrowtail="odiamond", taillabel="1", arrowhead="vee", headlabel="*", labeldistance=2, fontsize=10]`,
		e.Attrs().String())
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "box3d", KindBox3D.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "extend", OpExtend.String())
	assert.False(t, Operator{}.Draws())
	assert.True(t, Operator{Kind: OpFlow}.Draws())
}
