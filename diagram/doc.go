// Package diagram holds the per-build state shared by every dialect: the
// sequential node id counter, the identity table that deduplicates entities,
// and the ordered node and edge lists that are serialized as a DOT body.
//
// A Builder is created for one composition and discarded afterwards. Edges
// reference nodes by id; the node table is the single owner of nodes.
package diagram
