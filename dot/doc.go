// Package dot writes and re-reads the Graphviz DOT documents produced by the
// diagram composers.
//
// The writing side is small: typed attribute records (NodeAttrs, EdgeAttrs)
// rendered by FormatAttrs, and a Writer that emits the statement forms a
// diagram body needs.
//
// The reading side is a hand-rolled recursive-descent parser for the DOT
// subset the writer emits, plus graph defaults and comments:
//
//   - Lexer: converts raw bytes into a token stream, stripping comments and
//     whitespace.
//   - Parser: consumes tokens and builds a Graph (nodes, edges, subgraphs).
//   - Validate: lint rules over a parsed Graph.
//
// Usage:
//
//	graph, err := dot.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := dot.ValidateOrError(graph); err != nil {
//	    log.Fatal(err)
//	}
package dot
