package dot

import (
	"fmt"
	"io"
)

const indent = "    "

// Writer emits DOT statements. The first write error is kept and returned by
// Err and Close; later writes are no-ops.
type Writer struct {
	w   io.Writer
	n   int64
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.w, format, args...)
	w.n += int64(n)
	w.err = err
}

// Open starts a digraph: digraph name {
func (w *Writer) Open(name string) {
	w.printf("digraph %s {\n", name)
}

// Defaults writes a graph, node or edge default statement from a tagged
// attribute struct, e.g. node [shape="none"].
func (w *Writer) Defaults(kind string, attrs any) {
	w.printf("%s%s %s\n", indent, kind, FormatAttrs(attrs))
}

// Attr writes a graph attribute declaration. value is written verbatim.
func (w *Writer) Attr(key, value string) {
	w.printf("%s%s = %s\n", indent, key, value)
}

// Node writes a node statement.
func (w *Writer) Node(id string, attrs NodeAttrs) {
	w.printf("%s%s %s\n", indent, id, attrs)
}

// Edge writes an edge statement. With sameRank the edge is wrapped in an
// anonymous block that keeps both endpoints on one rank.
func (w *Writer) Edge(from, to string, attrs EdgeAttrs, sameRank bool) {
	if sameRank {
		w.printf("%s{ rank=same; %s -> %s %s; }\n", indent, from, to, attrs)
		return
	}
	w.printf("%s%s -> %s %s\n", indent, from, to, attrs)
}

// Close writes the closing brace and returns the first error seen.
func (w *Writer) Close() error {
	w.printf("}\n")
	return w.err
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.n }
