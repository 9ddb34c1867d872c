// Package notation implements the lexical layer shared by every yUML dialect.
//
// A notation line is a sequence of bracketed entities separated by operator
// strings:
//
//	[Customer{bg:orange}]<>1-*>[Order]
//
// The package splits such a line into fragments, pulls note markers and
// styling directives out of entity text, wraps labels for display and derives
// the identity key used to deduplicate entities across lines. It knows nothing
// about arrows or node shapes; those belong to the dialect grammars.
package notation
