// Package dialect implements the five diagram notations: class, use-case,
// state (also used for activity diagrams), deployment and package.
//
// Each dialect scans a notation line into entities and operators, registers
// the entities with a diagram.Builder and connects them according to the
// fixed fragment patterns it accepts. Compose returns the DOT body of the
// whole diagram or the first *notation.ParseError encountered.
package dialect
