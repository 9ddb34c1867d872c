package dot

import (
	"fmt"
	"strconv"
)

// ParseValue converts a token into a typed Value.
func ParseValue(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenString:
		return Value{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal}, nil

	case TokenInteger:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("invalid integer %q: %v", tok.Literal, err),
				Pos:     tok.Pos,
				Cause:   err,
			}}
		}
		return Value{Kind: ValueInt, Int: n, Raw: tok.Literal}, nil

	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("invalid float %q: %v", tok.Literal, err),
				Pos:     tok.Pos,
				Cause:   err,
			}}
		}
		return Value{Kind: ValueFloat, Float: f, Raw: tok.Literal}, nil

	case TokenTrue:
		return Value{Kind: ValueBool, Bool: true, Raw: tok.Literal}, nil

	case TokenFalse:
		return Value{Kind: ValueBool, Bool: false, Raw: tok.Literal}, nil

	case TokenIdentifier, TokenNode, TokenEdge, TokenGraph:
		// Bare identifiers in value position are unquoted strings
		// (e.g. shape=record, rankdir=LR, rank=same).
		return Value{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal}, nil

	default:
		return Value{}, &ValueError{ParseError{
			Message: fmt.Sprintf("unexpected token %s in value position", tok.Kind),
			Pos:     tok.Pos,
		}}
	}
}

// Number returns the value as a float64 when it is numeric.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case ValueInt:
		return float64(v.Int), true
	case ValueFloat:
		return v.Float, true
	default:
		return 0, false
	}
}
