package notation

import "fmt"

// ParseError reports a notation line that cannot be parsed. It is fatal to
// the whole diagram build.
type ParseError struct {
	Line    string // offending notation line, verbatim
	Token   string // offending fragment or directive (optional)
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q in %q", e.Message, e.Token, e.Line)
	}
	return fmt.Sprintf("%s in %q", e.Message, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Cause }
