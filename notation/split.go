package notation

import "strings"

// FragmentKind identifies the variant of a Fragment.
type FragmentKind int

const (
	FragmentEntity   FragmentKind = iota // bracketed node text
	FragmentOperator                     // text between two entities
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentEntity:
		return "entity"
	case FragmentOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Fragment is a single piece of a split notation line.
type Fragment struct {
	Kind FragmentKind
	Text string // inner text for entities (untrimmed), trimmed text for operators
	Open byte   // opening bracket of an entity; 0 for operators
}

// IsEntity reports whether f is an entity fragment.
func (f Fragment) IsEntity() bool { return f.Kind == FragmentEntity }

// String returns the fragment as it appeared in the line, brackets included.
func (f Fragment) String() string {
	if f.Kind == FragmentEntity {
		return string(f.Open) + f.Text + string(closers[f.Open])
	}
	return f.Text
}

var closers = map[byte]byte{
	'[': ']',
	'(': ')',
}

// Split breaks a notation line into entity and operator fragments. openers
// lists the bracket characters the dialect treats as entity delimiters ("[",
// "(" or "[(").
//
// Only top-level brackets delimit entities. Inside an entity, nested pairs of
// the same bracket kind, backslash escapes and double-quoted runs are kept
// as text. The operator between two entities is always present, possibly
// empty; leading and trailing operators are present only when non-empty.
func Split(line, openers string) ([]Fragment, error) {
	s := &splitter{line: line, openers: openers}
	return s.split()
}

// SplitExpressions cuts a line into the comma-separated expressions it
// holds, e.g. "[A]-[B],[B]-[C]". Commas inside entities do not count.
func SplitExpressions(line, openers string) ([]string, error) {
	s := &splitter{line: line, openers: openers}

	var exprs []string
	start := 0
	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
		case s.isOpener(ch):
			if _, err := s.entity(); err != nil {
				return nil, err
			}
		case ch == ',':
			exprs = appendExpr(exprs, s.line[start:s.pos])
			s.pos++
			start = s.pos
		default:
			s.pos++
		}
	}
	if start < len(s.line) {
		exprs = appendExpr(exprs, s.line[start:])
	}
	return exprs, nil
}

func appendExpr(exprs []string, expr string) []string {
	if expr = strings.TrimSpace(expr); expr != "" {
		exprs = append(exprs, expr)
	}
	return exprs
}

type splitter struct {
	line    string
	openers string
	pos     int
}

func (s *splitter) isOpener(ch byte) bool {
	return strings.IndexByte(s.openers, ch) >= 0
}

func (s *splitter) isCloser(ch byte) bool {
	for i := 0; i < len(s.openers); i++ {
		if closers[s.openers[i]] == ch {
			return true
		}
	}
	return false
}

func (s *splitter) split() ([]Fragment, error) {
	var (
		frags     []Fragment
		op        strings.Builder
		sawEntity bool
	)

	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		switch {
		case ch == '\\' && s.pos+1 < len(s.line):
			op.WriteString(s.line[s.pos : s.pos+2])
			s.pos += 2
		case s.isOpener(ch):
			text, err := s.entity()
			if err != nil {
				return nil, err
			}
			opText := strings.TrimSpace(op.String())
			if sawEntity || opText != "" {
				frags = append(frags, Fragment{Kind: FragmentOperator, Text: opText})
			}
			op.Reset()
			frags = append(frags, Fragment{Kind: FragmentEntity, Text: text, Open: ch})
			sawEntity = true
		case s.isCloser(ch):
			return nil, &ParseError{
				Line:    s.line,
				Token:   string(ch),
				Message: "unbalanced bracket",
			}
		default:
			op.WriteByte(ch)
			s.pos++
		}
	}

	if opText := strings.TrimSpace(op.String()); opText != "" {
		frags = append(frags, Fragment{Kind: FragmentOperator, Text: opText})
	}
	return frags, nil
}

// entity consumes a bracketed entity starting at s.pos and returns its inner
// text. An unterminated double quote is retried as plain text so labels such
// as [6" pipe] still close on their bracket.
func (s *splitter) entity() (string, error) {
	start := s.pos
	if text, ok := s.scanEntity(true); ok {
		return text, nil
	}
	s.pos = start
	if text, ok := s.scanEntity(false); ok {
		return text, nil
	}
	return "", &ParseError{
		Line:    s.line,
		Token:   s.line[start:],
		Message: "unbalanced bracket",
	}
}

func (s *splitter) scanEntity(quotes bool) (string, bool) {
	open := s.line[s.pos]
	closer := closers[open]
	start := s.pos + 1
	depth := 0
	inQuote := false

	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
			continue
		case quotes && ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == open:
			depth++
		case ch == closer:
			depth--
			if depth == 0 {
				text := s.line[start:s.pos]
				s.pos++
				return text, true
			}
		}
		s.pos++
	}
	return "", false
}
