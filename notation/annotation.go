package notation

import (
	"regexp"
	"strings"
)

// Annotation is the cleaned content of one entity.
type Annotation struct {
	Label      string
	IsNote     bool
	Background string // from {bg:...}; empty when unset
	FontColor  string // from {fg:...}; empty when unset
}

const notePrefix = "note:"

// directiveOpen matches the opening of a styling directive such as "{bg:".
var directiveOpen = regexp.MustCompile(`(?i)\{\s*(bg|fg)\s*:`)

// Extract cleans the inner text of an entity. A trailing {bg:COLOR;fg:COLOR}
// directive is removed and returned as styling; with allowNote, a leading
// case-insensitive "note:" marks the entity as a note.
func Extract(text string, allowNote bool) (Annotation, error) {
	label, directive, err := cutDirective(strings.TrimSpace(text))
	if err != nil {
		return Annotation{}, err
	}

	var a Annotation
	if directive != "" {
		if err := a.applyDirective(directive); err != nil {
			return Annotation{}, err
		}
	}

	if allowNote && len(label) >= len(notePrefix) && strings.EqualFold(label[:len(notePrefix)], notePrefix) {
		a.IsNote = true
		label = strings.TrimSpace(label[len(notePrefix):])
	}
	a.Label = label
	return a, nil
}

// cutDirective splits text into the label and the body of its trailing
// styling directive, if any.
func cutDirective(text string) (label, directive string, err error) {
	locs := directiveOpen.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, "", nil
	}
	open := locs[len(locs)-1][0]

	body, rest, ok := strings.Cut(text[open+1:], "}")
	if !ok {
		return "", "", &ParseError{
			Token:   text[open:],
			Message: "unterminated styling directive",
		}
	}
	if strings.TrimSpace(rest) != "" {
		return "", "", &ParseError{
			Token:   text[open:],
			Message: "styling directive must end the label",
		}
	}
	return strings.TrimSpace(text[:open]), body, nil
}

func (a *Annotation) applyDirective(body string) error {
	entries := strings.FieldsFunc(body, func(r rune) bool { return r == ';' || r == ',' })
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.ToLower(strings.TrimSpace(value))
		if !ok || value == "" {
			return &ParseError{Token: entry, Message: "malformed styling entry"}
		}
		switch key {
		case "bg":
			a.Background = value
		case "fg":
			a.FontColor = value
		default:
			return &ParseError{Token: entry, Message: "unknown styling key"}
		}
	}
	return nil
}
