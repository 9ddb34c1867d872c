package notation

import (
	"strings"
	"unicode/utf8"
)

// LabelWidth is the wrap width, in characters, applied to every label.
const LabelWidth = 20

// LineBreak is the DOT escape that stacks label text.
const LineBreak = `\n`

// FormatLabel wraps label for display. In record mode the label is split on
// "|" into compartments, ";" separates members within a compartment, and
// characters that are structural in DOT record labels are escaped.
func FormatLabel(label string, width int, record bool) string {
	if !record {
		return strings.Join(Wrap(label, width), LineBreak)
	}

	compartments := strings.Split(label, "|")
	for i, compartment := range compartments {
		var lines []string
		for _, member := range strings.Split(compartment, ";") {
			if member = strings.TrimSpace(member); member == "" {
				continue
			}
			for _, line := range Wrap(member, width) {
				lines = append(lines, escapeRecord(line))
			}
		}
		compartments[i] = strings.Join(lines, LineBreak)
	}
	return strings.Join(compartments, "|")
}

// Wrap greedily packs the words of text into lines of at most width runes.
// A word longer than width gets a line of its own and is never split.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

func escapeRecord(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\\':
			// keep existing escapes intact
			b.WriteByte(ch)
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
			continue
		case '{', '}', '<', '>', '|', ' ':
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}
