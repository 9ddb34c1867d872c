package notation

import "strings"

// Key returns the identity of a cleaned label: the text before the first
// "|". Entities with equal keys are the same node.
func Key(label string) string {
	name, _, _ := strings.Cut(label, "|")
	return strings.TrimSpace(name)
}
