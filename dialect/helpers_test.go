package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/martinemde/yumldot/dot"
)

func compose(t *testing.T, d Dialect, dir string, lines ...string) string {
	t.Helper()
	out, err := d.Compose(lines, Options{Direction: dir})
	require.NoError(t, err)
	return out
}

// reparse wraps a composed body in a digraph block and parses it back,
// failing on any lint error.
func reparse(t *testing.T, body string) *dot.Graph {
	t.Helper()
	g, err := dot.Parse([]byte("digraph G {\n" + body))
	require.NoError(t, err)
	_, err = dot.ValidateOrError(g)
	require.NoError(t, err)
	return g
}

func statementLines(body string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		out = append(out, strings.TrimSpace(line))
	}
	return out
}

func attr(t *testing.T, attrs dot.Attrs, key string) string {
	t.Helper()
	v, ok := attrs.Get(key)
	require.True(t, ok, "missing attribute %q", key)
	return v.Str
}
