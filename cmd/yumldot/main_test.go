package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// execute runs the root command with args. Flags keep their values between
// runs, so callers pass every flag they depend on.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderFromStdin(t *testing.T) {
	out, _, err := execute(t, "[Customer]<>1-*>[Order]\n",
		"render", "--type", "class", "--dir", "LR", "--body-only=true", "--check=false", "-o", "", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "    ranksep = 0.7\n    rankdir = LR\n"), out)
	assert.Contains(t, out, `arrowtail="odiamond"`)
}

func TestRenderFileWithCheck(t *testing.T) {
	src := writeFile(t, "flow.yuml", "// {type:activity}\n(start)->(Work)->(end)\n")
	dst := filepath.Join(t.TempDir(), "flow.dot")

	_, _, err := execute(t, "",
		"render", "--type", "", "--dir", "leftToRight", "--body-only=false", "--check", "-o", dst, src)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph G {\n"))
	assert.Contains(t, string(data), "rankdir = LR")
	assert.Contains(t, string(data), `shape="doublecircle"`)
}

func TestRenderReportsParseErrors(t *testing.T) {
	_, _, err := execute(t, "[A]->[B]\n[Customer]~[Order]\n",
		"render", "--type", "class", "--dir", "TB", "--body-only=false", "--check=false", "-o", "", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
	assert.Contains(t, err.Error(), `"~"`)
}

func TestLintCommand(t *testing.T) {
	good := writeFile(t, "good.dot", `digraph G {
    A0 [shape="record", label="Customer"]
    A1 [shape="record", label="Order"]
    A0 -> A1 [arrowhead="vee"]
}`)
	out, _, err := execute(t, "", "lint", "--summary", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes: 2")
	assert.Contains(t, out, "ok (2 nodes, 1 edges, 0 diagnostic(s))")

	bad := writeFile(t, "bad.dot", `digraph G { A0 [label="x"] A0 -> A9 }`)
	out, _, err = execute(t, "", "lint", "--summary=false", bad)
	require.Error(t, err)
	assert.Contains(t, out, "edge_endpoint_declared")
}

func TestDialectsCommand(t *testing.T) {
	out, _, err := execute(t, "", "dialects")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "class"))
	assert.Contains(t, lines[1], "[(")
}

func TestNewLogger(t *testing.T) {
	assert.False(t, newLogger(false, false).Core().Enabled(zapcore.ErrorLevel))
	assert.True(t, newLogger(true, false).Core().Enabled(zapcore.InfoLevel))
	assert.False(t, newLogger(true, false).Core().Enabled(zapcore.DebugLevel))
	assert.True(t, newLogger(false, true).Core().Enabled(zapcore.DebugLevel))
}
