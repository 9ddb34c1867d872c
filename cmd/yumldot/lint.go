package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/martinemde/yumldot/dot"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file.dot>",
	Short: "Check a DOT document",
	Long:  "Parse a DOT document and report lint diagnostics. Exits non-zero on errors.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().Bool("summary", false, "Print the nodes of the graph")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	summary, _ := cmd.Flags().GetBool("summary")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading DOT file: %w", err)
	}
	graph, err := dot.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if summary {
		printGraphSummary(out, graph)
	}

	diags, err := dot.ValidateOrError(graph)
	for _, d := range diags {
		fmt.Fprintln(out, d)
	}
	if err != nil {
		return fmt.Errorf("%s: %d diagnostic(s), lint failed", args[0], len(diags))
	}
	fmt.Fprintf(out, "%s: ok (%d nodes, %d edges, %d diagnostic(s))\n", args[0], len(graph.Nodes), len(graph.Edges), len(diags))
	return nil
}

// printGraphSummary prints a summary of the parsed graph.
func printGraphSummary(w io.Writer, graph *dot.Graph) {
	fmt.Fprintf(w, "  Name: %s\n", graph.Name)
	fmt.Fprintf(w, "  Nodes: %d\n", len(graph.Nodes))
	fmt.Fprintf(w, "  Edges: %d\n", len(graph.Edges))
	if dir, ok := graph.GraphAttr("rankdir"); ok {
		fmt.Fprintf(w, "  Direction: %s\n", dir.Str)
	}

	for _, node := range graph.Nodes {
		label := node.ID
		if labelAttr, ok := node.Attr("label"); ok && labelAttr.Str != "" {
			label = labelAttr.Str
		}
		shape := "ellipse"
		if shapeAttr, ok := node.Attr("shape"); ok {
			shape = shapeAttr.Str
		}
		fmt.Fprintf(w, "    - %s [%q] (%s)\n", node.ID, label, shape)
	}
}
