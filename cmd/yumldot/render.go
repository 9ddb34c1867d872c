package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/martinemde/yumldot/document"
	"github.com/martinemde/yumldot/dot"
)

var renderCmd = &cobra.Command{
	Use:   "render [file.yuml|-]",
	Short: "Translate a yUML document to DOT",
	Long:  "Read a yUML document from a file or stdin and write the Graphviz DOT translation.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("type", "t", "", "Diagram type (overrides the {type:...} directive)")
	renderCmd.Flags().StringP("dir", "d", "", "Layout direction: TB, LR, BT, RL or leftToRight, topDown, ...")
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().Bool("body-only", false, "Write only the digraph body, without the opening block")
	renderCmd.Flags().Bool("check", false, "Re-parse the generated DOT and fail on lint errors")

	_ = viper.BindPFlag("type", renderCmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("dir", renderCmd.Flags().Lookup("dir"))

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	bodyOnly, _ := cmd.Flags().GetBool("body-only")
	check, _ := cmd.Flags().GetBool("check")

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	src, err := readSource(cmd, name)
	if err != nil {
		return err
	}

	res, err := document.Render(string(src), document.Options{
		Type:      viper.GetString("type"),
		Direction: viper.GetString("dir"),
		BodyOnly:  bodyOnly,
		FontName:  viper.GetString("font"),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	logger.Info("rendered",
		zap.String("source", name),
		zap.String("type", res.Type),
		zap.String("direction", res.Direction),
		zap.Int("expressions", res.Expressions),
	)

	if check {
		if err := checkOutput(cmd, res); err != nil {
			return err
		}
	}

	if outPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), res.DOT)
		return err
	}
	if err := os.WriteFile(outPath, []byte(res.DOT), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading diagram file: %w", err)
	}
	return src, nil
}

// checkOutput parses the generated document back and runs the DOT lint
// rules over it.
func checkOutput(cmd *cobra.Command, res *document.Result) error {
	src := res.DOT
	if src == res.Body {
		src = "digraph G {\n" + src
	}
	graph, err := dot.Parse([]byte(src))
	if err != nil {
		return fmt.Errorf("generated DOT does not parse: %w", err)
	}
	diags, err := dot.ValidateOrError(graph)
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "[check] %s\n", d)
	}
	if err != nil {
		return fmt.Errorf("generated DOT failed lint: %w", err)
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(cmd.ErrOrStderr(), "[check] ok (%d nodes, %d edges)\n", len(graph.Nodes), len(graph.Edges))
	}
	return nil
}
