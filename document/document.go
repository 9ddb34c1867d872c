// Package document renders a complete yUML document: comment lines and
// their {type:...} and {direction:...} directives, comma separated
// expressions, and the digraph block around the composed body.
package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/martinemde/yumldot/dialect"
	"github.com/martinemde/yumldot/dot"
	"github.com/martinemde/yumldot/notation"
)

const (
	DefaultType      = "class"
	DefaultDirection = "TB"
	DefaultFontName  = "Helvetica"
)

// Options controls rendering. Type and Direction override the document's
// own directives when set.
type Options struct {
	Type      string
	Direction string
	BodyOnly  bool
	FontName  string
	Logger    *zap.Logger
}

// Result is a rendered document.
type Result struct {
	Type        string // dialect that composed the body
	Direction   string // rankdir
	Expressions int    // notation expressions composed
	Body        string // dialect output, ending with the closing brace
	DOT         string // Body, wrapped in a digraph block unless BodyOnly
}

var directivePattern = regexp.MustCompile(`(?i)\{\s*(type|direction|generate)\s*:\s*([^}]*?)\s*\}`)

var directions = map[string]string{
	"lefttoright": "LR",
	"righttoleft": "RL",
	"topdown":     "TB",
	"toptobottom": "TB",
	"bottomup":    "BT",
	"bottomtotop": "BT",
	"lr":          "LR",
	"rl":          "RL",
	"tb":          "TB",
	"bt":          "BT",
}

// NormalizeDirection maps the spelled-out directions used in documents
// (leftToRight, topDown, ...) and rankdir values in any case to a rankdir.
// Unknown values are returned unchanged.
func NormalizeDirection(dir string) string {
	if rankdir, ok := directions[strings.ToLower(strings.TrimSpace(dir))]; ok {
		return rankdir
	}
	return dir
}

type expression struct {
	text string
	line int // 1-based source line
}

// Render parses src and returns the composed DOT document.
func Render(src string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	kind, dir, body := scanDirectives(src, logger)
	if opts.Type != "" {
		kind = opts.Type
	}
	if opts.Direction != "" {
		dir = opts.Direction
	}
	dir = NormalizeDirection(dir)

	d, err := dialect.Lookup(kind)
	if err != nil {
		return nil, err
	}

	var exprs []expression
	for _, ln := range body {
		parts, err := notation.SplitExpressions(ln.text, d.Openers())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.line, err)
		}
		for _, p := range parts {
			exprs = append(exprs, expression{text: p, line: ln.line})
		}
	}

	lines := make([]string, len(exprs))
	for i, e := range exprs {
		lines[i] = e.text
	}
	out, err := d.Compose(lines, dialect.Options{Direction: dir, Logger: logger})
	if err != nil {
		return nil, locate(err, exprs)
	}

	res := &Result{
		Type:        d.Name(),
		Direction:   dir,
		Expressions: len(exprs),
		Body:        out,
		DOT:         out,
	}
	if !opts.BodyOnly {
		font := opts.FontName
		if font == "" {
			font = DefaultFontName
		}
		res.DOT = header(font) + out
	}
	logger.Debug("document rendered",
		zap.String("type", res.Type),
		zap.String("direction", res.Direction),
		zap.Int("expressions", res.Expressions),
	)
	return res, nil
}

// scanDirectives separates comment lines from notation lines and returns
// the type and direction the comments ask for.
func scanDirectives(src string, logger *zap.Logger) (kind, dir string, body []expression) {
	kind, dir = DefaultType, DefaultDirection
	for i, raw := range strings.Split(src, "\n") {
		text := strings.TrimSpace(raw)
		switch {
		case text == "":
		case strings.HasPrefix(text, "//"):
			for _, m := range directivePattern.FindAllStringSubmatch(text, -1) {
				key, value := strings.ToLower(m[1]), m[2]
				logger.Debug("directive", zap.Int("line", i+1), zap.String("key", key), zap.String("value", value))
				switch key {
				case "type":
					kind = value
				case "direction":
					dir = value
				}
			}
		default:
			body = append(body, expression{text: text, line: i + 1})
		}
	}
	return kind, dir, body
}

// locate prefixes a composition error with the source line of the
// expression it names.
func locate(err error, exprs []expression) error {
	var pe *notation.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	for _, e := range exprs {
		if e.text == pe.Line {
			return fmt.Errorf("line %d: %w", e.line, err)
		}
	}
	return err
}

type graphDefaults struct {
	BgColor  string `dot:"bgcolor"`
	FontName string `dot:"fontname"`
}

type nodeDefaults struct {
	Shape    string `dot:"shape"`
	Margin   int    `dot:"margin,keep"`
	FontName string `dot:"fontname"`
}

type edgeDefaults struct {
	FontName string `dot:"fontname"`
}

func header(font string) string {
	var b strings.Builder
	w := dot.NewWriter(&b)
	w.Open("G")
	w.Defaults("graph", graphDefaults{BgColor: "transparent", FontName: font})
	w.Defaults("node", nodeDefaults{Shape: "none", FontName: font})
	w.Defaults("edge", edgeDefaults{FontName: font})
	return b.String()
}
