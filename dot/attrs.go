package dot

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NodeAttrs are the attributes of a node statement. Zero fields are omitted
// when formatted, except the label: an empty label must be written out or
// the renderer falls back to the node ID.
type NodeAttrs struct {
	Shape     string  `dot:"shape"`
	Height    float64 `dot:"height"`
	Width     float64 `dot:"width"`
	FontSize  int     `dot:"fontsize"`
	Margin    string  `dot:"margin"`
	Label     string  `dot:"label,keep"`
	Style     string  `dot:"style"`
	FillColor string  `dot:"fillcolor"`
	FontColor string  `dot:"fontcolor"`
}

func (a NodeAttrs) String() string { return FormatAttrs(a) }

// EdgeAttrs are the attributes of an edge statement.
type EdgeAttrs struct {
	Dir           string `dot:"dir"`
	Style         string `dot:"style"`
	ArrowTail     string `dot:"arrowtail"`
	TailLabel     string `dot:"taillabel"`
	ArrowHead     string `dot:"arrowhead"`
	HeadLabel     string `dot:"headlabel"`
	Label         string `dot:"label"`
	LabelDistance int    `dot:"labeldistance"`
	FontSize      int    `dot:"fontsize"`
}

func (a EdgeAttrs) String() string { return FormatAttrs(a) }

// FormatAttrs renders a struct whose fields carry `dot:"name"` tags as a DOT
// attribute list: [name="text", size=10]. Strings are quoted, numbers are
// not. Zero-valued fields are skipped unless the tag has the "keep" option;
// untagged fields and fields tagged "-" are ignored. v must be a struct or a
// pointer to one.
func FormatAttrs(v any) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("dot: FormatAttrs of non-struct %T", v))
	}
	rt := rv.Type()

	parts := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag, ok := rt.Field(i).Tag.Lookup("dot")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		field := rv.Field(i)
		if field.IsZero() && opts != "keep" {
			continue
		}
		parts = append(parts, name+"="+formatField(field))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatField(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return Quote(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return FormatNumber(v.Float())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		panic(fmt.Sprintf("dot: unsupported attribute type %s", v.Type()))
	}
}

// FormatNumber formats f in the shortest form that reads back exactly.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Quote returns s as a DOT double-quoted string. Quotes are escaped and real
// line breaks become \n; backslash escapes already present in s (\n, \l, \{)
// are left for the renderer.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\\':
			if i+1 == len(s) {
				// a lone trailing backslash would escape the closing quote
				b.WriteString(`\\`)
				continue
			}
			b.WriteByte(ch)
			i++
			b.WriteByte(s[i])
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
