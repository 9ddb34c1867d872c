package dialect

import (
	"fmt"
	"strings"
)

// Dialect composes the notation lines of one diagram type into the body of
// a DOT digraph.
type Dialect interface {
	Name() string
	// Openers lists the bracket characters that delimit entities.
	Openers() string
	Compose(lines []string, opts Options) (string, error)
}

// Registry maps diagram type names to dialects.
type Registry struct {
	dialects map[string]Dialect
	names    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{dialects: make(map[string]Dialect)}
}

// Register adds d under its own name and any aliases. Names are matched
// case-insensitively. Only the canonical name is listed by Names.
func (r *Registry) Register(d Dialect, aliases ...string) {
	name := strings.ToLower(d.Name())
	if _, exists := r.dialects[name]; !exists {
		r.names = append(r.names, name)
	}
	r.dialects[name] = d
	for _, alias := range aliases {
		r.dialects[strings.ToLower(alias)] = d
	}
}

// Lookup returns the dialect registered under name.
func (r *Registry) Lookup(name string) (Dialect, error) {
	if d, ok := r.dialects[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unknown diagram type %q (want one of: %s)", name, strings.Join(r.names, ", "))
}

// Names returns the canonical dialect names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// NewDefaultRegistry creates a Registry holding the five built-in dialects.
// "activity" is an alias of "state".
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Class{})
	r.Register(UseCase{}, "use-case")
	r.Register(State{}, "activity")
	r.Register(Deployment{})
	r.Register(Package{})
	return r
}

var builtin = NewDefaultRegistry()

// Lookup resolves a built-in dialect by name.
func Lookup(name string) (Dialect, error) { return builtin.Lookup(name) }

// Names lists the built-in dialects.
func Names() []string { return builtin.Names() }
