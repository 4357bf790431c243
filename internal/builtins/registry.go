// Package builtins implements the host-provided callables exposed to
// lugha programs through the pre-populated global SymbolTable (spec.md
// §4.6), grouped into categories the way the teacher repo's builtin
// registry does.
package builtins

import (
	"sort"

	"github.com/otieno-dev/lugha/internal/runtime"
)

// Category groups built-in functions for introspection (e.g. a future
// "orodhesha() built-ins by category" REPL command).
type Category string

const (
	CategoryIO        Category = "io"
	CategoryPredicate Category = "predicate"
	CategoryArray     Category = "array"
	CategoryMath      Category = "math"
	CategorySystem    Category = "system"
)

// Entry is one built-in function's metadata plus its handler.
type Entry struct {
	Name        string
	ParamNames  []string
	Category    Category
	Description string
	Handler     runtime.BuiltinHandler
}

// Registry is the set of registered built-ins, queryable by name or
// category.
type Registry struct {
	entries    map[string]Entry
	categories map[Category][]string
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]Entry),
		categories: make(map[Category][]string),
	}
}

// Add records an entry in the registry, keyed by name. A duplicate name
// replaces the existing entry without duplicating the category listing.
func (r *Registry) Add(e Entry) {
	if _, exists := r.entries[e.Name]; !exists {
		r.categories[e.Category] = append(r.categories[e.Category], e.Name)
	}
	r.entries[e.Name] = e
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns every registered built-in name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category returns the names registered under cat, sorted.
func (r *Registry) Category(cat Category) []string {
	names := append([]string(nil), r.categories[cat]...)
	sort.Strings(names)
	return names
}
