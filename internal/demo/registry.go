package demo

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds demos by name. Names sort in build order: "demo7.1"
// follows "demo7" and precedes "demo8".
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds demos. Nothing is added if any demo is nil, unnamed or
// already registered.
func (r *Registry) Register(ds ...Demo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		if d == nil {
			return fmt.Errorf("cannot register nil demo")
		}
		name := d.Name()
		switch {
		case name == "":
			return fmt.Errorf("demo name cannot be empty")
		case seen[name] || r.demos[name] != nil:
			return fmt.Errorf("demo already registered: %s", name)
		}
		seen[name] = true
	}
	for _, d := range ds {
		r.demos[d.Name()] = d
	}
	return nil
}

// Get returns a demo by name.
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("demo not found: %s", name)
	}
	return d, nil
}

// List returns the registered names in build order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

// Count returns the number of registered demos.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.demos)
}

// Select returns the named demos in build order, or all of them when no
// names are given. Duplicate names select a demo once; unknown names are
// reported together.
func (r *Registry) Select(names ...string) ([]Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[string]bool, len(names))
	var missing []string
	for _, name := range names {
		if _, ok := r.demos[name]; !ok {
			missing = append(missing, name)
		}
		want[name] = true
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("demo not found: %s", strings.Join(missing, ", "))
	}

	var out []Demo
	for _, name := range r.sortedNames() {
		if len(names) == 0 || want[name] {
			out = append(out, r.demos[name])
		}
	}
	return out, nil
}

// sortedNames requires r.mu to be held.
func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry holds the built-in demos.
var DefaultRegistry = NewRegistry()

func init() {
	if err := DefaultRegistry.Register(builtins...); err != nil {
		panic(err)
	}
}

// Get returns a demo from the default registry.
func Get(name string) (Demo, error) {
	return DefaultRegistry.Get(name)
}

// List returns all demo names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}
