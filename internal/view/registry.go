package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Registry maps post-processor names to statically registered callables.
// Registration happens at construction time; lookups at render time are
// read-only, so no locking is needed once the module is wired.
type Registry struct {
	processors map[string]interfaces.PostProcessor
}

// NewRegistry constructs an empty processor registry.
func NewRegistry() *Registry {
	return &Registry{
		processors: map[string]interfaces.PostProcessor{},
	}
}

// Register binds fn to name. Empty names, nil callables, and duplicate
// registrations are rejected.
func (r *Registry) Register(name string, fn interfaces.PostProcessor) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrProcessorName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrProcessorNil, name)
	}
	if _, exists := r.processors[name]; exists {
		return fmt.Errorf("%w: %s", ErrProcessorConflict, name)
	}
	r.processors[name] = fn
	return nil
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (interfaces.PostProcessor, bool) {
	fn, ok := r.processors[strings.TrimSpace(name)]
	return fn, ok
}

// Names lists registered processor names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
