package typeindex

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry holds the named constants of enum types. Go reflection cannot
// enumerate constants, so enum members are registered explicitly, keyed by
// their Go type.
type Registry struct {
	mu    sync.RWMutex
	enums map[reflect.Type]map[string]reflect.Value
}

// NewRegistry creates an empty enum registry.
func NewRegistry() *Registry {
	return &Registry{enums: make(map[reflect.Type]map[string]reflect.Value)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide enum registry used when a compile does not
// supply its own.
func Default() *Registry {
	return defaultRegistry
}

// Register records the named members of enum type E in the registry.
// Registering the same type again replaces its members. E must be a named
// (defined) type; an unnamed type has no short name for expressions to
// reference and panics.
func Register[E any](r *Registry, members map[string]E) {
	t := reflect.TypeFor[E]()
	if t.Name() == "" {
		panic(fmt.Sprintf("typeindex: cannot register unnamed type %s as enum", t))
	}

	values := make(map[string]reflect.Value, len(members))
	for name, member := range members {
		values[name] = reflect.ValueOf(member)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.enums[t] = values
}

// members returns the registered constants of t, or false if t is not a
// registered enum type.
func (r *Registry) members(t reflect.Type) (map[string]reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, ok := r.enums[t]

	return values, ok
}
