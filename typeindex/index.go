// Package typeindex discovers the property graph of a predicate target type.
// It lists the readable members of a struct type under a visibility policy and
// collects every enum type reachable from the target by following property
// types transitively.
package typeindex

import "reflect"

// Visibility controls which struct fields are visible to the filter language.
type Visibility int

const (
	// Exported restricts resolution to exported fields.
	Exported Visibility = iota
	// All also exposes unexported fields. Such fields are readable through
	// the compiled predicate but their values never escape it.
	All
)

// Member describes one readable property of a struct type.
type Member struct {
	Name  string
	Type  reflect.Type
	Index int
}

// Enum describes one enum type discovered in the reachable-type graph.
type Enum struct {
	Type    reflect.Type
	Members map[string]reflect.Value
}

// Index is the reachable-type index for one predicate target type. It is
// immutable after construction and may be shared across any number of
// compiles against the same target type.
type Index struct {
	target   reflect.Type
	vis      Visibility
	enums    map[string][]Enum
	registry *Registry
}

// New builds the reachable-type index for target. It walks target's readable
// properties breadth-first, following every property type transitively, and
// records each registered enum type it encounters under the type's short
// name. A nil registry means the package default.
func New(target reflect.Type, vis Visibility, registry *Registry) *Index {
	if registry == nil {
		registry = Default()
	}

	idx := &Index{
		target:   target,
		vis:      vis,
		enums:    make(map[string][]Enum),
		registry: registry,
	}
	idx.discover()

	return idx
}

// Target returns the predicate target type the index was built for.
func (idx *Index) Target() reflect.Type {
	return idx.target
}

// Visibility returns the member visibility policy the index was built with.
func (idx *Index) Visibility() Visibility {
	return idx.vis
}

// EnumsNamed returns every reachable enum type whose short name matches name.
// Distinct types sharing a short name are all returned; disambiguation is the
// caller's concern.
func (idx *Index) EnumsNamed(name string) []Enum {
	return idx.enums[name]
}

// Members lists the readable properties of t under the index's visibility
// policy. Pointer types are dereferenced; non-struct types have no members.
func (idx *Index) Members(t reflect.Type) []Member {
	return members(t, idx.vis)
}

// discover walks the property graph from the target type and collects
// registered enum types.
func (idx *Index) discover() {
	visited := make(map[reflect.Type]bool)
	queue := []reflect.Type{idx.target}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		t = deref(t)
		if visited[t] {
			continue
		}

		visited[t] = true

		if values, ok := idx.registry.members(t); ok {
			idx.enums[t.Name()] = append(idx.enums[t.Name()], Enum{Type: t, Members: values})
			continue
		}

		for _, member := range members(t, idx.vis) {
			queue = append(queue, member.Type)
		}
	}
}

func members(t reflect.Type, vis Visibility) []Member {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil
	}

	result := make([]Member, 0, t.NumField())

	for i := range t.NumField() {
		field := t.Field(i)
		if vis == Exported && !field.IsExported() {
			continue
		}

		result = append(result, Member{Name: field.Name, Type: field.Type, Index: i})
	}

	return result
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
