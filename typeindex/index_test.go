package typeindex

import (
	"reflect"
	"testing"

	"github.com/alecthomas/assert/v2"
)

type SendMode int

const (
	Unreliable SendMode = iota
	Reliable
)

type header struct {
	Tag  int
	Mode SendMode
}

type message struct {
	Header *header
	Body   string
	next   *message
}

func sendModeMembers() map[string]SendMode {
	return map[string]SendMode{
		"Unreliable": Unreliable,
		"Reliable":   Reliable,
	}
}

func TestMembersVisibility(t *testing.T) {
	registry := NewRegistry()

	idx := New(reflect.TypeFor[message](), Exported, registry)

	names := memberNames(idx.Members(reflect.TypeFor[message]()))
	assert.Equal(t, []string{"Header", "Body"}, names)

	all := New(reflect.TypeFor[message](), All, registry)

	names = memberNames(all.Members(reflect.TypeFor[message]()))
	assert.Equal(t, []string{"Header", "Body", "next"}, names)
}

func TestMembersDereferencesPointers(t *testing.T) {
	idx := New(reflect.TypeFor[message](), Exported, NewRegistry())

	names := memberNames(idx.Members(reflect.TypeFor[*header]()))
	assert.Equal(t, []string{"Tag", "Mode"}, names)
}

func TestMembersNonStruct(t *testing.T) {
	idx := New(reflect.TypeFor[message](), Exported, NewRegistry())

	assert.Equal(t, 0, len(idx.Members(reflect.TypeFor[int]())))
}

func TestEnumDiscovery(t *testing.T) {
	registry := NewRegistry()
	Register(registry, sendModeMembers())

	idx := New(reflect.TypeFor[message](), Exported, registry)

	enums := idx.EnumsNamed("SendMode")
	assert.Equal(t, 1, len(enums))
	assert.Equal(t, reflect.TypeFor[SendMode](), enums[0].Type)

	value, ok := enums[0].Members["Reliable"]
	assert.True(t, ok)
	assert.Equal(t, int64(Reliable), value.Int())
}

func TestEnumNotReachable(t *testing.T) {
	registry := NewRegistry()
	Register(registry, sendModeMembers())

	type plain struct {
		Name string
	}

	idx := New(reflect.TypeFor[plain](), Exported, registry)

	assert.Equal(t, 0, len(idx.EnumsNamed("SendMode")))
}

func TestEnumBehindUnexportedField(t *testing.T) {
	registry := NewRegistry()
	Register(registry, sendModeMembers())

	type wrapper struct {
		inner header
	}

	// Exported visibility cannot reach the enum through an unexported field.
	idx := New(reflect.TypeFor[wrapper](), Exported, registry)
	assert.Equal(t, 0, len(idx.EnumsNamed("SendMode")))

	idx = New(reflect.TypeFor[wrapper](), All, registry)
	assert.Equal(t, 1, len(idx.EnumsNamed("SendMode")))
}

func TestDiscoveryHandlesCycles(t *testing.T) {
	registry := NewRegistry()
	Register(registry, sendModeMembers())

	// message refers to itself through an unexported pointer field.
	idx := New(reflect.TypeFor[message](), All, registry)
	assert.Equal(t, 1, len(idx.EnumsNamed("SendMode")))
}

func TestRegisterUnnamedTypePanics(t *testing.T) {
	defer func() {
		assert.NotZero(t, recover())
	}()

	Register(NewRegistry(), map[string]struct{ X int }{"a": {X: 1}})
}

func memberNames(members []Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}

	return names
}
