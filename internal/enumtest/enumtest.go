// Package enumtest provides an enum type defined outside the test packages,
// so tests can build type graphs containing two distinct enum types that
// share a short name.
package enumtest

// Mode is a transport mode enum.
type Mode int

const (
	Slow Mode = iota
	Fast
)

// Members returns the named constants of Mode for registration.
func Members() map[string]Mode {
	return map[string]Mode{
		"Slow": Slow,
		"Fast": Fast,
	}
}
