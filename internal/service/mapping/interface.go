// Package mapping provides interfaces for types to be in compliance with.
package mapping

// Generator defines a set of methods for types implementing Generator.
type Generator interface {
	Generate() string
}
