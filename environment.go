// File: envconf/environment.go
package envconf

import "os"

// Environment is the store of raw configuration values.  Validation reads
// every declared variable from it and writes the canonical raw form back,
// so later readers of the same store observe normalized values.
type Environment interface {
	// Lookup returns the raw value for name and whether it is present.
	Lookup(name string) (string, bool)
	// Set writes a raw value under name.
	Set(name, value string)
}

// osEnvironment is the default Environment backed by the process environment.
type osEnvironment struct{}

func (osEnvironment) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

func (osEnvironment) Set(name, value string) { os.Setenv(name, value) }

// MapEnvironment is an in-memory Environment, useful in tests or when the
// raw values come from somewhere other than the process environment.
type MapEnvironment map[string]string

// Lookup returns the value for name and whether it is present.
func (m MapEnvironment) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Set writes a value under name.
func (m MapEnvironment) Set(name, value string) { m[name] = value }
