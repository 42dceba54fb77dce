// File: envconf/convenience.go
package envconf

import "github.com/shopspring/decimal"

// std is the package-level registry for applications that keep one
// process-wide configuration.  It follows the same one-shot lifecycle as
// any other Config; tests that need a clean slate build their own Config
// through New or NewBuilder instead.
var std = New()

// Register appends declarations to the package-level registry.
func Register(decls ...Declaration) { std.Register(decls...) }

// Validate validates the package-level registry.  See Config.Validate.
func Validate() error { return std.Validate() }

// MustValidate is like Validate but panics on error.
func MustValidate() { std.MustValidate() }

// Raw returns the canonical raw string from the package-level registry.
func Raw(name string) (string, error) { return std.Raw(name) }

// String returns a string value from the package-level registry.
func String(name string) (string, error) { return std.String(name) }

// Bool returns a bool value from the package-level registry.
func Bool(name string) (bool, error) { return std.Bool(name) }

// Int returns an int value from the package-level registry.
func Int(name string) (int64, error) { return std.Int(name) }

// Float returns a float value from the package-level registry.
func Float(name string) (float64, error) { return std.Float(name) }

// Decimal returns a decimal value from the package-level registry.
func Decimal(name string) (decimal.Decimal, error) { return std.Decimal(name) }

// Snapshot returns the masked snapshot of the package-level registry.
func Snapshot() ([]ConfiguredEnv, error) { return std.Snapshot() }
