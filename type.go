// File: envconf/type.go
package envconf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// lookup fetches a resolved entry, enforcing the validated-state and
// presence checks shared by every accessor.  Callers must hold c.mu.
func (c *Config) lookup(name string) (resolvedEnv, error) {
	if !c.validated {
		return resolvedEnv{}, ErrNotValidated
	}
	entry, ok := c.resolved[name]
	if !ok {
		return resolvedEnv{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return entry, nil
}

// typed is lookup plus the declared-type check.
func (c *Config) typed(name string, want Type) (resolvedEnv, error) {
	entry, err := c.lookup(name)
	if err != nil {
		return resolvedEnv{}, err
	}
	if entry.decl.Type != want {
		return resolvedEnv{}, fmt.Errorf("%w: env config %s is not a %s", ErrIncorrectType, name, want)
	}
	return entry, nil
}

// Raw returns the canonical raw string for a resolved variable.  Prefer
// the typed getters; they add the declared-type check on top.
func (c *Config) Raw(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return entry.raw, nil
}

// String returns the resolved value of a string variable.
func (c *Config) String(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.typed(name, TypeString)
	if err != nil {
		return "", err
	}
	return entry.value.(string), nil
}

// Bool returns the resolved value of a bool variable.
func (c *Config) Bool(name string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.typed(name, TypeBool)
	if err != nil {
		return false, err
	}
	return entry.value.(bool), nil
}

// Int returns the resolved value of an int variable.
func (c *Config) Int(name string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.typed(name, TypeInt)
	if err != nil {
		return 0, err
	}
	return entry.value.(int64), nil
}

// Float returns the resolved value of a float variable.
func (c *Config) Float(name string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.typed(name, TypeFloat)
	if err != nil {
		return 0, err
	}
	return entry.value.(float64), nil
}

// Decimal returns the resolved value of a decimal variable.
func (c *Config) Decimal(name string) (decimal.Decimal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, err := c.typed(name, TypeDecimal)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return entry.value.(decimal.Decimal), nil
}
