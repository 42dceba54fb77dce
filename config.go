// File: envconf/config.go
package envconf

import (
	"sync"

	"go.uber.org/zap"
)

// resolvedEnv is one successfully resolved declaration: the declaration
// itself, the typed value, and the canonical raw string.  Immutable once
// created.
type resolvedEnv struct {
	decl  Declaration
	value any
	raw   string
}

// Config owns an ordered set of declarations and, after validation, the
// frozen map of resolved values.  The lifecycle is strictly one-shot:
// register any number of declarations, call Validate exactly once, then
// read.  There is no reset; tests build a fresh Config instead.
type Config struct {
	mu     sync.RWMutex
	env    Environment
	logger *zap.Logger

	decls     []Declaration
	attempted bool
	validated bool
	resolved  map[string]resolvedEnv
	order     []string // resolved names in first-registration order
}

// New creates a Config reading from the process environment and logging
// nowhere.  Use NewBuilder to customize either.
func New() *Config {
	return &Config{
		env:      osEnvironment{},
		logger:   zap.NewNop(),
		resolved: make(map[string]resolvedEnv),
	}
}

// Register appends declarations to the registry.  No uniqueness check is
// performed; duplicate names are resolved independently and the last one
// wins in the resolved map.  Declarations registered after validation are
// never resolved.
func (c *Config) Register(decls ...Declaration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.decls = append(c.decls, decls...)
}
