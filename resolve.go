// File: envconf/resolve.go
package envconf

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// unknownEnv is the placeholder name used in issues for a declaration
// that has no name of its own.
const unknownEnv = "Unknown"

// structuralIssue checks the declaration itself, before any environment
// lookup.  It returns the first problem found, or nil.
func structuralIssue(d Declaration) *Issue {
	if d.Name == "" {
		return &Issue{Env: unknownEnv, Description: "'name' is not configured."}
	}
	if d.Description == "" {
		return &Issue{Env: d.Name, Description: "'description' is not configured."}
	}
	if d.Type == TypeUnset {
		return &Issue{Env: d.Name, Description: "'type' is not configured."}
	}
	if d.ProdCritical && d.ProdExpected == "" {
		return &Issue{Env: d.Name, Description: "'prod_critical' is set but 'prod_expected' is not configured."}
	}
	if !d.Type.known() {
		return &Issue{Env: d.Name, Description: "Unsupported type."}
	}
	return nil
}

// resolve turns one declaration plus the environment into either a resolved
// entry or exactly one issue.  Resolution is atomic per declaration: on any
// failure nothing is written back and no entry is produced.
func (c *Config) resolve(d Declaration) (resolvedEnv, *Issue) {
	if issue := structuralIssue(d); issue != nil {
		return resolvedEnv{}, issue
	}

	raw, present := c.env.Lookup(d.Name)
	if !present {
		if d.Default == "" {
			return resolvedEnv{}, &Issue{Env: d.Name, Description: "Required env has not been set."}
		}
		raw = d.Default
	}

	var value any
	switch d.Type {
	case TypeBool:
		b := strings.EqualFold(raw, "true")
		value = b
		// Canonical raw form, regardless of original casing.
		if b {
			raw = "TRUE"
		} else {
			raw = "FALSE"
		}
	case TypeString:
		value = raw
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return resolvedEnv{}, &Issue{Env: d.Name, Description: "Type validation failed."}
		}
		value = n
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return resolvedEnv{}, &Issue{Env: d.Name, Description: "Type validation failed."}
		}
		value = f
	case TypeDecimal:
		dec, err := decimal.NewFromString(raw)
		if err != nil {
			return resolvedEnv{}, &Issue{Env: d.Name, Description: "Type validation failed."}
		}
		value = dec
	}

	// Write the canonical form back so every later reader of the raw
	// environment observes the same value the getters report.
	c.env.Set(d.Name, raw)

	if d.ProdCritical && raw != d.ProdExpected {
		c.logger.Warn("production critical env is not set to the expected value",
			zap.String("env", d.Name))
	}

	return resolvedEnv{decl: d, value: value, raw: raw}, nil
}
