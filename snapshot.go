// File: envconf/snapshot.go
package envconf

import (
	"io"

	"github.com/BurntSushi/toml"
)

// maskToken replaces secure values in snapshots.
const maskToken = "***"

// ConfiguredEnv is one entry of a diagnostic snapshot.  For a secure
// declaration the Default, ProdExpected, Value, and Raw fields each hold
// the mask token instead of the real value.
type ConfiguredEnv struct {
	Name         string `toml:"name"`
	Description  string `toml:"description"`
	Type         string `toml:"type"`
	Default      string `toml:"default"`
	Secure       bool   `toml:"secure"`
	ProdCritical bool   `toml:"prod_critical"`
	ProdExpected string `toml:"prod_expected"`
	Value        any    `toml:"value"`
	Raw          string `toml:"raw"`
}

// Snapshot returns a sanitized view of every resolved variable, in
// registration order.  It requires a successfully validated Config.
func (c *Config) Snapshot() ([]ConfiguredEnv, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.validated {
		return nil, ErrNotValidated
	}

	out := make([]ConfiguredEnv, 0, len(c.order))
	for _, name := range c.order {
		entry := c.resolved[name]
		d := entry.decl

		record := ConfiguredEnv{
			Name:         d.Name,
			Description:  d.Description,
			Type:         d.Type.String(),
			Default:      d.Default,
			Secure:       d.Secure,
			ProdCritical: d.ProdCritical,
			ProdExpected: d.ProdExpected,
			Value:        entry.value,
			Raw:          entry.raw,
		}
		if d.Secure {
			record.Default = maskToken
			record.ProdExpected = maskToken
			record.Value = maskToken
			record.Raw = maskToken
		}
		out = append(out, record)
	}

	return out, nil
}

// DumpTOML writes the masked snapshot to w as TOML, one [[env]] table per
// variable.  Safe for logs and support bundles since secure values are
// already masked.
func (c *Config) DumpTOML(w io.Writer) error {
	snapshot, err := c.Snapshot()
	if err != nil {
		return err
	}

	doc := struct {
		Env []ConfiguredEnv `toml:"env"`
	}{Env: snapshot}

	return toml.NewEncoder(w).Encode(doc)
}
