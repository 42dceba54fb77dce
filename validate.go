// File: envconf/validate.go
package envconf

// Validate resolves every registered declaration, in registration order,
// and collects every issue across all of them before failing.  It must be
// called exactly once per Config:
//
//   - A second call returns ErrAlreadyValidated no matter how the first
//     one ended.  A failed validation permanently blocks retry; fix the
//     environment and restart the process.
//   - On failure the aggregated issues are returned as a *ValidationError
//     and no configuration is readable.
//   - On success the resolved map is frozen and the getters unlock.
func (c *Config) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attempted {
		return ErrAlreadyValidated
	}
	c.attempted = true

	var issues []Issue
	for _, d := range c.decls {
		entry, issue := c.resolve(d)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		// Duplicate names overwrite in place, keeping the position of
		// the first occurrence.
		if _, seen := c.resolved[entry.decl.Name]; !seen {
			c.order = append(c.order, entry.decl.Name)
		}
		c.resolved[entry.decl.Name] = entry
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}

	c.validated = true
	return nil
}

// MustValidate is like Validate but panics on error.  Intended for main()
// where a configuration problem should stop the process immediately.
func (c *Config) MustValidate() {
	if err := c.Validate(); err != nil {
		panic("envconf: validation failed: " + err.Error())
	}
}
