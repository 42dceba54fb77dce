// File: envconf/builder.go
package envconf

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Builder provides a fluent interface for assembling a Config.
type Builder struct {
	cfg    *Config
	dotenv []string
	err    error
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{cfg: New()}
}

// WithEnvironment sets the raw value store.  Defaults to the process
// environment.
func (b *Builder) WithEnvironment(env Environment) *Builder {
	if env != nil {
		b.cfg.env = env
	}
	return b
}

// WithLogger sets the logger used for production-criticality warnings.
// Defaults to a no-op logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.cfg.logger = logger
	}
	return b
}

// WithDotEnv loads the given dotenv files into the process environment
// before validation.  Missing files are skipped; parse failures abort the
// build.  Values land in the process environment itself, matching how the
// declared variables are read.
func (b *Builder) WithDotEnv(paths ...string) *Builder {
	b.dotenv = append(b.dotenv, paths...)
	return b
}

// Declare registers declarations on the Config being built.
func (b *Builder) Declare(decls ...Declaration) *Builder {
	b.cfg.Register(decls...)
	return b
}

// Build loads any dotenv files and returns the Config.  Validation is a
// separate, explicit step.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	for _, path := range b.dotenv {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load dotenv file %q: %w", path, err)
		}
	}

	return b.cfg, nil
}

// BuildAndValidate builds the Config and runs validation in one call.
// On validation failure the Config is returned alongside the error so the
// caller can still inspect it; it is not readable.
func (b *Builder) BuildAndValidate() (*Config, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MustBuild is like BuildAndValidate but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.BuildAndValidate()
	if err != nil {
		panic(fmt.Sprintf("envconf build failed: %v", err))
	}
	return cfg
}
