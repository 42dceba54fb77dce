// File: envconf/doc.go

// Package envconf validates process configuration taken from environment
// variables exactly once at startup, then exposes type-checked read access.
//
// Applications declare the environment variables they expect, with a type,
// an optional default, and production-criticality rules.  A single call to
// Validate resolves every declaration, collects every issue across all of
// them, and fails closed: either the whole configuration is usable or none
// of it is.  After a successful validation the registry is frozen and the
// typed getters become available.
//
// Features:
//   - Declarations with five value types: string, bool, int, float, decimal
//   - Single-pass validation that reports all issues at once
//   - One-shot lifecycle; re-validation is rejected
//   - Canonical write-back of resolved values into the environment
//     (booleans are rewritten to the literals "TRUE"/"FALSE")
//   - Secret masking in diagnostic snapshots
//   - Production-criticality checks that warn, never fail
//   - Builder pattern for initialization, optional dotenv preload
//   - Struct scanning via `env:"..."` tags
//
// Quick Start:
//
//	cfg, err := envconf.NewBuilder().
//	    WithDotEnv(".env").
//	    Declare(
//	        envconf.NewInt("PORT", "HTTP listen port", envconf.WithDefault("8080"), envconf.Insecure()),
//	        envconf.NewString("DB_PASSWORD", "database password"),
//	        envconf.NewBool("DEBUG", "verbose logging", envconf.WithDefault("false"), envconf.ProdCritical("FALSE")),
//	    ).
//	    BuildAndValidate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := cfg.Int("PORT")
//	debug, _ := cfg.Bool("DEBUG")
//
// Thread Safety:
// All operations are guarded by a read-write mutex.  The intended usage is
// still single-threaded startup: register, validate once, then read from
// any number of goroutines.
package envconf
