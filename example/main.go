// File: envconf/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/envware/envconf"
)

func main() {
	// Simulate the deployment environment.  In a real process these come
	// from the orchestrator, a dotenv file, or the shell.
	os.Setenv("PORT", "9090")
	os.Setenv("DEBUG", "True")
	os.Setenv("DB_PASSWORD", "hunter2")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DEBUG")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("FEE_RATE")
	}()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := envconf.NewBuilder().
		WithLogger(logger).
		WithDotEnv(".env"). // optional, skipped when absent
		Declare(
			envconf.NewInt("PORT", "HTTP listen port", envconf.WithDefault("8080"), envconf.Insecure()),
			envconf.NewBool("DEBUG", "verbose logging", envconf.WithDefault("false"), envconf.Insecure(), envconf.ProdCritical("FALSE")),
			envconf.NewString("DB_PASSWORD", "database password"),
			envconf.NewDecimal("FEE_RATE", "transaction fee rate", envconf.WithDefault("0.025"), envconf.Insecure()),
		).
		BuildAndValidate()
	if err != nil {
		log.Fatalf("configuration invalid: %v", err)
	}

	port, _ := cfg.Int("PORT")
	debug, _ := cfg.Bool("DEBUG")
	fee, _ := cfg.Decimal("FEE_RATE")
	fmt.Printf("port=%d debug=%v fee=%s\n", port, debug, fee)

	// DEBUG was set to "True"; the canonical form is written back.
	fmt.Printf("canonical DEBUG in environment: %s\n", os.Getenv("DEBUG"))

	// Secure values are masked in diagnostics.
	fmt.Println("--- snapshot ---")
	if err := cfg.DumpTOML(os.Stdout); err != nil {
		log.Fatalf("snapshot dump failed: %v", err)
	}
}
