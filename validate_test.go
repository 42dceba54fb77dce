// File: envconf/validate_test.go
package envconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newTestConfig builds a Config backed by an in-memory environment so
// tests never touch the real process environment.
func newTestConfig(env MapEnvironment) *Config {
	cfg := New()
	cfg.env = env
	return cfg
}

func TestValidateLifecycle(t *testing.T) {
	t.Run("SecondCallAfterSuccess", func(t *testing.T) {
		cfg := newTestConfig(MapEnvironment{})
		cfg.Register(NewString("APP_NAME", "application name", WithDefault("demo")))

		require.NoError(t, cfg.Validate())
		assert.ErrorIs(t, cfg.Validate(), ErrAlreadyValidated)
	})

	t.Run("SecondCallAfterFailure", func(t *testing.T) {
		cfg := newTestConfig(MapEnvironment{})
		cfg.Register(NewString("MISSING", "required variable"))

		err := cfg.Validate()
		require.Error(t, err)

		// A failed attempt still burns the one shot, and nothing is
		// readable afterwards.
		assert.ErrorIs(t, cfg.Validate(), ErrAlreadyValidated)

		_, err = cfg.String("MISSING")
		assert.ErrorIs(t, err, ErrNotValidated)
	})

	t.Run("MustValidatePanics", func(t *testing.T) {
		cfg := newTestConfig(MapEnvironment{})
		cfg.Register(NewString("MISSING", "required variable"))

		assert.Panics(t, func() { cfg.MustValidate() })
	})

	t.Run("EmptyRegistryValidates", func(t *testing.T) {
		cfg := newTestConfig(MapEnvironment{})
		require.NoError(t, cfg.Validate())

		snapshot, err := cfg.Snapshot()
		require.NoError(t, err)
		assert.Empty(t, snapshot)
	})
}

func TestValidateStructuralIssues(t *testing.T) {
	tests := []struct {
		name        string
		decl        Declaration
		wantEnv     string
		wantMessage string
	}{
		{
			"MissingName",
			Declaration{Description: "no name", Type: TypeString},
			"Unknown",
			"'name' is not configured.",
		},
		{
			"MissingDescription",
			Declaration{Name: "NO_DESC", Type: TypeString},
			"NO_DESC",
			"'description' is not configured.",
		},
		{
			"MissingType",
			Declaration{Name: "NO_TYPE", Description: "no type"},
			"NO_TYPE",
			"'type' is not configured.",
		},
		{
			"ProdCriticalWithoutExpected",
			Declaration{Name: "PROD", Description: "prod critical", Type: TypeString, ProdCritical: true},
			"PROD",
			"'prod_critical' is set but 'prod_expected' is not configured.",
		},
		{
			"UnsupportedType",
			Declaration{Name: "BAD_TYPE", Description: "bogus type", Type: Type(42)},
			"BAD_TYPE",
			"Unsupported type.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(MapEnvironment{"NO_DESC": "x", "NO_TYPE": "x", "PROD": "x", "BAD_TYPE": "x"})
			cfg.Register(tt.decl)

			err := cfg.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tt.wantEnv, verr.Issues[0].Env)
			assert.Equal(t, tt.wantMessage, verr.Issues[0].Description)
		})
	}
}

func TestValidateIssueAggregation(t *testing.T) {
	// Every declaration is attempted even when earlier ones fail, and all
	// issues come back in one error.
	env := MapEnvironment{"PRESENT": "hello"}
	cfg := newTestConfig(env)
	cfg.Register(
		NewString("MISSING_ONE", "first required variable"),
		NewString("PRESENT", "a fine variable"),
		NewInt("MISSING_TWO", "second required variable"),
		NewInt("PRESENT_BAD", "unparsable int", WithDefault("not-a-number")),
	)

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 3)
	assert.Equal(t, Issue{Env: "MISSING_ONE", Description: "Required env has not been set."}, verr.Issues[0])
	assert.Equal(t, Issue{Env: "MISSING_TWO", Description: "Required env has not been set."}, verr.Issues[1])
	assert.Equal(t, Issue{Env: "PRESENT_BAD", Description: "Type validation failed."}, verr.Issues[2])

	assert.Contains(t, err.Error(), "MISSING_ONE: Required env has not been set.")
	assert.Contains(t, err.Error(), "PRESENT_BAD: Type validation failed.")
}

func TestValidateWriteBack(t *testing.T) {
	t.Run("BooleanCanonicalForm", func(t *testing.T) {
		env := MapEnvironment{"DEBUG": "tRuE"}
		cfg := newTestConfig(env)
		cfg.Register(NewBool("DEBUG", "verbose logging"))

		require.NoError(t, cfg.Validate())

		raw, ok := env.Lookup("DEBUG")
		require.True(t, ok)
		assert.Equal(t, "TRUE", raw)
	})

	t.Run("DefaultWrittenBack", func(t *testing.T) {
		env := MapEnvironment{}
		cfg := newTestConfig(env)
		cfg.Register(NewInt("PORT", "listen port", WithDefault("8080")))

		require.NoError(t, cfg.Validate())

		raw, ok := env.Lookup("PORT")
		require.True(t, ok)
		assert.Equal(t, "8080", raw)
	})

	t.Run("NothingWrittenOnFailure", func(t *testing.T) {
		env := MapEnvironment{"COUNT": "three"}
		cfg := newTestConfig(env)
		cfg.Register(NewInt("COUNT", "a count"))

		require.Error(t, cfg.Validate())

		raw, _ := env.Lookup("COUNT")
		assert.Equal(t, "three", raw)
	})
}

func TestValidateDuplicateNames(t *testing.T) {
	// Duplicates are resolved independently; the last one wins.
	env := MapEnvironment{}
	cfg := newTestConfig(env)
	cfg.Register(
		NewString("DUP", "first registration", WithDefault("first")),
		NewString("DUP", "second registration", WithDefault("second")),
	)

	require.NoError(t, cfg.Validate())

	value, err := cfg.String("DUP")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestValidateProdCritical(t *testing.T) {
	t.Run("MismatchWarnsButPasses", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		env := MapEnvironment{"FORCE_HTTPS": "false"}
		cfg := newTestConfig(env)
		cfg.logger = zap.New(core)
		cfg.Register(NewBool("FORCE_HTTPS", "require https", ProdCritical("TRUE")))

		require.NoError(t, cfg.Validate())

		entries := logs.FilterMessage("production critical env is not set to the expected value").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "FORCE_HTTPS", entries[0].ContextMap()["env"])
	})

	t.Run("MatchStaysQuiet", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		env := MapEnvironment{"FORCE_HTTPS": "true"}
		cfg := newTestConfig(env)
		cfg.logger = zap.New(core)
		cfg.Register(NewBool("FORCE_HTTPS", "require https", ProdCritical("TRUE")))

		require.NoError(t, cfg.Validate())
		assert.Zero(t, logs.Len())
	})

	t.Run("MismatchComparesCanonicalRaw", func(t *testing.T) {
		// "true" resolves to canonical "TRUE"; an expected value in the
		// original casing does not match.
		core, logs := observer.New(zap.WarnLevel)
		env := MapEnvironment{"FORCE_HTTPS": "true"}
		cfg := newTestConfig(env)
		cfg.logger = zap.New(core)
		cfg.Register(NewBool("FORCE_HTTPS", "require https", ProdCritical("true")))

		require.NoError(t, cfg.Validate())
		assert.Equal(t, 1, logs.Len())
	})
}
