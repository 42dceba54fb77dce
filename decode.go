// File: envconf/decode.go
package envconf

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Scan decodes the resolved values into the target struct or map using
// `env:"NAME"` tags.  It requires a successfully validated Config; the
// target must be a non-nil pointer.
//
//	type appConfig struct {
//	    Port  int64           `env:"PORT"`
//	    Debug bool            `env:"DEBUG"`
//	    Fee   decimal.Decimal `env:"FEE"`
//	}
func (c *Config) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	c.mu.RLock()
	if !c.validated {
		c.mu.RUnlock()
		return ErrNotValidated
	}
	values := make(map[string]any, len(c.resolved))
	for name, entry := range c.resolved {
		values[name] = entry.value
	}
	c.mu.RUnlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "env",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			decimalToStringHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan resolved config into %T: %w", target, err)
	}

	return nil
}

// decimalToStringHookFunc lets decimal values land in string fields, which
// weakly typed decoding does not cover on its own.
func decimalToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from != reflect.TypeOf(decimal.Decimal{}) || to.Kind() != reflect.String {
			return data, nil
		}
		return data.(decimal.Decimal).String(), nil
	}
}
