// File: envconf/declaration.go
package envconf

// Type identifies the value type a declaration resolves to.
// The zero value is deliberately not a usable type so that a declaration
// built without one surfaces as a validation issue instead of silently
// resolving as a string.
type Type int

const (
	// TypeUnset marks a declaration whose type was never configured.
	TypeUnset Type = iota
	// TypeString resolves the raw value unchanged.
	TypeString
	// TypeBool resolves case-insensitive "true" to true, anything else to false.
	TypeBool
	// TypeInt resolves a base-10 integer into an int64.
	TypeInt
	// TypeFloat resolves a decimal string into a float64.
	TypeFloat
	// TypeDecimal resolves an arbitrary-precision decimal.
	TypeDecimal
)

// String returns the type tag used in issues, errors, and snapshots.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDecimal:
		return "decimal"
	case TypeUnset:
		return "unset"
	default:
		return "unknown"
	}
}

// known reports whether t is one of the supported value types.
func (t Type) known() bool {
	return t >= TypeString && t <= TypeDecimal
}

// Declaration describes one expected environment variable.
//
// Build declarations through NewDeclaration or the typed shorthands
// (NewString, NewBool, ...); they apply the secure-by-default rule.
// Constructing one is a pure operation, nothing is registered until the
// declaration is handed to a Config.
type Declaration struct {
	// Name is the environment variable name, e.g. "DATABASE_URL".
	Name string
	// Description is short help text for humans; required.
	Description string
	// Type is the expected value type; required.
	Type Type
	// Default is the raw fallback used when the variable is absent.
	// Empty means no default, which makes the variable required.
	Default string
	// Secure masks the default, expected, resolved, and raw values in
	// snapshots.  It controls reporting only, never access.
	Secure bool
	// ProdCritical marks a variable whose resolved raw value is expected
	// to equal ProdExpected in production.  A mismatch only warns.
	ProdCritical bool
	// ProdExpected is the raw value expected in production; required when
	// ProdCritical is set.
	ProdExpected string
}

// Option mutates a Declaration during construction.
type Option func(*Declaration)

// WithDefault sets the raw fallback value used when the variable is absent.
func WithDefault(raw string) Option {
	return func(d *Declaration) { d.Default = raw }
}

// Insecure disables snapshot masking for the declaration.
func Insecure() Option {
	return func(d *Declaration) { d.Secure = false }
}

// ProdCritical marks the declaration production-critical with the given
// expected raw value.
func ProdCritical(expectedRaw string) Option {
	return func(d *Declaration) {
		d.ProdCritical = true
		d.ProdExpected = expectedRaw
	}
}

// NewDeclaration builds a Declaration of the given type.
// Declarations are secure by default.
func NewDeclaration(name, description string, t Type, opts ...Option) Declaration {
	d := Declaration{
		Name:        name,
		Description: description,
		Type:        t,
		Secure:      true,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewString builds a string declaration.
func NewString(name, description string, opts ...Option) Declaration {
	return NewDeclaration(name, description, TypeString, opts...)
}

// NewBool builds a bool declaration.
func NewBool(name, description string, opts ...Option) Declaration {
	return NewDeclaration(name, description, TypeBool, opts...)
}

// NewInt builds an int declaration.
func NewInt(name, description string, opts ...Option) Declaration {
	return NewDeclaration(name, description, TypeInt, opts...)
}

// NewFloat builds a float declaration.
func NewFloat(name, description string, opts ...Option) Declaration {
	return NewDeclaration(name, description, TypeFloat, opts...)
}

// NewDecimal builds an arbitrary-precision decimal declaration.
func NewDecimal(name, description string, opts ...Option) Declaration {
	return NewDeclaration(name, description, TypeDecimal, opts...)
}
