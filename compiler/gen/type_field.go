package gen

import (
	"fmt"
	"math"
	"slices"

	"github.com/syssam/cim/compiler/load"
)

// StructField returns the exported struct field name of the attribute.
func (f Field) StructField() string { return pascal(f.Name) }

// IsEnum reports whether the attribute holds an enumeration value.
func (f Field) IsEnum() bool { return f.Type == load.TypeEnum }

// IsUUID reports whether the attribute is filled with a random UUID.
func (f Field) IsUUID() bool { return f.Type == load.TypeUUID }

// HasDefault reports whether the constructor assigns the attribute. Zero
// literals are not assigned.
func (f *Field) HasDefault() bool {
	if f.IsUUID() {
		return true
	}
	switch v := f.Default.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}

// EnumDefault returns the constant name of the default enum value.
func (f Field) EnumDefault() string { return f.Enum.ConstName(f.Default.(string)) }

// normalize converts the decoded YAML default to the Go type of the
// attribute, or fails if the literal does not fit.
func (f *Field) normalize() error {
	if f.Default == nil {
		return nil
	}
	fail := func(format string, args ...any) error {
		return NewValidationError(f.Owner.Name, f.Name, f.Default, fmt.Sprintf(format, args...))
	}
	switch f.Type {
	case load.TypeFloat:
		switch v := f.Default.(type) {
		case int:
			f.Default = float64(v)
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fail("default must be finite")
			}
		default:
			return fail("default must be a number")
		}
	case load.TypeInt:
		if _, ok := f.Default.(int); !ok {
			return fail("default must be an integer")
		}
	case load.TypeString:
		if _, ok := f.Default.(string); !ok {
			return fail("default must be a string")
		}
	case load.TypeBool:
		if _, ok := f.Default.(bool); !ok {
			return fail("default must be a boolean")
		}
	case load.TypeEnum:
		v, ok := f.Default.(string)
		if !ok || !slices.Contains(f.Enum.Values, v) {
			return fail("default is not a value of %s", f.Enum.Name)
		}
	case load.TypeUUID:
		return fail("uuid attributes are generated and take no default")
	}
	return nil
}
