package config

import (
	"math"
	"strconv"
)

// ValueKind identifies the primitive type held by an atom. The same tags are
// used by schema atom nodes to declare expected types.
type ValueKind int

const (
	BoolKind ValueKind = iota
	IntKind
	FloatKind
	StringKind
)

func (k ValueKind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "integer"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	default:
		return "unknown"
	}
}

// Atom is a leaf configuration value holding exactly one of bool, int64,
// float64 or string. Arithmetic kinds (bool, integer, float) convert to each
// other with range checking; every kind converts to and from string
// lexically.
type Atom struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolAtom returns an atom holding a boolean value.
func BoolAtom(v bool) *Atom { return &Atom{kind: BoolKind, b: v} }

// IntAtom returns an atom holding a 64-bit integer value.
func IntAtom(v int64) *Atom { return &Atom{kind: IntKind, i: v} }

// FloatAtom returns an atom holding a double-precision float value.
func FloatAtom(v float64) *Atom { return &Atom{kind: FloatKind, f: v} }

// StringAtom returns an atom holding a string value.
func StringAtom(v string) *Atom { return &Atom{kind: StringKind, s: v} }

func (a *Atom) Kind() Kind { return KindAtom }
func (a *Atom) sealed()    {}

// Type returns the primitive kind of the stored value.
func (a *Atom) Type() ValueKind { return a.kind }

// AsBool converts the stored value to a boolean. Integers and floats must be
// exactly 0 or 1; strings are parsed with strconv.ParseBool.
func (a *Atom) AsBool() (bool, error) {
	switch a.kind {
	case BoolKind:
		return a.b, nil
	case IntKind:
		if a.i == 0 || a.i == 1 {
			return a.i == 1, nil
		}
		return false, coercionErrorf(IntKind, BoolKind, "value %d does not fit bool", a.i)
	case FloatKind:
		if a.f == 0 || a.f == 1 {
			return a.f == 1, nil
		}
		return false, coercionErrorf(FloatKind, BoolKind, "value %g does not fit bool", a.f)
	default:
		v, err := strconv.ParseBool(a.s)
		if err != nil {
			return false, coercionErrorf(StringKind, BoolKind, "cannot convert %q to bool", a.s)
		}
		return v, nil
	}
}

// AsInt converts the stored value to a 64-bit integer. Floats are truncated
// towards zero and must fit the int64 range; strings are parsed as decimal
// integers.
func (a *Atom) AsInt() (int64, error) {
	switch a.kind {
	case BoolKind:
		if a.b {
			return 1, nil
		}
		return 0, nil
	case IntKind:
		return a.i, nil
	case FloatKind:
		// -2^63 is exactly representable in both float64 and int64; 2^63 is
		// not an int64, so the upper bound stays exclusive of MaxInt64.
		if math.IsNaN(a.f) || a.f >= math.MaxInt64 || a.f < math.MinInt64 {
			return 0, coercionErrorf(FloatKind, IntKind, "value %g does not fit integer", a.f)
		}
		return int64(a.f), nil
	default:
		v, err := strconv.ParseInt(a.s, 10, 64)
		if err != nil {
			return 0, coercionErrorf(StringKind, IntKind, "cannot convert %q to integer", a.s)
		}
		return v, nil
	}
}

// AsFloat converts the stored value to a double-precision float.
func (a *Atom) AsFloat() (float64, error) {
	switch a.kind {
	case BoolKind:
		if a.b {
			return 1, nil
		}
		return 0, nil
	case IntKind:
		return float64(a.i), nil
	case FloatKind:
		return a.f, nil
	default:
		v, err := strconv.ParseFloat(a.s, 64)
		if err != nil {
			return 0, coercionErrorf(StringKind, FloatKind, "cannot convert %q to float", a.s)
		}
		return v, nil
	}
}

// AsString converts the stored value to its textual form. This conversion
// never fails.
func (a *Atom) AsString() (string, error) {
	switch a.kind {
	case BoolKind:
		return strconv.FormatBool(a.b), nil
	case IntKind:
		return strconv.FormatInt(a.i, 10), nil
	case FloatKind:
		return strconv.FormatFloat(a.f, 'g', -1, 64), nil
	default:
		return a.s, nil
	}
}

// Scalar constrains the Go types an atom can be read as.
type Scalar interface {
	bool | int64 | float64 | string
}

// As reads the atom as T, applying the same coercions as the typed accessors.
func As[T Scalar](a *Atom) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *bool:
		v, err := a.AsBool()
		if err != nil {
			return zero, err
		}
		*p = v
	case *int64:
		v, err := a.AsInt()
		if err != nil {
			return zero, err
		}
		*p = v
	case *float64:
		v, err := a.AsFloat()
		if err != nil {
			return zero, err
		}
		*p = v
	case *string:
		v, err := a.AsString()
		if err != nil {
			return zero, err
		}
		*p = v
	}
	return zero, nil
}
