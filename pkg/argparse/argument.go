package argparse

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Type is the target type an argument converts its raw string value into.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
	TypeBool
)

// String returns the type name used in help texts.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// ConvertFunc turns a raw token into a typed value.
type ConvertFunc func(raw string) (any, error)

// ValidateFunc accepts or rejects an already converted value.
type ValidateFunc func(value any) bool

// Argument describes one expected command parameter: the names it answers
// to (the first one is canonical), how its raw value converts, how the
// converted value validates, and whether it may be omitted. Arguments are
// value types; build them once at registration and never mutate them.
type Argument struct {
	Names       []string
	Type        Type
	Description string
	Example     string

	// Default is applied when no token binds the argument. A non-nil
	// Default makes the argument optional.
	Default any
	// Optional arguments without a Default bind to nil when omitted.
	Optional bool

	// Converter overrides the Type's default string→value conversion.
	Converter ConvertFunc
	// Validator rejects converted values; a rejection names Example in
	// the reply.
	Validator ValidateFunc

	// Flag arguments consume no value token: present means true.
	Flag bool
}

// NewFlag builds a boolean argument that needs no value token and defaults
// to false.
func NewFlag(names []string, description string) Argument {
	return Argument{
		Names:       names,
		Type:        TypeBool,
		Description: description,
		Default:     false,
		Flag:        true,
	}
}

// Selection builds a string argument restricted to a fixed set of allowed
// values; the first allowed value doubles as the example.
func Selection(names []string, description string, allowed []string) Argument {
	values := slices.Clone(allowed)
	return Argument{
		Names:       names,
		Description: description,
		Example:     values[0],
		Validator: func(v any) bool {
			s, ok := v.(string)
			return ok && slices.Contains(values, s)
		},
	}
}

// Name returns the canonical argument name.
func (a Argument) Name() string {
	return a.Names[0]
}

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CheckValid verifies the specification invariants: at least one name, and a
// canonical name usable as an identifier.
func (a Argument) CheckValid() error {
	if len(a.Names) == 0 {
		return fmt.Errorf("argument needs at least one name")
	}
	if !identRegex.MatchString(a.Name()) {
		return fmt.Errorf("argument name '%s' is not an identifier", a.Name())
	}
	return nil
}

// convert applies the custom converter, or the Type's default one.
func (a Argument) convert(raw string) (any, error) {
	if a.Converter != nil {
		return a.Converter(raw)
	}
	switch a.Type {
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &errNotA{want: "int", raw: raw}
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &errNotA{want: "float", raw: raw}
		}
		return f, nil
	case TypeBool:
		return parseBool(raw)
	default:
		return raw, nil
	}
}

func parseBool(raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return nil, &errNotA{want: "bool", raw: raw}
}

// Values holds the bound arguments of one invocation, keyed by canonical
// name. Created fresh per dispatch, handed to the handler, then discarded.
type Values map[string]any

// Has reports whether the argument bound to a non-nil value.
func (v Values) Has(name string) bool {
	return v[name] != nil
}

// String returns the named value as a string, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the named value as an int, or 0 when absent.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Float returns the named value as a float64, or 0 when absent.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the named value as a bool, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}
