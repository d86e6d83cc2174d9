package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Override is an optional explicit name. The zero value is absent.
type Override struct {
	Value string
	Set   bool
}

// Some returns a present override.
func Some(v string) Override {
	return Override{Value: v, Set: true}
}

// None is the absent override.
var None = Override{}

// Or returns o if present, otherwise fallback.
func (o Override) Or(fallback Override) Override {
	if o.Set {
		return o
	}

	return fallback
}

// Derive returns the override verbatim when present. Otherwise it strips
// leading underscores from base and upper-cases the first remaining rune.
// An empty result signals that no name could be derived.
func Derive(base string, override Override) string {
	if override.Set {
		return override.Value
	}

	stripped := strings.TrimLeft(base, "_")
	if stripped == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(stripped)

	return string(unicode.ToUpper(r)) + stripped[size:]
}

// Names holds the four identifiers generated for one field.
type Names struct {
	Property string
	Event    string
	Method   string
	Args     string
}

// Overrides are the explicit names configured on a field.
type Overrides struct {
	Property Override
	Event    Override
	Method   Override
}

// Resolve derives all member names for the field identifier.
//
// The event falls back to the property override when no event override is
// given, and both the method and the payload type fall back from the method
// override to the property override.
func Resolve(field string, o Overrides) Names {
	event := Derive(field+"Changed", o.Event.Or(o.Property))
	methodSeed := o.Method.Or(o.Property)

	return Names{
		Property: Derive(field, o.Property),
		Event:    event,
		Method:   Derive("On"+event, methodSeed),
		Args:     Derive(event+"EventArgs", methodSeed),
	}
}
