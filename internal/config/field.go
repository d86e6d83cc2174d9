package config

import (
	"errors"
	"fmt"

	"notify-generator/internal/model"
	"notify-generator/internal/naming"
)

// Attribute argument names recognised on an annotated field.
const (
	KeyPropertyName      = "PropertyName"
	KeyPropertySummary   = "PropertySummary"
	KeySkipProperty      = "SkipProperty"
	KeyIsVirtualProperty = "IsVirtualProperty"
	KeyEventName         = "EventName"
	KeyEventSummary      = "EventSummary"
	KeySkipEvent         = "SkipEvent"
	KeyMethodName        = "MethodName"
	KeyMethodSummary     = "MethodSummary"
	KeySkipMethod        = "SkipMethod"
	KeyEventArgsName     = "EventArgsName"
	KeyEventArgsSummary  = "EventArgsSummary"
	KeyGenerateEventArgs = "GenerateEventArgs"
)

// ErrAttributeType is returned when an attribute argument holds a constant
// of the wrong kind.
var ErrAttributeType = errors.New("attribute argument has wrong type")

// FieldConfig is the typed view over a field's attribute arguments.
type FieldConfig struct {
	PropertyName      naming.Override
	PropertySummary   string
	SkipProperty      bool
	IsVirtualProperty bool

	EventName    naming.Override
	EventSummary string
	SkipEvent    bool

	MethodName    naming.Override
	MethodSummary string
	SkipMethod    bool

	// EventArgsName is accepted but does not take part in name derivation;
	// the payload type is named from MethodName or PropertyName.
	EventArgsName     naming.Override
	EventArgsSummary  string
	GenerateEventArgs bool
}

// Overrides returns the explicit names used by naming.Resolve.
func (c FieldConfig) Overrides() naming.Overrides {
	return naming.Overrides{
		Property: c.PropertyName,
		Event:    c.EventName,
		Method:   c.MethodName,
	}
}

// Resolve reads attrs into a FieldConfig. Unknown keys are ignored.
func Resolve(attrs model.Attributes) (FieldConfig, error) {
	r := resolver{attrs: attrs}

	cfg := FieldConfig{
		PropertyName:      r.override(KeyPropertyName),
		PropertySummary:   r.text(KeyPropertySummary),
		SkipProperty:      r.flag(KeySkipProperty),
		IsVirtualProperty: r.flag(KeyIsVirtualProperty),
		EventName:         r.override(KeyEventName),
		EventSummary:      r.text(KeyEventSummary),
		SkipEvent:         r.flag(KeySkipEvent),
		MethodName:        r.override(KeyMethodName),
		MethodSummary:     r.text(KeyMethodSummary),
		SkipMethod:        r.flag(KeySkipMethod),
		EventArgsName:     r.override(KeyEventArgsName),
		EventArgsSummary:  r.text(KeyEventArgsSummary),
		GenerateEventArgs: r.flag(KeyGenerateEventArgs),
	}

	if err := errors.Join(r.errs...); err != nil {
		return FieldConfig{}, err
	}

	return cfg, nil
}

// resolver collects type errors so that every bad key is reported at once.
type resolver struct {
	attrs model.Attributes
	errs  []error
}

func (r *resolver) override(key string) naming.Override {
	v, ok := r.attrs.Lookup(key)
	if !ok {
		return naming.None
	}

	s, ok := v.AsString()
	if !ok {
		r.mismatch(key, model.ValueString, v)
		return naming.None
	}

	return naming.Some(s)
}

func (r *resolver) text(key string) string {
	v, ok := r.attrs.Lookup(key)
	if !ok {
		return ""
	}

	s, ok := v.AsString()
	if !ok {
		r.mismatch(key, model.ValueString, v)
		return ""
	}

	return s
}

func (r *resolver) flag(key string) bool {
	v, ok := r.attrs.Lookup(key)
	if !ok {
		return false
	}

	b, ok := v.AsBool()
	if !ok {
		r.mismatch(key, model.ValueBool, v)
		return false
	}

	return b
}

func (r *resolver) mismatch(key string, want model.ValueKind, got model.Value) {
	r.errs = append(r.errs, fmt.Errorf("%w: %s wants %s, got %s %s",
		ErrAttributeType, key, want, got.Kind(), got))
}
