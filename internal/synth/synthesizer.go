package synth

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"notify-generator/internal/config"
	"notify-generator/internal/diagnostic"
	"notify-generator/internal/model"
	"notify-generator/internal/naming"
)

// ErrMissingClass is returned for a field without a containing class.
var ErrMissingClass = errors.New("field has no containing class")

// Fragment is the declaration text one field contributes to one artifact kind.
type Fragment struct {
	Kind ArtifactKind
	// Member is the name of the declared member, e.g. "OnSizeChanged".
	Member string
	Text   string
}

// Result is the outcome of synthesizing a single field.
type Result struct {
	// Names are the resolved member names; zero when Diagnostic is set.
	Names     naming.Names
	Fragments []Fragment
	// Diagnostic is set when the field was skipped.
	Diagnostic *diagnostic.Diagnostic
}

// Skipped returns true if the field produced a diagnostic instead of members.
func (r Result) Skipped() bool {
	return r.Diagnostic != nil
}

// Fragment returns the fragment of the given kind, if one was emitted.
func (r Result) Fragment(kind ArtifactKind) (Fragment, bool) {
	for _, f := range r.Fragments {
		if f.Kind == kind {
			return f, true
		}
	}

	return Fragment{}, false
}

// Synthesize produces the declaration fragments for field, which must be
// declared in class.
//
// If the derived property name is empty or equal to the field identifier the
// field is skipped: the result carries a single warning and no fragments.
// Errors are returned only for malformed input (missing class, attribute
// arguments of the wrong type).
func Synthesize(field *model.FieldDescriptor, class *model.ClassDescriptor) (Result, error) {
	if class == nil {
		return Result{}, fmt.Errorf("%s: %w", field.Name, ErrMissingClass)
	}

	cfg, err := config.Resolve(field.Attributes)
	if err != nil {
		return Result{}, fmt.Errorf("resolving attributes of %s: %w", field.Path(), err)
	}

	names := naming.Resolve(field.Name, cfg.Overrides())
	if names.Property == "" || names.Property == field.Name {
		d := diagnostic.NameCollision(field, names.Property)
		return Result{Diagnostic: &d}, nil
	}

	// Payload type referenced by the event and the trigger method.
	args := ""
	if cfg.GenerateEventArgs {
		args = names.Args
	}

	typ := field.Type.String()

	var parts []part

	if !cfg.SkipProperty {
		parts = append(parts, part{KindProperties, names.Property, propertyTemplate, propertyData{
			Summary: cfg.PropertySummary,
			Virtual: cfg.IsVirtualProperty,
			Type:    typ,
			Name:    names.Property,
			Field:   field.Name,
			Method:  names.Method,
		}})
	}

	if !cfg.SkipEvent {
		parts = append(parts, part{KindEvents, names.Event, eventTemplate, eventData{
			Summary: cfg.EventSummary,
			Name:    names.Event,
			Args:    args,
		}})
	}

	if !cfg.SkipMethod {
		parts = append(parts, part{KindTriggerMethods, names.Method, methodTemplate, methodData{
			Summary: cfg.MethodSummary,
			Sealed:  class.Sealed,
			Name:    names.Method,
			Type:    typ,
			Event:   names.Event,
			Args:    args,
		}})
	}

	if cfg.GenerateEventArgs {
		parts = append(parts, part{KindPayloadTypes, names.Args, payloadTemplate, payloadData{
			Summary: cfg.EventArgsSummary,
			Name:    names.Args,
			Type:    typ,
		}})
	}

	res := Result{Names: names}

	for _, p := range parts {
		text, err := p.render()
		if err != nil {
			return Result{}, fmt.Errorf("rendering %s of %s: %w", p.kind, field.Path(), err)
		}

		res.Fragments = append(res.Fragments, Fragment{Kind: p.kind, Member: p.member, Text: text})
	}

	return res, nil
}

// part is a fragment awaiting rendering.
type part struct {
	kind   ArtifactKind
	member string
	tmpl   *template.Template
	data   any
}

func (p part) render() (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, p.data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
