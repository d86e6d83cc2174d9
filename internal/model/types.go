package model

import (
	"fmt"
	"strings"

	"notify-generator/internal/common"
)

// TypeRef is an opaque, printable reference to a declared type.
type TypeRef struct {
	Name string // e.g., "int", "List<string>", "global::N.Point"
}

// String returns the type as it should appear in generated declarations.
func (t TypeRef) String() string {
	return t.Name
}

// Location points at a declaration in the host's source.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if no location information is available.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String returns "file:line:column", omitting unknown parts.
func (l Location) String() string {
	switch {
	case l.IsZero():
		return ""
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
}

// ClassDescriptor describes a class that owns annotated fields.
type ClassDescriptor struct {
	Namespace      string   // "" for the global namespace
	Name           string   // simple name, without type parameters
	Accessibility  string   // e.g., "public", "internal"; "" emits no modifier
	Sealed         bool     // sealed classes get private, non-virtual trigger methods
	Container      string   // declaring type for nested classes, "" otherwise
	TypeParameters []string // generic parameters, e.g., ["T"]
	Fields         []*FieldDescriptor
}

// IsNested returns true if the class is declared inside another type
// rather than directly in its namespace.
func (c *ClassDescriptor) IsNested() bool {
	return c.Container != ""
}

// QualifiedName returns the namespace-qualified class name.
func (c *ClassDescriptor) QualifiedName() string {
	return common.Qualify(c.Namespace, c.Name)
}

// DeclarationName returns the name as written in a declaration,
// including type parameters (e.g., "Box<T>").
func (c *ClassDescriptor) DeclarationName() string {
	if common.IsEmpty(c.TypeParameters) {
		return c.Name
	}

	return c.Name + "<" + strings.Join(c.TypeParameters, ", ") + ">"
}

// AddField appends a field to the class and links it back to the class.
func (c *ClassDescriptor) AddField(name string, typ TypeRef, attrs Attributes) *FieldDescriptor {
	f := &FieldDescriptor{
		Name:       name,
		Type:       typ,
		Class:      c,
		Attributes: attrs,
	}
	c.Fields = append(c.Fields, f)

	return f
}

// FieldDescriptor describes a single annotated field.
type FieldDescriptor struct {
	Name       string           // field identifier, e.g., "_size"
	Type       TypeRef          // declared type
	Class      *ClassDescriptor // containing class; required
	Attributes Attributes       // raw attribute arguments; absent keys use defaults
	Location   Location
}

// Path returns "Class.field" for use in diagnostics.
func (f *FieldDescriptor) Path() string {
	if f.Class == nil {
		return f.Name
	}

	return f.Class.Name + "." + f.Name
}
