package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"notify-generator/internal/model"
)

// File is the root of a snapshot document.
type File struct {
	Version string  `yaml:"version,omitempty"`
	Classes []Class `yaml:"classes"`
}

// Class describes one class and its annotated fields.
type Class struct {
	Namespace      string   `yaml:"namespace,omitempty"`
	Name           string   `yaml:"name"`
	Accessibility  string   `yaml:"accessibility,omitempty"`
	Sealed         bool     `yaml:"sealed,omitempty"`
	Container      string   `yaml:"container,omitempty"`
	TypeParameters []string `yaml:"typeParameters,omitempty"`
	Fields         []Field  `yaml:"fields"`
}

// Field describes one annotated field.
type Field struct {
	Name       string               `yaml:"name"`
	Type       string               `yaml:"type"`
	Location   Location             `yaml:"location,omitempty"`
	Attributes map[string]Attribute `yaml:"attributes,omitempty"`
}

// Location mirrors model.Location.
type Location struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

// Attribute is an attribute argument constant: a YAML bool or string.
type Attribute struct {
	model.Value
}

// UnmarshalYAML implements custom YAML unmarshaling for Attribute.
// Accepts a bool or a string scalar; quoted "true" stays a string.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected bool or string, got %s", node.Line, kindName(node.Kind))
	}

	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}

		a.Value = model.BoolValue(b)
	case "!!str":
		a.Value = model.StringValue(node.Value)
	default:
		return fmt.Errorf("line %d: expected bool or string, got %s %q", node.Line, node.ShortTag(), node.Value)
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "scalar"
	}
}

// Descriptors converts the snapshot into linked class and field descriptors.
func (f *File) Descriptors() []*model.ClassDescriptor {
	out := make([]*model.ClassDescriptor, 0, len(f.Classes))

	for _, c := range f.Classes {
		class := &model.ClassDescriptor{
			Namespace:      c.Namespace,
			Name:           c.Name,
			Accessibility:  c.Accessibility,
			Sealed:         c.Sealed,
			Container:      c.Container,
			TypeParameters: c.TypeParameters,
		}

		for _, fd := range c.Fields {
			var attrs model.Attributes
			if len(fd.Attributes) > 0 {
				attrs = make(model.Attributes, len(fd.Attributes))
				for k, v := range fd.Attributes {
					attrs[k] = v.Value
				}
			}

			field := class.AddField(fd.Name, model.TypeRef{Name: fd.Type}, attrs)
			field.Location = model.Location(fd.Location)
		}

		out = append(out, class)
	}

	return out
}

// Fields returns every field of every class, in document order.
func (f *File) Fields() []*model.FieldDescriptor {
	var out []*model.FieldDescriptor
	for _, c := range f.Descriptors() {
		out = append(out, c.Fields...)
	}

	return out
}
