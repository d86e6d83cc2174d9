package snapshot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML snapshot from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Classes {
		c := &f.Classes[i]
		if c.Accessibility == "" {
			c.Accessibility = "public"
		}
	}
}

// validate checks the fields the generator cannot do without.
func validate(f *File) error {
	var errs []error

	for i, c := range f.Classes {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("classes[%d]: name is required", i))
		}

		for j, fd := range c.Fields {
			if fd.Name == "" {
				errs = append(errs, fmt.Errorf("classes[%d].fields[%d]: name is required", i, j))
			}

			if fd.Type == "" {
				errs = append(errs, fmt.Errorf("classes[%d].fields[%d]: type is required", i, j))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	return nil
}
