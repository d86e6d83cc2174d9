package gen

import (
	"fmt"

	"notify-generator/internal/common"
	"notify-generator/internal/diagnostic"
	"notify-generator/internal/logger"
	"notify-generator/internal/model"
	"notify-generator/internal/synth"
)

// EncodingUTF8 is the encoding of every generated file.
const EncodingUTF8 = "utf-8"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory DirSink writes into when used by the CLI.
	OutputDir string
	// Logger receives debug output about each class; nil discards it.
	Logger logger.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: "./generated",
		Logger:    logger.Discard(),
	}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "Widget.g.properties.cs").
	Filename string
	// Content is the file text.
	Content []byte
	// Encoding of Content.
	Encoding string
	// Kind is the artifact kind the file holds.
	Kind synth.ArtifactKind
}

// Output is the result of one generation pass.
type Output struct {
	Files       []GeneratedFile
	Diagnostics diagnostic.Diagnostics
}

// Generator runs a synthesis pass over a set of annotated fields.
type Generator struct {
	config    GeneratorConfig
	assembler *Assembler
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Logger == nil {
		config.Logger = logger.Discard()
	}

	return &Generator{
		config:    config,
		assembler: NewAssembler(config.Logger),
	}
}

// Generate groups fields by containing class, in the order classes are first
// seen, and assembles each class. Name collisions surface as diagnostics;
// an error means the input violated the descriptor contract and nothing
// should be emitted.
func (g *Generator) Generate(fields []*model.FieldDescriptor) (*Output, error) {
	for _, f := range fields {
		if f.Class == nil {
			return nil, fmt.Errorf("%s: %w", f.Name, synth.ErrMissingClass)
		}
	}

	classes, byClass := common.GroupStable(fields, func(f *model.FieldDescriptor) *model.ClassDescriptor {
		return f.Class
	})

	out := &Output{}
	prefixes := make(map[string]bool)

	for _, class := range classes {
		res, err := g.assembler.Assemble(class, byClass[class])
		if err != nil {
			return nil, err
		}

		out.Diagnostics.Merge(res.Diagnostics)

		if len(res.Artifacts) == 0 {
			continue
		}

		prefix := claimPrefix(prefixes, class)

		for _, art := range res.Artifacts {
			out.Files = append(out.Files, GeneratedFile{
				Filename: filename(prefix, art.Kind),
				Content:  []byte(art.Text),
				Encoding: EncodingUTF8,
				Kind:     art.Kind,
			})
		}
	}

	g.config.Logger.Debug("generation finished",
		"classes", len(classes),
		"files", len(out.Files),
		"warnings", len(out.Diagnostics.Warnings))

	return out, nil
}

// Sink returns a DirSink writing into the configured output directory.
func (g *Generator) Sink() DirSink {
	return DirSink{Dir: g.config.OutputDir}
}

// claimPrefix picks the file prefix shared by every file of class. It is the
// class name with arity, qualified by the namespace if another class already
// took it, then suffixed with a counter until unique.
func claimPrefix(taken map[string]bool, class *model.ClassDescriptor) string {
	base := filePrefix(class)

	prefix := base
	if taken[prefix] {
		prefix = common.Qualify(class.Namespace, base)
	}

	for i := 2; taken[prefix]; i++ {
		prefix = fmt.Sprintf("%s_%d", common.Qualify(class.Namespace, base), i)
	}

	taken[prefix] = true

	return prefix
}

// GenerateClasses runs a pass over every field of the given classes.
func (g *Generator) GenerateClasses(classes []*model.ClassDescriptor) (*Output, error) {
	var fields []*model.FieldDescriptor
	for _, c := range classes {
		fields = append(fields, c.Fields...)
	}

	return g.Generate(fields)
}
