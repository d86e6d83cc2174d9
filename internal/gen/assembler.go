package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"notify-generator/internal/diagnostic"
	"notify-generator/internal/logger"
	"notify-generator/internal/model"
	"notify-generator/internal/synth"
)

// MinArtifactLength is the accumulated body length an artifact must exceed
// to be emitted. Any real fragment is longer, so a kind disabled on every
// field of a class produces no file.
const MinArtifactLength = 10

const indentUnit = "    "

// Artifact is one generated group of declarations for one class.
type Artifact struct {
	Kind  synth.ArtifactKind
	Class *model.ClassDescriptor
	// Members lists the declared member names in order.
	Members []string
	// Body is the concatenated fragments, unindented.
	Body string
	// Text is the complete file content.
	Text string
}

// Filename returns "<Class>.g.<tag>.cs", with the generic arity appended
// to the class name (e.g. "Box`1.g.events.cs").
func (a Artifact) Filename() string {
	return filename(filePrefix(a.Class), a.Kind)
}

// filePrefix returns the class name plus "`N" for N type parameters.
func filePrefix(class *model.ClassDescriptor) string {
	if n := len(class.TypeParameters); n > 0 {
		return fmt.Sprintf("%s`%d", class.Name, n)
	}

	return class.Name
}

func filename(prefix string, kind synth.ArtifactKind) string {
	return prefix + ".g." + kind.FileTag() + ".cs"
}

// ClassResult holds what one class contributed to a pass.
type ClassResult struct {
	Artifacts   []Artifact
	Diagnostics diagnostic.Diagnostics
}

// Assembler turns the annotated fields of a class into artifacts.
type Assembler struct {
	log logger.Logger
}

// NewAssembler creates an Assembler logging to log.
func NewAssembler(log logger.Logger) *Assembler {
	if log == nil {
		log = logger.Discard()
	}

	return &Assembler{log: log}
}

// Assemble synthesizes every field of class in order and wraps each
// non-trivial artifact body in file scaffolding.
//
// Nested classes are ignored: the result is empty and carries no diagnostics.
func (a *Assembler) Assemble(class *model.ClassDescriptor, fields []*model.FieldDescriptor) (ClassResult, error) {
	var res ClassResult

	if class == nil {
		return res, synth.ErrMissingClass
	}

	if class.IsNested() {
		a.log.Debug("skipping nested class", "class", class.QualifiedName(), "container", class.Container)
		return res, nil
	}

	var (
		bodies  [synth.KindTotal]strings.Builder
		members [synth.KindTotal][]string
	)

	for _, field := range fields {
		fr, err := synth.Synthesize(field, class)
		if err != nil {
			return ClassResult{}, fmt.Errorf("synthesizing %s: %w", class.QualifiedName(), err)
		}

		if fr.Skipped() {
			a.log.Debug("field skipped", "field", field.Path(), "code", fr.Diagnostic.Code)
			res.Diagnostics.Add(*fr.Diagnostic)

			continue
		}

		for _, frag := range fr.Fragments {
			body := &bodies[frag.Kind]
			if body.Len() > 0 {
				body.WriteString("\n")
			}

			body.WriteString(frag.Text)
			members[frag.Kind] = append(members[frag.Kind], frag.Member)
		}
	}

	for _, kind := range synth.Kinds() {
		body := bodies[kind].String()
		if len(body) <= MinArtifactLength {
			continue
		}

		text, err := wrap(class, body)
		if err != nil {
			return ClassResult{}, fmt.Errorf("wrapping %s of %s: %w", kind, class.QualifiedName(), err)
		}

		res.Artifacts = append(res.Artifacts, Artifact{
			Kind:    kind,
			Class:   class,
			Members: members[kind],
			Body:    body,
			Text:    text,
		})
	}

	a.log.Debug("class assembled",
		"class", class.QualifiedName(),
		"fields", len(fields),
		"artifacts", len(res.Artifacts),
		"warnings", len(res.Diagnostics.Warnings))

	return res, nil
}

type fileData struct {
	Namespace  string
	ClassBlock string
}

var fileTemplate = template.Must(template.New("file").
	Funcs(template.FuncMap{"indent": indent}).
	Parse(`// <auto-generated/>
// Generated by notify-generator. Changes will be lost when the file is regenerated.
#nullable enable
{{if .Namespace}}
namespace {{.Namespace}}
{
{{indent .ClassBlock}}}
{{else}}
{{.ClassBlock}}{{end}}`))

// wrap places body inside the partial class and namespace of class.
func wrap(class *model.ClassDescriptor, body string) (string, error) {
	var decl strings.Builder
	if class.Accessibility != "" {
		decl.WriteString(class.Accessibility)
		decl.WriteString(" ")
	}

	decl.WriteString("partial class ")
	decl.WriteString(class.DeclarationName())

	block := decl.String() + "\n{\n" + indent(body) + "}\n"

	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, fileData{Namespace: class.Namespace, ClassBlock: block})
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// indent prefixes every non-empty line of s with one indentation unit.
func indent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + len(s)/8)

	for line := range strings.Lines(s) {
		if strings.TrimSpace(line) != "" {
			sb.WriteString(indentUnit)
		}

		sb.WriteString(line)
	}

	return sb.String()
}
