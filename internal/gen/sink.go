package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/htmlindex"

	"notify-generator/internal/diagnostic"
	"notify-generator/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// SourceSink accepts generated files from a pass.
type SourceSink interface {
	AddSource(name string, text []byte, encoding string) error
}

// DiagnosticSink accepts diagnostics from a pass.
type DiagnosticSink interface {
	Report(d diagnostic.Diagnostic)
}

// Run generates code for fields and hands the results to the sinks.
// Diagnostics are reported before any source is added.
func Run(g *Generator, fields []*model.FieldDescriptor, sources SourceSink, diags DiagnosticSink) error {
	out, err := g.Generate(fields)
	if err != nil {
		return err
	}

	return out.Emit(sources, diags)
}

// Emit reports every diagnostic of the pass, then adds every file.
func (o *Output) Emit(sources SourceSink, diags DiagnosticSink) error {
	for _, d := range o.Diagnostics.All() {
		diags.Report(d)
	}

	for _, f := range o.Files {
		if err := sources.AddSource(f.Filename, f.Content, f.Encoding); err != nil {
			return fmt.Errorf("adding source %s: %w", f.Filename, err)
		}
	}

	return nil
}

// DirSink writes each source into Dir.
type DirSink struct {
	Dir string
}

// AddSource writes text to Dir/name in the named encoding (a WHATWG label
// such as "utf-8" or "utf-16le"), creating Dir if needed.
func (s DirSink) AddSource(name string, text []byte, encoding string) error {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return fmt.Errorf("encoding %q of %s: %w", encoding, name, err)
	}

	data, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", name, encoding, err)
	}

	if err := os.MkdirAll(s.Dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.Dir, name), data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", name, err)
	}

	return nil
}

// MemorySink collects sources and diagnostics in memory.
type MemorySink struct {
	Files       []GeneratedFile
	Diagnostics []diagnostic.Diagnostic
}

// AddSource records a source; duplicate names are rejected.
func (s *MemorySink) AddSource(name string, text []byte, encoding string) error {
	if _, ok := s.File(name); ok {
		return fmt.Errorf("duplicate source name %q", name)
	}

	s.Files = append(s.Files, GeneratedFile{Filename: name, Content: text, Encoding: encoding})

	return nil
}

// Report records a diagnostic.
func (s *MemorySink) Report(d diagnostic.Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// File returns the recorded source with the given name.
func (s *MemorySink) File(name string) (GeneratedFile, bool) {
	for _, f := range s.Files {
		if f.Filename == name {
			return f, true
		}
	}

	return GeneratedFile{}, false
}
