package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notify-generator/internal/config"
	"notify-generator/internal/diagnostic"
	"notify-generator/internal/model"
	"notify-generator/internal/synth"
)

func filenames(files []GeneratedFile) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Filename)
	}

	return out
}

func TestGenerator_Generate_Widget(t *testing.T) {
	t.Parallel()

	class := widget()
	class.AddField("_size", model.TypeRef{Name: "int"}, model.Attributes{
		config.KeyGenerateEventArgs: model.BoolValue(false),
	})

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(class.Fields)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Widget.g.properties.cs",
		"Widget.g.events.cs",
		"Widget.g.eventMethods.cs",
	}, filenames(out.Files))
	assert.Zero(t, out.Diagnostics.Len())

	for _, f := range out.Files {
		assert.Equal(t, EncodingUTF8, f.Encoding)
		assert.Contains(t, string(f.Content), "namespace N\n")
		assert.Contains(t, string(f.Content), "public partial class Widget\n")
	}

	assert.Contains(t, string(out.Files[0].Content), "OnSizeChanged(value);")
	assert.Contains(t, string(out.Files[1].Content), "EventHandler? SizeChanged;")
	assert.Contains(t, string(out.Files[2].Content), "SizeChanged?.Invoke(this, global::System.EventArgs.Empty);")
}

func TestGenerator_Generate_GroupsByClass(t *testing.T) {
	t.Parallel()

	a := &model.ClassDescriptor{Namespace: "N", Name: "A", Accessibility: "public"}
	b := &model.ClassDescriptor{Namespace: "N", Name: "B", Accessibility: "public", Sealed: true}

	skipAll := model.Attributes{
		config.KeySkipEvent:  model.BoolValue(true),
		config.KeySkipMethod: model.BoolValue(true),
	}

	b1 := b.AddField("_x", model.TypeRef{Name: "int"}, skipAll)
	a1 := a.AddField("_y", model.TypeRef{Name: "int"}, skipAll)
	b2 := b.AddField("_z", model.TypeRef{Name: "int"}, skipAll)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate([]*model.FieldDescriptor{b1, a1, b2})
	require.NoError(t, err)

	require.Equal(t, []string{"B.g.properties.cs", "A.g.properties.cs"}, filenames(out.Files))

	bText := string(out.Files[0].Content)
	assert.Contains(t, bText, "public int X\n")
	assert.Contains(t, bText, "public int Z\n")
	assert.Less(t, strings.Index(bText, "public int X"), strings.Index(bText, "public int Z"))
}

func TestGenerator_Generate_FilePrefixes(t *testing.T) {
	t.Parallel()

	class := func(namespace, name string, typeParams []string, attrs model.Attributes) *model.ClassDescriptor {
		c := &model.ClassDescriptor{Namespace: namespace, Name: name, Accessibility: "public", TypeParameters: typeParams}
		c.AddField("_size", model.TypeRef{Name: "int"}, attrs)

		return c
	}

	propsOnly := model.Attributes{
		config.KeySkipEvent:  model.BoolValue(true),
		config.KeySkipMethod: model.BoolValue(true),
	}
	noEvent := model.Attributes{config.KeySkipEvent: model.BoolValue(true)}
	nothing := model.Attributes{
		config.KeySkipProperty: model.BoolValue(true),
		config.KeySkipEvent:    model.BoolValue(true),
		config.KeySkipMethod:   model.BoolValue(true),
	}

	tests := []struct {
		name    string
		classes []*model.ClassDescriptor
		want    []string
	}{
		{
			name: "same name in two namespaces",
			classes: []*model.ClassDescriptor{
				class("One", "Widget", nil, propsOnly),
				class("Two", "Widget", nil, propsOnly),
			},
			want: []string{"Widget.g.properties.cs", "Two.Widget.g.properties.cs"},
		},
		{
			name: "same name twice in the global namespace",
			classes: []*model.ClassDescriptor{
				class("", "Widget", nil, propsOnly),
				class("", "Widget", nil, propsOnly),
				class("", "Widget", nil, propsOnly),
			},
			want: []string{"Widget.g.properties.cs", "Widget_2.g.properties.cs", "Widget_3.g.properties.cs"},
		},
		{
			name: "one prefix for every kind of a class",
			classes: []*model.ClassDescriptor{
				class("One", "Widget", nil, noEvent),
				class("Two", "Widget", nil, nil),
			},
			want: []string{
				"Widget.g.properties.cs",
				"Widget.g.eventMethods.cs",
				"Two.Widget.g.properties.cs",
				"Two.Widget.g.events.cs",
				"Two.Widget.g.eventMethods.cs",
			},
		},
		{
			name: "generic arity",
			classes: []*model.ClassDescriptor{
				class("N", "Box", nil, propsOnly),
				class("N", "Box", []string{"T"}, propsOnly),
				class("N", "Box", []string{"TKey", "TValue"}, propsOnly),
			},
			want: []string{"Box.g.properties.cs", "Box`1.g.properties.cs", "Box`2.g.properties.cs"},
		},
		{
			name: "class without files claims no prefix",
			classes: []*model.ClassDescriptor{
				class("One", "Widget", nil, nothing),
				class("Two", "Widget", nil, propsOnly),
			},
			want: []string{"Widget.g.properties.cs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := NewGenerator(DefaultGeneratorConfig()).GenerateClasses(tt.classes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filenames(out.Files))

			sink := &MemorySink{}
			require.NoError(t, out.Emit(sink, sink))
		})
	}
}

func TestGenerator_Generate_Diagnostics(t *testing.T) {
	t.Parallel()

	a := &model.ClassDescriptor{Namespace: "N", Name: "A", Accessibility: "public"}
	b := &model.ClassDescriptor{Namespace: "N", Name: "B", Accessibility: "public"}
	a.AddField("Count", model.TypeRef{Name: "int"}, nil)
	b.AddField("__", model.TypeRef{Name: "int"}, nil)
	b.AddField("_ok", model.TypeRef{Name: "int"}, nil)

	out, err := NewGenerator(DefaultGeneratorConfig()).GenerateClasses([]*model.ClassDescriptor{a, b})
	require.NoError(t, err)

	require.Len(t, out.Diagnostics.Warnings, 2)
	assert.Equal(t, "A.Count", out.Diagnostics.Warnings[0].FieldPath)
	assert.Equal(t, "B.__", out.Diagnostics.Warnings[1].FieldPath)
	assert.Len(t, out.Files, 3)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	class := widget()
	class.AddField("_size", model.TypeRef{Name: "int"}, model.Attributes{
		config.KeyGenerateEventArgs: model.BoolValue(true),
	})
	class.AddField("_name", model.TypeRef{Name: "string"}, nil)

	g := NewGenerator(DefaultGeneratorConfig())

	first, err := g.Generate(class.Fields)
	require.NoError(t, err)

	second, err := g.Generate(class.Fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_MissingClass(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(GeneratorConfig{}).Generate([]*model.FieldDescriptor{{Name: "_size"}})
	require.ErrorIs(t, err, synth.ErrMissingClass)
}

func TestRun_MemorySink(t *testing.T) {
	t.Parallel()

	class := widget()
	class.AddField("Count", model.TypeRef{Name: "int"}, nil)
	class.AddField("_size", model.TypeRef{Name: "int"}, model.Attributes{
		config.KeyGenerateEventArgs: model.BoolValue(true),
	})

	sink := &MemorySink{}
	err := Run(NewGenerator(DefaultGeneratorConfig()), class.Fields, sink, sink)
	require.NoError(t, err)

	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, diagnostic.CodeNameCollision, sink.Diagnostics[0].Code)
	assert.Len(t, sink.Files, 4)

	f, ok := sink.File("Widget.g.eventArgs.cs")
	require.True(t, ok)
	assert.Contains(t, string(f.Content), "SizeChangedEventArgs")
	assert.Equal(t, EncodingUTF8, f.Encoding)
}

func TestMemorySink_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	sink := &MemorySink{}
	require.NoError(t, sink.AddSource("A.g.events.cs", []byte("x"), EncodingUTF8))
	require.Error(t, sink.AddSource("A.g.events.cs", []byte("y"), EncodingUTF8))
}

func TestRun_DirSink(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")

	class := widget()
	class.AddField("_size", model.TypeRef{Name: "int"}, nil)

	diags := &MemorySink{}
	err := Run(NewGenerator(DefaultGeneratorConfig()), class.Fields, DirSink{Dir: dir}, diags)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	b, err := os.ReadFile(filepath.Join(dir, "Widget.g.properties.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "public int Size")
}

func TestDirSink_AddSource(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		require.NoError(t, DirSink{Dir: dir}.AddSource("A.g.events.cs", []byte("a"), EncodingUTF8))

		b, err := os.ReadFile(filepath.Join(dir, "A.g.events.cs"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(b))
	})

	t.Run("honours encoding", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, DirSink{Dir: dir}.AddSource("A.g.events.cs", []byte("é"), "utf-16le"))

		b, err := os.ReadFile(filepath.Join(dir, "A.g.events.cs"))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xe9, 0x00}, b)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := DirSink{Dir: dir}.AddSource("A.g.events.cs", []byte("a"), "klingon")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "klingon")
		assert.NoFileExists(t, filepath.Join(dir, "A.g.events.cs"))
	})
}

func TestGenerator_Sink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{OutputDir: dir})
	assert.Equal(t, DirSink{Dir: dir}, g.Sink())
}
