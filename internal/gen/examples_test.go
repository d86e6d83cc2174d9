package gen_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notify-generator/internal/gen"
	"notify-generator/internal/snapshot"
)

func TestExamples_Shop(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	snap, err := snapshot.LoadFile(filepath.Join(repoRoot, "examples", "shop", "model.yaml"))
	require.NoError(t, err)

	sink := &gen.MemorySink{}
	require.NoError(t, gen.Run(gen.NewGenerator(gen.DefaultGeneratorConfig()), snap.Fields(), sink, sink))
	assert.Empty(t, sink.Diagnostics)

	content := func(name string) string {
		t.Helper()

		f, ok := sink.File(name)
		require.True(t, ok, "missing %s", name)

		return string(f.Content)
	}

	props := content("Cart.g.properties.cs")
	assert.Contains(t, props, "/// Total price of the cart.\n")
	assert.Contains(t, props, "public decimal Total\n")
	assert.Contains(t, props, "public virtual int Count\n")
	assert.Contains(t, props, "OnCountChanged(value);")
	assert.NotContains(t, props, "Owner")

	methods := content("Cart.g.eventMethods.cs")
	assert.Contains(t, methods, "private void OnTotalChanged(decimal value)")
	assert.Contains(t, methods, "TotalChanged?.Invoke(this, new TotalChangedEventArgs(value));")
	assert.Contains(t, methods, "private void OnOwnerChanged(string? value)")
	assert.Contains(t, methods, "/// Call after assigning the owner directly.\n")
	assert.NotContains(t, methods, "virtual")

	events := content("Cart.g.events.cs")
	assert.Contains(t, events, "global::System.EventHandler<TotalChangedEventArgs>? TotalChanged;")
	assert.Contains(t, events, "global::System.EventHandler? CountChanged;")

	assert.Contains(t, content("Cart.g.eventArgs.cs"), "internal TotalChangedEventArgs(decimal value)")
	assert.Contains(t, content("Catalog`1.g.properties.cs"), "public partial class Catalog<TItem>")

	_, ok := sink.File("Line.g.properties.cs")
	assert.False(t, ok)
}
