package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("set")
	assert.True(t, ok)
	assert.Equal(t, "set", cmd.Name)
	assert.Equal(t, HandlerSet, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("q")
	assert.True(t, ok)
	assert.Equal(t, "quit", cmd.Name)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("attack")
	assert.False(t, ok)
}

func TestResolve_AllBuiltins(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		input   string
		handler string
	}{
		{"set", HandlerSet},
		{"s", HandlerSet},
		{"clear", HandlerClear},
		{"reset", HandlerClear},
		{"load", HandlerLoad},
		{"use", HandlerLoad},
		{"presets", HandlerPresets},
		{"ls", HandlerPresets},
		{"show", HandlerShow},
		{"l", HandlerShow},
		{"explain", HandlerExplain},
		{"why", HandlerExplain},
		{"help", HandlerHelp},
		{"?", HandlerHelp},
		{"quit", HandlerQuit},
		{"exit", HandlerQuit},
	}
	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "%q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "handler for %q", tt.input)
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "show"}, {Name: "show"}})
	assert.Error(t, err)
}

func TestNewRegistry_AliasCollidesWithName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "show"}, {Name: "look", Aliases: []string{"show"}}})
	assert.Error(t, err)
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "show", Aliases: []string{"x"}},
		{Name: "explain", Aliases: []string{"x"}},
	})
	assert.Error(t, err)
}

func TestCommandsByCategory(t *testing.T) {
	cats := DefaultRegistry().CommandsByCategory()
	assert.Len(t, cats[CategoryTraits], 2)
	assert.Len(t, cats[CategoryPresets], 2)
	assert.Len(t, cats[CategoryView], 2)
	assert.Len(t, cats[CategorySystem], 2)

	for category := range cats {
		assert.Contains(t, Categories(), category, "category %q has no help heading", category)
	}
}

func TestCommands_Sorted(t *testing.T) {
	cmds := DefaultRegistry().Commands()
	for i := 1; i < len(cmds); i++ {
		prev, cur := cmds[i-1], cmds[i]
		if prev.Category == cur.Category {
			assert.Less(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Category, cur.Category)
		}
	}
}

func TestPropertyEveryAliasResolvesToOwner(t *testing.T) {
	builtins := BuiltinCommands()
	r := DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		cmd := rapid.SampledFrom(builtins).Draw(t, "cmd")
		names := append([]string{cmd.Name}, cmd.Aliases...)
		name := rapid.SampledFrom(names).Draw(t, "name")
		got, ok := r.Resolve(name)
		if !ok || got.Name != cmd.Name {
			t.Fatalf("Resolve(%q) = %v, %v; want %q", name, got, ok, cmd.Name)
		}
	})
}
