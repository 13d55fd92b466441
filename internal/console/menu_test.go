package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/internal/console"
	"github.com/agentstation/cinemap/pkg/errors"
)

func TestNewMenu(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		menu, err := console.NewMenu("Movie Database", "Search", "Exit")
		require.NoError(t, err)
		assert.Equal(t, "Movie Database", menu.Title())
		assert.Equal(t, []string{"Search", "Exit"}, menu.Options())
		assert.Equal(t, 2, menu.Len())
	})

	tests := []struct {
		name    string
		title   string
		options []string
	}{
		{name: "blank title", title: "  ", options: []string{"a", "b"}},
		{name: "one option", title: "Menu", options: []string{"a"}},
		{name: "no options", title: "Menu"},
		{name: "blank option", title: "Menu", options: []string{"a", " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, err := console.NewMenu(tt.title, tt.options...)
			assert.Nil(t, menu)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestMenuMutators(t *testing.T) {
	menu, err := console.NewMenu("Menu", "a", "b")
	require.NoError(t, err)

	require.NoError(t, menu.AddOption("c"))
	assert.Equal(t, 3, menu.Len())
	assert.True(t, errors.IsValidationError(menu.AddOption("")))

	require.NoError(t, menu.SetTitle("Other"))
	assert.Equal(t, "Other", menu.Title())
	assert.True(t, errors.IsValidationError(menu.SetTitle(" ")))
	assert.Equal(t, "Other", menu.Title())

	options := menu.Options()
	options[0] = "changed"
	assert.Equal(t, "a", menu.Options()[0])
}

func TestMenuRender(t *testing.T) {
	menu, err := console.NewMenu("Movie Database", "Search movie", "Exit")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, menu.Render(&buf))
	assert.Equal(t,
		"\nMovie Database\n============================\n(1): Search movie\n(2): Exit\n",
		buf.String())
}
