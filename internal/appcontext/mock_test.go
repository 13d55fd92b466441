package appcontext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/internal/appcontext"
	"github.com/agentstation/cinemap/pkg/catalogs"
)

func TestMockDefaults(t *testing.T) {
	m := &appcontext.Mock{}

	cat, err := m.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
	assert.NoError(t, m.SaveCatalog())
	assert.Equal(t, "myvideos.txt", m.DataFile())
	assert.False(t, m.ClearScreen())
	assert.NotNil(t, m.Logger())
	assert.Equal(t, "table", m.OutputFormat())
	assert.Equal(t, "dev", m.Version())
	assert.Equal(t, "unknown", m.Commit())
	assert.Equal(t, "unknown", m.Date())
	assert.Equal(t, "test", m.BuiltBy())
}

func TestNewMockWithCatalog(t *testing.T) {
	cat := catalogs.New()
	saves := 0
	m := appcontext.NewMockWithCatalog(cat, &saves)

	got, err := m.Catalog()
	require.NoError(t, err)
	assert.Same(t, cat, got)

	require.NoError(t, m.SaveCatalog())
	require.NoError(t, m.SaveCatalog())
	assert.Equal(t, 2, saves)
}
