package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	CatalogFunc      func() (*catalogs.Catalog, error)
	SaveCatalogFunc  func() error
	DataFileFunc     func() string
	ClearScreenFunc  func() bool
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// NewMockWithCatalog returns a Mock serving cat and counting saves in saves.
func NewMockWithCatalog(cat *catalogs.Catalog, saves *int) *Mock {
	return &Mock{
		CatalogFunc: func() (*catalogs.Catalog, error) { return cat, nil },
		SaveCatalogFunc: func() error {
			if saves != nil {
				*saves++
			}
			return nil
		},
	}
}

// Catalog returns a catalog using the mock function or an empty catalog.
func (m *Mock) Catalog() (*catalogs.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return catalogs.New(), nil
}

// SaveCatalog saves using the mock function or does nothing.
func (m *Mock) SaveCatalog() error {
	if m.SaveCatalogFunc != nil {
		return m.SaveCatalogFunc()
	}
	return nil
}

// DataFile returns the data file using the mock function or the default.
func (m *Mock) DataFile() string {
	if m.DataFileFunc != nil {
		return m.DataFileFunc()
	}
	return constants.DefaultDataFile
}

// ClearScreen uses the mock function or returns false.
func (m *Mock) ClearScreen() bool {
	if m.ClearScreenFunc != nil {
		return m.ClearScreenFunc()
	}
	return false
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
