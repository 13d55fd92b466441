package console

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// minMenuOptions is the smallest number of options a menu accepts.
const minMenuOptions = 2

// Menu is a titled list of numbered options.
type Menu struct {
	title   string
	options []string
}

// NewMenu creates a menu. The title must be non-blank and at least two
// non-blank options are required.
func NewMenu(title string, options ...string) (*Menu, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidationError("title", title, "must not be blank")
	}
	if len(options) < minMenuOptions {
		return nil, errors.NewValidationError("options", len(options),
			fmt.Sprintf("at least %d options are required", minMenuOptions))
	}
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			return nil, errors.NewValidationError("options", option, "must not be blank")
		}
	}
	return &Menu{title: title, options: slices.Clone(options)}, nil
}

// AddOption appends a non-blank option.
func (m *Menu) AddOption(option string) error {
	if strings.TrimSpace(option) == "" {
		return errors.NewValidationError("option", option, "must not be blank")
	}
	m.options = append(m.options, option)
	return nil
}

// SetTitle replaces the title.
func (m *Menu) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title", title, "must not be blank")
	}
	m.title = title
	return nil
}

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// Options returns a copy of the options.
func (m *Menu) Options() []string { return slices.Clone(m.options) }

// Len returns the number of options.
func (m *Menu) Len() int { return len(m.options) }

// Render writes the title, a separator and the options numbered from 1.
func (m *Menu) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n", m.title, constants.MenuSeparator)
	for i, option := range m.options {
		fmt.Fprintf(&b, "(%d): %s\n", i+1, option)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
