// Package input provides form field components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label, in wizard form styling.
type Field struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
}

// NewField creates a labelled form field.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40

	return &Field{
		label:     label,
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the field as a label above the input box.
func (f *Field) View() string {
	label := f.styles.FieldLabel.Render(f.label)
	box := f.styles.InputField.Render(f.textinput.View())
	return label + "\n" + box
}

// Label returns the field's label text.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the field is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input box.
func (f *Field) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.textinput.Width = width
}

// Reset clears the field.
func (f *Field) Reset() {
	f.textinput.Reset()
}
