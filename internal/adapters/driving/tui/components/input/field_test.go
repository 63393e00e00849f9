package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	f := NewField(nil, "City", "London")
	require.NotNil(t, f)

	assert.Equal(t, "City", f.Label())
	assert.Empty(t, f.Value())
	assert.False(t, f.Focused())
}

func TestField_FocusAndType(t *testing.T) {
	f := NewField(nil, "City", "")
	f.Focus()
	require.True(t, f.Focused())

	for _, r := range "Leeds" {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "Leeds", f.Value())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_SetValueAndReset(t *testing.T) {
	f := NewField(nil, "Postcode", "")
	f.SetValue("SW1A 1AA")
	assert.Equal(t, "SW1A 1AA", f.Value())

	f.Reset()
	assert.Empty(t, f.Value())
}

func TestField_ViewShowsLabel(t *testing.T) {
	f := NewField(nil, "Budget min", "20000")
	assert.Contains(t, f.View(), "Budget min")
}

func TestField_SetWidthClamps(t *testing.T) {
	f := NewField(nil, "City", "")
	f.SetWidth(5)
	// Must not panic on tiny widths; rendering still works.
	assert.NotEmpty(t, f.View())
}
