package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/accessihome/pkg/tuitest"
)

func TestModal_Overlay(t *testing.T) {
	m := NewAlert("Invalid URL", "Please enter a valid URL")

	out := tuitest.StripANSI(m.Overlay("background", 60, 20))

	assert.Contains(t, out, "Invalid URL")
	assert.Contains(t, out, "Please enter a valid URL")
	assert.Contains(t, out, "OK")
}

func TestModal_DismissHidesOverlay(t *testing.T) {
	m := NewAlert("Invalid URL", "Please enter a valid URL")
	assert.True(t, m.Visible())
	assert.Equal(t, "Please enter a valid URL", m.Message())

	m.Dismiss()

	assert.False(t, m.Visible())
	assert.Equal(t, "background", m.Overlay("background", 60, 20))
}

func TestModal_ZeroValueHidden(t *testing.T) {
	var m Modal
	assert.False(t, m.Visible())
}

func TestKeyMap_ShortHelpByZone(t *testing.T) {
	keys := DefaultKeyMap()

	input := keys.forZone(focusInput, false).ShortHelp()
	assert.Equal(t, "enter", input[0].Help().Key)
	assert.Equal(t, "ctrl+c", input[len(input)-1].Help().Key, "q is typed into the input")

	gallery := keys.forZone(focusGallery, true).ShortHelp()
	var helpKeys []string
	for _, b := range gallery {
		helpKeys = append(helpKeys, b.Help().Key)
	}
	assert.Contains(t, helpKeys, "1-9")
	assert.Contains(t, helpKeys, "tab")
	assert.Equal(t, "q", helpKeys[len(helpKeys)-1])
}
