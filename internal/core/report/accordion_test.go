package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccordion_Toggle(t *testing.T) {
	var a Accordion

	_, open := a.Open()
	assert.False(t, open, "starts collapsed")

	a.Toggle(SectionKitchen)
	s, open := a.Open()
	require.True(t, open)
	assert.Equal(t, SectionKitchen, s)

	a.Toggle(SectionBathroom)
	assert.True(t, a.IsOpen(SectionBathroom))
	assert.False(t, a.IsOpen(SectionKitchen), "only one section open at a time")

	a.Toggle(SectionBathroom)
	_, open = a.Open()
	assert.False(t, open, "re-selecting the open section closes it")
}

func TestAccordion_Close(t *testing.T) {
	var a Accordion
	a.Toggle(SectionInterior)
	a.Close()

	assert.False(t, a.IsOpen(SectionInterior))
	assert.False(t, a.IsOpen(""))
}
