package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_ContainsEverySection(t *testing.T) {
	md := Markdown(Mock(), "https://www.zillow.com/homedetails/1")

	assert.Contains(t, md, "**Accessibility Score:** 78 / 100 (fair)")
	assert.Contains(t, md, "Listing: <https://www.zillow.com/homedetails/1>")
	assert.Contains(t, md, "- Wide hallways")
	assert.Contains(t, md, "- Steps at main entrance")
	assert.Contains(t, md, "### Entrances & Exterior Pathways")
	assert.Contains(t, md, "### Bathroom")
	assert.Contains(t, md, "| ✗ | Step-Free Entry | 3 steps detected at the front door. |")
	assert.Contains(t, md, "Tub/Shower (red) at top 50%, left 50%, 45% x 40%")
}

func TestMarkdown_EmptyFlagsAndNoListing(t *testing.T) {
	md := Markdown(&Analysis{OverallScore: 90}, "")

	assert.NotContains(t, md, "Listing:")
	assert.Contains(t, md, "_None_")
	assert.NotContains(t, md, "## Detailed Analysis")
	assert.NotContains(t, md, "## Visual Analysis")
}

func TestHTML_RendersTables(t *testing.T) {
	html, err := HTML(Mock(), "")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Accessibility Report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Roll-in Shower")
}
