package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeedSources(t *testing.T) {
	yamlContent := `
sources:
  - name: "Jewish Week"
    url: "https://example.org/obits/rss"
  - name: "Forward"
    url: "https://example.com/memorials.xml"
`

	sources, err := LoadFeedSources(strings.NewReader(yamlContent))

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Jewish Week", sources[0].Name)
	assert.Equal(t, "https://example.com/memorials.xml", sources[1].URL)
}

func TestLoadFeedSources_RejectsIncompleteEntry(t *testing.T) {
	yamlContent := `
sources:
  - name: "No URL Here"
`

	_, err := LoadFeedSources(strings.NewReader(yamlContent))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoadFeedSources_BadYAML(t *testing.T) {
	_, err := LoadFeedSources(strings.NewReader("sources: [what"))

	require.Error(t, err)
}
