package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestReveal_CumulativeSlices(t *testing.T) {
	items := seq(30)

	page1 := Reveal(items, RevealRequest{Page: 1})
	require.Equal(t, 12, page1.Visible)
	assert.Equal(t, seq(12), page1.Items)
	assert.True(t, page1.HasMore())

	page2 := Reveal(items, RevealRequest{Page: 2})
	require.Equal(t, 24, page2.Visible)
	// Stability under incremental reveal: the first twelve are unchanged.
	assert.Equal(t, page1.Items, page2.Items[:12])
	assert.Equal(t, 3, page2.TotalPages)

	page3 := Reveal(items, RevealRequest{Page: 3})
	assert.Equal(t, 30, page3.Visible)
	assert.False(t, page3.HasMore())
}

func TestReveal_VisibleCountMonotone(t *testing.T) {
	items := seq(100)

	prev := 0
	for page := 1; page <= 12; page++ {
		res := Reveal(items, RevealRequest{Page: page})
		assert.GreaterOrEqual(t, res.Visible, prev)
		assert.LessOrEqual(t, res.Visible, res.Total)
		prev = res.Visible
	}
}

func TestReveal_NormalizesBadPage(t *testing.T) {
	res := Reveal(seq(5), RevealRequest{Page: -3})

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 5, res.Visible)
}

func TestReveal_EmptyCollection(t *testing.T) {
	res := Reveal([]int{}, RevealRequest{Page: 1})

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
	assert.Nil(t, res.Links)
}

func TestLinks_NoCompressionWhenShort(t *testing.T) {
	links := Links(3, 2)

	require.Len(t, links, 3)
	assert.True(t, links[1].Current)
	for _, l := range links {
		assert.False(t, l.Ellipsis)
	}
}

func TestLinks_EllipsisCompression(t *testing.T) {
	// 10 pages, current 5: 1 … 4 5 6 … 10
	links := Links(10, 5)

	var pages []int
	var ellipses int
	for _, l := range links {
		if l.Ellipsis {
			ellipses++
			continue
		}
		pages = append(pages, l.Page)
	}

	assert.Equal(t, []int{1, 4, 5, 6, 10}, pages)
	assert.Equal(t, 2, ellipses)
}

func TestLinks_CurrentAtEdges(t *testing.T) {
	first := Links(10, 1)
	assert.Equal(t, 1, first[0].Page)
	assert.True(t, first[0].Current)

	last := Links(10, 10)
	assert.True(t, last[len(last)-1].Current)
}
