package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexesWithoutConflicts(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestFind(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	p, ok := c.Find("Aloe Vera Gel")
	require.True(t, ok)
	assert.Equal(t, int64(56146), p.PriceCents)
	assert.Equal(t, "", p.Type)

	_, ok = c.Find("Not A Product")
	assert.False(t, ok)
}

func TestFindJoinOption(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	p, ok := c.Find("Minimum Purchase")
	require.True(t, ok)
	assert.Equal(t, int64(158400), p.PriceCents)
	assert.Equal(t, "Preferred Customer", p.Type)
}

// Forever Lite appears in both Health & Wellness and Weight Management at
// the same price; the first occurrence in section order wins.
func TestDuplicateNameSamePriceKeepsFirst(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	p, ok := c.Find("Forever Lite")
	require.True(t, ok)
	assert.Equal(t, int64(65021), p.PriceCents)
	assert.Contains(t, p.Description, "🥗")
}

func TestSections(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	names := make([]string, 0)
	for _, s := range c.Sections() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Health & Wellness",
		"Skincare & Personal Care",
		"Weight Management",
		"Kids & Family",
		"Combos",
	}, names)

	s, ok := c.Section("Combos")
	require.True(t, ok)
	require.Len(t, s.Groups, 1)
	assert.NotEmpty(t, s.Groups[0].Products)

	_, ok = c.Section("Join Options")
	assert.False(t, ok)
	assert.Len(t, c.JoinOptions(), 5)
}
