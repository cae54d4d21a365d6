package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 32, c.Len())

	seen := make(map[string]bool)
	for _, a := range c.All() {
		assert.False(t, seen[a.Id], "duplicate id %s", a.Id)
		seen[a.Id] = true
		assert.True(t, a.Category.Valid(), "agent %s has invalid category", a.Id)
		assert.NotEmpty(t, a.SystemPrompt)
		assert.NotEmpty(t, a.Icon)
		assert.GreaterOrEqual(t, a.Temperature, 0.0)
		assert.LessOrEqual(t, a.Temperature, 1.0)
	}
}

func TestGetByID(t *testing.T) {
	c := Default()

	a, ok := c.GetByID("agent-coder")
	require.True(t, ok)
	assert.Equal(t, "CodeMaster", a.Name)
	assert.Equal(t, ModelGPT4, a.Model)
	assert.Equal(t, 0.3, a.Temperature)

	_, ok = c.GetByID("agent-unknown")
	assert.False(t, ok)
}

func TestGetByCategory(t *testing.T) {
	c := Default()

	coding := c.GetByCategory(CategoryCoding)
	require.Len(t, coding, 8)
	assert.Equal(t, "agent-coder", coding[0].Id)

	assert.Empty(t, c.GetByCategory(Category("cooking")))
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		keyword string
		wantId  string
		wantLen int
	}{
		{name: "name match is case-insensitive", keyword: "wordsmith", wantId: "agent-writer"},
		{name: "role match", keyword: "quiz-master", wantId: "agent-quiz-master"},
		{name: "description match", keyword: "Workout", wantId: "agent-trainer"},
		{name: "blank keyword", keyword: "   ", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Search(tt.keyword)
			if tt.wantId == "" {
				assert.Len(t, res, tt.wantLen)
				return
			}
			ids := make([]string, 0, len(res))
			for _, a := range res {
				ids = append(ids, a.Id)
			}
			assert.Contains(t, ids, tt.wantId)
		})
	}
}

func TestCountsByCategory(t *testing.T) {
	c := Default()
	counts := c.CountsByCategory()

	total := 0
	for _, cat := range Categories {
		_, ok := counts[cat]
		assert.True(t, ok, "missing category %s", cat)
		total += counts[cat]
	}
	assert.Equal(t, c.Len(), total)
	assert.Equal(t, 3, counts[CategoryCreative])

	empty := NewCatalog(nil).CountsByCategory()
	assert.Equal(t, 0, empty[CategoryHealth])
}

func TestParseCategory(t *testing.T) {
	cat, ok := ParseCategory(" Coding ")
	assert.True(t, ok)
	assert.Equal(t, CategoryCoding, cat)

	_, ok = ParseCategory("sports")
	assert.False(t, ok)
}
