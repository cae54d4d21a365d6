package agents

import "strings"

// Catalog is a read-only registry of agents keyed by id.
// It is safe for concurrent use because it is never mutated after construction.
type Catalog struct {
	agents []Agent
	byId   map[string]int
}

func NewCatalog(defs []Agent) *Catalog {
	c := &Catalog{
		agents: make([]Agent, len(defs)),
		byId:   make(map[string]int, len(defs)),
	}
	copy(c.agents, defs)
	for i, a := range c.agents {
		c.byId[a.Id] = i
	}
	return c
}

// Default returns the catalog of built-in personas.
func Default() *Catalog {
	return NewCatalog(definitions)
}

// All returns a copy of every agent in definition order.
func (c *Catalog) All() []Agent {
	out := make([]Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

func (c *Catalog) Len() int {
	return len(c.agents)
}

func (c *Catalog) GetByID(id string) (Agent, bool) {
	i, ok := c.byId[id]
	if !ok {
		return Agent{}, false
	}
	return c.agents[i], true
}

func (c *Catalog) GetByCategory(category Category) []Agent {
	out := make([]Agent, 0)
	for _, a := range c.agents {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Search matches keyword against name, description and role, ignoring case.
func (c *Catalog) Search(keyword string) []Agent {
	q := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]Agent, 0)
	if q == "" {
		return out
	}
	for _, a := range c.agents {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q) ||
			strings.Contains(strings.ToLower(string(a.Role)), q) {
			out = append(out, a)
		}
	}
	return out
}

// CountsByCategory reports every known category, including empty ones.
func (c *Catalog) CountsByCategory() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = 0
	}
	for _, a := range c.agents {
		counts[a.Category]++
	}
	return counts
}
