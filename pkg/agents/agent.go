package agents

import (
	"strings"
)

type Category string

const (
	CategoryCoding   Category = "coding"
	CategoryBusiness Category = "business"
	CategoryWriting  Category = "writing"
	CategoryLearning Category = "learning"
	CategoryHealth   Category = "health"
	CategoryCreative Category = "creative"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCoding,
	CategoryBusiness,
	CategoryWriting,
	CategoryLearning,
	CategoryHealth,
	CategoryCreative,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory normalizes user input; ok is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

type Role string

type Model string

const (
	ModelGPT4         Model = "gpt-4"
	ModelGPT4Turbo    Model = "gpt-4-turbo"
	ModelClaudeOpus   Model = "claude-3-opus"
	ModelClaudeSonnet Model = "claude-3-sonnet"
)

// Agent is an immutable persona definition.
type Agent struct {
	Id           string   `json:"id"`
	Role         Role     `json:"role"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	SystemPrompt string   `json:"systemPrompt"`
	Model        Model    `json:"model"`
	Temperature  float64  `json:"temperature"`
	Icon         string   `json:"icon"`
}
