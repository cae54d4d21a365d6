// FILE: internal/dto/agent_dto.go
package dto

import (
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/recommend"
	"ai-council-be/pkg/usage"
)

type AgentTemplatesResponse struct {
	Agents         []agents.Agent          `json:"agents"`
	Total          int                     `json:"total"`
	CategoryCounts map[agents.Category]int `json:"categoryCounts"`
}

type AgentCategoryResponse struct {
	Category agents.Category `json:"category"`
	Agents   []agents.Agent  `json:"agents"`
	Total    int             `json:"total"`
}

type AgentSearchResponse struct {
	Query   string         `json:"query"`
	Results []agents.Agent `json:"results"`
	Total   int            `json:"total"`
}

type RecommendRequest struct {
	Description string `json:"description" validate:"required,min=10,max=500"`
}

type RecommendResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Description     string                     `json:"description"`
	AnalysisUsed    recommend.Analysis         `json:"analysisUsed"`
}

type TestAgentRequest struct {
	AgentId string `json:"agentId" validate:"required"`
	Prompt  string `json:"prompt" validate:"required,min=5,max=2000"`
}

type TestAgentResponse struct {
	AgentName     string  `json:"agentName"`
	AgentRole     string  `json:"agentRole"`
	Response      string  `json:"response"`
	TokensUsed    int     `json:"tokensUsed"`
	EstimatedCost float64 `json:"estimatedCost"`
	Model         string  `json:"model"`
}

type RateLimitDetails struct {
	RequestsThisHour int `json:"requestsThisHour"`
	Limit            int `json:"limit"`
}

type UsageResponse struct {
	Stats usage.Stats      `json:"stats"`
	Limit usage.LimitCheck `json:"limit"`
	Tier  string           `json:"tier"`
}
