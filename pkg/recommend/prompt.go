package recommend

import (
	"fmt"
	"strings"

	"ai-council-be/pkg/agents"
)

const systemPromptTemplate = `You are an expert at matching AI agents to user needs. You have access to a library of AI agent templates, each with specific expertise.

Your task is to analyze the user's goal description and recommend EXACTLY 4 agents that would work best together as a team to help the user achieve their goal.

Consider:
- What skills are needed for this goal?
- Which agents complement each other well?
- What diverse perspectives would be valuable?
- Balance between specialized and general expertise

Available agents:
%s

Respond in VALID JSON format with this exact structure (no markdown, no code blocks, just raw JSON):
{
  "recommendations": [
    {
      "agentId": "agent-id-here",
      "reason": "Brief explanation why this agent is recommended",
      "relevanceScore": 95
    }
  ]
}

Return exactly 4 recommendations ordered by relevance (highest score first). Scores should be 1-100.`

const userPromptTemplate = "User's goal: \"%s\"\n\nRecommend 4 agents that would best help achieve this goal."

func systemPrompt(catalog *agents.Catalog) string {
	all := catalog.All()
	lines := make([]string, 0, len(all))
	for i, a := range all {
		lines = append(lines, fmt.Sprintf("%d. %s: %s - %s (Category: %s)", i+1, a.Id, a.Name, a.Description, a.Category))
	}
	return fmt.Sprintf(systemPromptTemplate, strings.Join(lines, "\n"))
}

func userPrompt(description string) string {
	return fmt.Sprintf(userPromptTemplate, description)
}
