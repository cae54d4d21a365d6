package council

import (
	"fmt"
	"strings"

	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/llm"
)

const (
	collaborationSuffix = "\n\nYou are part of a 5-person AI council helping the user. " +
		"Collaborate with other agents and build on their insights. Keep responses concise but helpful."

	userPromptHeader   = "The user said: \"%s\"\n\n"
	priorRepliesHeader = "Other agents have responded:\n"
	priorReplyLine     = "- %s: %s"
	userPromptFooter   = "Provide your perspective and advice."

	historyUserLabel    = "You"
	newMessageLabel     = "User"
	unknownAgentName    = "Unknown Agent"
	transcriptLineShape = "[%s]: %s"
)

// SystemPrompt returns the custom override verbatim, or the catalog prompt with the collaboration suffix.
func SystemPrompt(agent agents.Agent, customPrompt string) string {
	if strings.TrimSpace(customPrompt) != "" {
		return customPrompt
	}
	return agent.SystemPrompt + collaborationSuffix
}

// UserPrompt embeds the user's message and a digest of replies already given this turn.
func UserPrompt(message string, prior []AgentResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, userPromptHeader, message)
	if len(prior) > 0 {
		b.WriteString(priorRepliesHeader)
		lines := make([]string, 0, len(prior))
		for _, r := range prior {
			lines = append(lines, fmt.Sprintf(priorReplyLine, r.AgentName, r.Content))
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(userPromptFooter)
	return b.String()
}

// HistoryContext converts stored transcript rows (oldest first) into labelled chat messages.
func HistoryContext(catalog *agents.Catalog, history []HistoryMessage) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleAssistant
		if m.Role == RoleUser {
			role = llm.RoleUser
		}
		label := historyUserLabel
		if m.AgentID != "" {
			label = unknownAgentName
			if a, ok := catalog.GetByID(m.AgentID); ok {
				label = a.Name
			}
		}
		out = append(out, llm.Message{Role: role, Content: fmt.Sprintf(transcriptLineShape, label, m.Content)})
	}
	return out
}

// AgentContext is the history followed by the new message and this turn's earlier replies.
func AgentContext(history []llm.Message, message string, prior []AgentResponse) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1+len(prior))
	out = append(out, history...)
	out = append(out, llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(transcriptLineShape, newMessageLabel, message)})
	for _, r := range prior {
		out = append(out, llm.Message{Role: llm.RoleAssistant, Content: fmt.Sprintf(transcriptLineShape, r.AgentName, r.Content)})
	}
	return out
}
