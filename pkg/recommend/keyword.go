package recommend

import (
	"fmt"
	"sort"
	"strings"

	"ai-council-be/pkg/agents"
)

const (
	keywordHit    = 20
	categoryBoost = 30
	maxScore      = 100
	defaultScore  = 40
	defaultReason = "Versatile agent suitable for general tasks"
)

// categoryTriggers mirror substring checks, so "art" also fires on "start".
var categoryTriggers = map[agents.Category][]string{
	agents.CategoryCoding:   {"code", "program", "develop"},
	agents.CategoryBusiness: {"business", "market", "strategy"},
	agents.CategoryWriting:  {"write", "content", "blog"},
	agents.CategoryLearning: {"learn", "teach", "study"},
	agents.CategoryHealth:   {"health", "fitness", "workout"},
	agents.CategoryCreative: {"design", "creative", "art"},
}

var defaultAgentIDs = []string{"agent-coder", "agent-strategist", "agent-writer", "agent-researcher"}

func keywordScore(a agents.Agent, description string) int {
	keywords := append(strings.Split(strings.ToLower(a.Name), " "), strings.Split(strings.ToLower(a.Description), " ")...)
	keywords = append(keywords, string(a.Category), strings.ToLower(string(a.Role)))

	score := 0
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(description, k) {
			score += keywordHit
		}
	}
	for _, trigger := range categoryTriggers[a.Category] {
		if strings.Contains(description, trigger) {
			score += categoryBoost
			break
		}
	}
	return score
}

// KeywordRecommend scores every catalog agent against the description and keeps the top four.
func KeywordRecommend(catalog *agents.Catalog, description string) []Recommendation {
	desc := strings.ToLower(description)

	type scored struct {
		agent agents.Agent
		score int
	}
	all := catalog.All()
	ranked := make([]scored, 0, len(all))
	for _, a := range all {
		ranked = append(ranked, scored{agent: a, score: keywordScore(a, desc)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]Recommendation, 0, TeamSize)
	for _, s := range ranked {
		if len(out) == TeamSize {
			break
		}
		score := s.score
		if score > maxScore {
			score = maxScore
		}
		out = append(out, Recommendation{
			Agent:          s.agent,
			Reason:         fmt.Sprintf("Matched based on keywords related to %s and %s", s.agent.Category, s.agent.Role),
			RelevanceScore: score,
		})
	}

	for _, id := range defaultAgentIDs {
		if len(out) >= TeamSize {
			break
		}
		if contains(out, id) {
			continue
		}
		if a, ok := catalog.GetByID(id); ok {
			out = append(out, Recommendation{Agent: a, Reason: defaultReason, RelevanceScore: defaultScore})
		}
	}
	return out
}

func contains(recs []Recommendation, id string) bool {
	for _, r := range recs {
		if r.Agent.Id == id {
			return true
		}
	}
	return false
}
