package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/llm"
)

const (
	TeamSize      = 4
	analysisModel = "gpt-4"
	temperature   = 0.7
	fallbackModel = "fallback"
	padScore      = 50
	padReason     = "Additional agent to complete your team"
)

var errInvalidFormat = errors.New("invalid recommendation response format")

type Recommendation struct {
	Agent          agents.Agent `json:"agent"`
	Reason         string       `json:"reason"`
	RelevanceScore int          `json:"relevanceScore"`
}

type Analysis struct {
	Model         string  `json:"model"`
	TokensUsed    int     `json:"tokensUsed"`
	EstimatedCost float64 `json:"estimatedCost"`
}

type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	AnalysisUsed    Analysis         `json:"analysisUsed"`
}

type Recommender struct {
	catalog   *agents.Catalog
	completer llm.Completer
	logger    logger.ILogger
}

func NewRecommender(catalog *agents.Catalog, completer llm.Completer, log logger.ILogger) *Recommender {
	return &Recommender{catalog: catalog, completer: completer, logger: log}
}

// Recommend always returns four agents. A malformed model answer degrades to keyword scoring,
// and a failed completion does too with a zero-cost "fallback" analysis.
func (r *Recommender) Recommend(ctx context.Context, description string) *Result {
	res, err := r.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: systemPrompt(r.catalog),
		UserPrompt:   userPrompt(description),
		Model:        analysisModel,
		Temperature:  temperature,
	})
	if err != nil {
		r.logger.Error("Recommender", "Recommendation completion failed, using keyword fallback", map[string]interface{}{
			"error": err,
		})
		return &Result{
			Recommendations: KeywordRecommend(r.catalog, description),
			AnalysisUsed:    Analysis{Model: fallbackModel},
		}
	}

	recs, err := r.parse(res.Content)
	if err != nil {
		r.logger.Warn("Recommender", "Could not parse recommendation response, using keyword fallback", map[string]interface{}{
			"error":        err,
			"raw_response": res.Content,
		})
		recs = KeywordRecommend(r.catalog, description)
	}

	recs = r.pad(recs)
	if len(recs) > TeamSize {
		recs = recs[:TeamSize]
	}
	return &Result{
		Recommendations: recs,
		AnalysisUsed: Analysis{
			Model:         res.Model,
			TokensUsed:    res.TokensUsed,
			EstimatedCost: res.EstimatedCost,
		},
	}
}

type modelAnswer struct {
	Recommendations *[]struct {
		AgentId        string  `json:"agentId"`
		Reason         string  `json:"reason"`
		RelevanceScore float64 `json:"relevanceScore"`
	} `json:"recommendations"`
}

func stripFences(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	}
	return cleaned
}

func (r *Recommender) parse(content string) ([]Recommendation, error) {
	var answer modelAnswer
	if err := json.Unmarshal([]byte(stripFences(content)), &answer); err != nil {
		return nil, err
	}
	if answer.Recommendations == nil {
		return nil, errInvalidFormat
	}

	items := *answer.Recommendations
	if len(items) > TeamSize {
		items = items[:TeamSize]
	}
	out := make([]Recommendation, 0, TeamSize)
	for _, item := range items {
		a, ok := r.catalog.GetByID(item.AgentId)
		if !ok {
			return nil, fmt.Errorf("agent not found: %s", item.AgentId)
		}
		out = append(out, Recommendation{
			Agent:          a,
			Reason:         item.Reason,
			RelevanceScore: int(math.Round(item.RelevanceScore)),
		})
	}
	return out, nil
}

// pad fills a short list from the catalog in catalog order.
func (r *Recommender) pad(recs []Recommendation) []Recommendation {
	for _, a := range r.catalog.All() {
		if len(recs) >= TeamSize {
			break
		}
		if contains(recs, a.Id) {
			continue
		}
		recs = append(recs, Recommendation{Agent: a, Reason: padReason, RelevanceScore: padScore})
	}
	return recs
}
