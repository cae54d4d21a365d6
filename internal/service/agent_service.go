// FILE: internal/service/agent_service.go
package service

import (
	"context"
	"strings"

	"ai-council-be/internal/dto"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/internal/repository/specification"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/llm"
	"ai-council-be/pkg/recommend"
	"ai-council-be/pkg/usage"

	"github.com/google/uuid"
)

type IAgentService interface {
	Templates() *dto.AgentTemplatesResponse
	ByCategory(category string) (*dto.AgentCategoryResponse, error)
	Search(query string) (*dto.AgentSearchResponse, error)
	Recommend(ctx context.Context, userId uuid.UUID, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
	Test(ctx context.Context, userId uuid.UUID, req *dto.TestAgentRequest) (*dto.TestAgentResponse, error)
	Usage(ctx context.Context, userId uuid.UUID) (*dto.UsageResponse, error)
}

// AgentRecommender never fails; it degrades to keyword scoring.
type AgentRecommender interface {
	Recommend(ctx context.Context, description string) *recommend.Result
}

type agentService struct {
	catalog     *agents.Catalog
	recommender AgentRecommender
	completer   llm.Completer
	tracker     *usage.Tracker
	uowFactory  unitofwork.RepositoryFactory
	logger      logger.ILogger
}

func NewAgentService(
	catalog *agents.Catalog,
	recommender AgentRecommender,
	completer llm.Completer,
	tracker *usage.Tracker,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		catalog:     catalog,
		recommender: recommender,
		completer:   completer,
		tracker:     tracker,
		uowFactory:  uowFactory,
		logger:      log,
	}
}

func (s *agentService) Templates() *dto.AgentTemplatesResponse {
	all := s.catalog.All()
	return &dto.AgentTemplatesResponse{
		Agents:         all,
		Total:          len(all),
		CategoryCounts: s.catalog.CountsByCategory(),
	}
}

func (s *agentService) ByCategory(category string) (*dto.AgentCategoryResponse, error) {
	c, ok := agents.ParseCategory(category)
	if !ok {
		return nil, invalidCategory()
	}
	list := s.catalog.GetByCategory(c)
	return &dto.AgentCategoryResponse{Category: c, Agents: list, Total: len(list)}, nil
}

func (s *agentService) Search(query string) (*dto.AgentSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrAgentQueryRequired
	}
	results := s.catalog.Search(query)
	return &dto.AgentSearchResponse{Query: query, Results: results, Total: len(results)}, nil
}

// tierOf defaults to FREE when the user row is gone; the token is still valid until it expires.
func (s *agentService) tierOf(ctx context.Context, userId uuid.UUID) (usage.Tier, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return "", err
	}
	if user == nil || user.SubscriptionTier == "" {
		return usage.TierFree, nil
	}
	return usage.Tier(user.SubscriptionTier), nil
}

func (s *agentService) checkLimit(ctx context.Context, userId uuid.UUID) (usage.Tier, error) {
	tier, err := s.tierOf(ctx, userId)
	if err != nil {
		return "", err
	}
	check := s.tracker.CheckLimit(userId.String(), tier)
	if !check.Allowed {
		s.logger.Warn("AgentService", "Rate limit exceeded", map[string]interface{}{
			"user_id":            userId.String(),
			"tier":               tier,
			"requests_this_hour": check.RequestsThisHour,
		})
		return tier, serverutils.TooManyRequests(check.Reason, dto.RateLimitDetails{
			RequestsThisHour: check.RequestsThisHour,
			Limit:            check.Limit,
		})
	}
	return tier, nil
}

func (s *agentService) Recommend(ctx context.Context, userId uuid.UUID, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	if _, err := s.checkLimit(ctx, userId); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	result := s.recommender.Recommend(ctx, description)

	s.tracker.Record(userId.String(), result.AnalysisUsed.Model, result.AnalysisUsed.TokensUsed,
		result.AnalysisUsed.EstimatedCost, usage.EndpointRecommendation)

	return &dto.RecommendResponse{
		Recommendations: result.Recommendations,
		Description:     description,
		AnalysisUsed:    result.AnalysisUsed,
	}, nil
}

func (s *agentService) Test(ctx context.Context, userId uuid.UUID, req *dto.TestAgentRequest) (*dto.TestAgentResponse, error) {
	agent, ok := s.catalog.GetByID(req.AgentId)
	if !ok {
		return nil, agentNotFound(req.AgentId)
	}
	if _, err := s.checkLimit(ctx, userId); err != nil {
		return nil, err
	}

	res, err := s.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: agent.SystemPrompt,
		UserPrompt:   strings.TrimSpace(req.Prompt),
		Model:        string(agent.Model),
		Temperature:  agent.Temperature,
	})
	if err != nil {
		s.logger.Error("AgentService", "Agent test completion failed", map[string]interface{}{
			"agent_id": agent.Id,
			"error":    err,
		})
		return nil, err
	}

	s.tracker.Record(userId.String(), res.Model, res.TokensUsed, res.EstimatedCost, usage.EndpointTest)

	return &dto.TestAgentResponse{
		AgentName:     agent.Name,
		AgentRole:     string(agent.Role),
		Response:      res.Content,
		TokensUsed:    res.TokensUsed,
		EstimatedCost: res.EstimatedCost,
		Model:         res.Model,
	}, nil
}

func (s *agentService) Usage(ctx context.Context, userId uuid.UUID) (*dto.UsageResponse, error) {
	tier, err := s.tierOf(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.UsageResponse{
		Stats: s.tracker.StatsFor(userId.String()),
		Limit: s.tracker.CheckLimit(userId.String(), tier),
		Tier:  string(tier),
	}, nil
}
